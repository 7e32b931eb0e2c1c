package model

import "strings"

// Cluster groups files that appear to belong to the same release.
//
// Cluster contains:
//   - Album-level metadata (albumartist and album)
//   - The files in the cluster, in a stable order
//
// The order of Files matters: it is the fallback track position when a
// file's tracknumber tag cannot be parsed, and it is the order in which disc
// numbers are normalized.
//
// Example:
//
//	c := NewCluster("The Beatles", "Abbey Road", files)
//	// c.Metadata.Get(TagAlbumArtist) == "The Beatles"
type Cluster struct {
	// Metadata holds album-level tags: albumartist and album.
	Metadata Metadata

	// Files contains the files in this cluster.
	Files []*File
}

// NewCluster creates a new Cluster with the given album artist, album title
// and files.
func NewCluster(albumArtist, album string, files []*File) *Cluster {
	return &Cluster{
		Metadata: Metadata{
			TagAlbumArtist: albumArtist,
			TagAlbum:       album,
		},
		Files: files,
	}
}

// Title returns a human readable "artist - album" label for the cluster.
func (c *Cluster) Title() string {
	artist := c.Metadata.Get(TagAlbumArtist)
	album := c.Metadata.Get(TagAlbum)
	switch {
	case artist == "" && album == "":
		return "[unknown]"
	case artist == "":
		return album
	case album == "":
		return artist
	}
	return artist + " - " + album
}

// Kind implements Target.
func (c *Cluster) Kind() Kind {
	return KindCluster
}

func (c *Cluster) isTarget() {}

// Clusterize groups files into clusters by album artist and album title.
//
// The album artist of a file is its albumartist tag, or its artist tag when
// albumartist is empty. Grouping ignores case and surrounding whitespace, but
// each cluster keeps the spelling of the first file that created it.
//
// Clusters are returned in the order their first file appears in files, and
// the files within a cluster keep their relative order.
//
// Example:
//
//	clusters := Clusterize(files)
//	for _, c := range clusters {
//	    fmt.Printf("%s (%d files)\n", c.Title(), len(c.Files))
//	}
func Clusterize(files []*File) []*Cluster {
	var clusters []*Cluster
	index := make(map[string]*Cluster)

	for _, f := range files {
		artist := f.Metadata.Get(TagAlbumArtist)
		if artist == "" {
			artist = f.Metadata.Get(TagArtist)
		}
		album := f.Metadata.Get(TagAlbum)

		key := clusterKey(artist, album)
		c, ok := index[key]
		if !ok {
			c = NewCluster(artist, album, nil)
			index[key] = c
			clusters = append(clusters, c)
		}
		c.Files = append(c.Files, f)
	}

	return clusters
}

func clusterKey(artist, album string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + "\x00" + strings.ToLower(strings.TrimSpace(album))
}
