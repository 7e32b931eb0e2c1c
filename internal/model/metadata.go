package model

import "maps"

// Tag names used throughout mb-seeder.
//
// Names follow the MusicBrainz Picard internal tag naming. Names starting
// with "~" are hidden variables computed from the file rather than read from
// its tags.
const (
	TagTitle       = "title"
	TagArtist      = "artist"
	TagAlbum       = "album"
	TagAlbumArtist = "albumartist"
	TagTrackNumber = "tracknumber"
	TagTotalTracks = "totaltracks"
	TagDiscNumber  = "discnumber"
	TagTotalDiscs  = "totaldiscs"
	TagFilename    = "~filename"
	TagLength      = "~length"
)

// Metadata maps tag names to their (unparsed) string values.
//
// Values are kept exactly as they were read from the file. In particular
// discnumber may contain a "N/M" suffix, be negative, or not be a number at
// all; interpreting it is left to the seeding code.
type Metadata map[string]string

// Get returns the value for name, or an empty string if the tag is absent.
func (m Metadata) Get(name string) string {
	return m[name]
}

// Lookup returns the value for name and whether it was present.
func (m Metadata) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// GetDefault returns the value for name, or def if the tag is absent.
//
// An empty value that is present is returned as is.
func (m Metadata) GetDefault(name, def string) string {
	if v, ok := m[name]; ok {
		return v
	}
	return def
}

// Set stores value under name.
func (m Metadata) Set(name, value string) {
	m[name] = value
}

// Clone returns a copy of m.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}
	return maps.Clone(m)
}
