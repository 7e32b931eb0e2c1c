package audio

import (
	"io"
	"strconv"

	"github.com/dhowden/tag"

	"github.com/handiism/mb-seeder/internal/model"
)

// readGeneric reads the common tags of any container the tag library
// understands.
//
// Vorbis comments (Ogg Vorbis, Opus) go through the same mapping as FLAC, so
// discnumber keeps its raw text. ID3 frames in other containers are read raw
// as well. MP4 stores numbers as integers, which are the only values taken
// from the parsed form.
func readGeneric(r io.ReadSeeker) (model.Metadata, error) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		return nil, err
	}

	raw := m.Raw()
	if m.Format() == tag.VORBIS {
		return vorbisMetadata(vorbisComments(raw)), nil
	}

	md := model.Metadata{}
	setNonEmpty(md, model.TagTitle, m.Title())
	setNonEmpty(md, model.TagArtist, m.Artist())
	setNonEmpty(md, model.TagAlbumArtist, m.AlbumArtist())
	setNonEmpty(md, model.TagAlbum, m.Album())

	if trck, ok := rawString(raw, "TRCK", "TRK"); ok {
		track, total := splitNumber(trck)
		setNonEmpty(md, model.TagTrackNumber, track)
		setNonEmpty(md, model.TagTotalTracks, total)
	} else {
		setInt(md, model.TagTrackNumber, raw, "trkn")
		setCount(md, model.TagTotalTracks, raw, "trkn_count")
	}

	if tpos, ok := rawString(raw, "TPOS", "TPA"); ok {
		setNonEmpty(md, model.TagDiscNumber, tpos)
		_, total := splitNumber(tpos)
		setNonEmpty(md, model.TagTotalDiscs, total)
	} else {
		setInt(md, model.TagDiscNumber, raw, "disk")
		setCount(md, model.TagTotalDiscs, raw, "disk_count")
	}

	return md, nil
}

// vorbisComments turns the tag library's comment map back into
// "FIELD=value" comments.
func vorbisComments(raw map[string]any) []string {
	comments := make([]string, 0, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			comments = append(comments, k+"="+s)
		}
	}
	return comments
}

// rawString returns the first of keys that holds a string in raw.
func rawString(raw map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok {
			return s, true
		}
	}
	return "", false
}

// setInt sets name from an integer atom. Zero is kept: it is a real disc
// number, not a missing one.
func setInt(md model.Metadata, name string, raw map[string]any, key string) {
	if n, ok := raw[key].(int); ok {
		md.Set(name, strconv.Itoa(n))
	}
}

// setCount sets name from an integer count atom, where zero means unset.
func setCount(md model.Metadata, name string, raw map[string]any, key string) {
	if n, ok := raw[key].(int); ok && n > 0 {
		md.Set(name, strconv.Itoa(n))
	}
}
