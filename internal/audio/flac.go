package audio

import (
	"io"
	"strings"
	"time"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/handiism/mb-seeder/internal/model"
)

// vorbisFields maps Vorbis comment field names to tag names. Later entries
// win when a file carries more than one spelling.
var vorbisFields = []struct {
	field string
	tag   string
}{
	{flacvorbis.FIELD_TITLE, model.TagTitle},
	{flacvorbis.FIELD_ARTIST, model.TagArtist},
	{flacvorbis.FIELD_ALBUM, model.TagAlbum},
	{"ALBUM ARTIST", model.TagAlbumArtist},
	{"ALBUMARTIST", model.TagAlbumArtist},
	{"DISCNUMBER", model.TagDiscNumber},
	{"DISCTOTAL", model.TagTotalDiscs},
	{"TOTALDISCS", model.TagTotalDiscs},
	{"TRACKTOTAL", model.TagTotalTracks},
	{"TOTALTRACKS", model.TagTotalTracks},
}

// readFLAC reads the Vorbis comments and stream info of a FLAC stream.
func readFLAC(r io.Reader) (model.Metadata, time.Duration, error) {
	f, err := flac.ParseMetadata(r)
	if err != nil {
		return nil, 0, err
	}

	var comments []string
	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, 0, err
		}
		comments = cmt.Comments
		break
	}

	var length time.Duration
	if len(f.Meta) > 0 && f.Meta[0].Type == flac.StreamInfo {
		length = streamLength(f.Meta[0].Data)
	}

	return vorbisMetadata(comments), length, nil
}

// streamLength computes the playing time from a STREAMINFO block: a 20-bit
// sample rate at byte 10 followed, after channel and depth bits, by a 36-bit
// total sample count.
func streamLength(data []byte) time.Duration {
	if len(data) < 18 {
		return 0
	}

	sampleRate := uint64(data[10])<<12 | uint64(data[11])<<4 | uint64(data[12])>>4
	samples := uint64(data[13]&0x0F)<<32 |
		uint64(data[14])<<24 |
		uint64(data[15])<<16 |
		uint64(data[16])<<8 |
		uint64(data[17])

	if sampleRate == 0 {
		return 0
	}
	whole, rest := samples/sampleRate, samples%sampleRate
	return time.Duration(whole)*time.Second + time.Duration(rest)*time.Second/time.Duration(sampleRate)
}

// vorbisMetadata maps "FIELD=value" comments to tag names. Field names are
// matched case-insensitively and the first value of a field is used.
func vorbisMetadata(comments []string) model.Metadata {
	values := make(map[string]string, len(comments))
	for _, c := range comments {
		k, v, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		k = strings.ToUpper(k)
		if _, seen := values[k]; !seen {
			values[k] = v
		}
	}

	md := model.Metadata{}
	for _, vf := range vorbisFields {
		setNonEmpty(md, vf.tag, values[vf.field])
	}

	track, total := splitNumber(values[flacvorbis.FIELD_TRACKNUMBER])
	setNonEmpty(md, model.TagTrackNumber, track)
	if _, ok := md.Lookup(model.TagTotalTracks); !ok {
		setNonEmpty(md, model.TagTotalTracks, total)
	}

	return md
}
