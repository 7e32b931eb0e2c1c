package audio

import (
	"io"
	"strconv"
	"time"

	"github.com/bogem/id3v2"
	"github.com/hajimehoshi/go-mp3"
	"github.com/rs/zerolog"

	"github.com/handiism/mb-seeder/internal/model"
)

// bytesPerSample is the size of one decoded go-mp3 sample: 16-bit stereo.
const bytesPerSample = 4

// readMP3 reads ID3v2 frames and the playing time of an MP3 stream.
//
// The length comes from the TLEN frame when present, otherwise the stream is
// decoded to count samples.
func readMP3(rs io.ReadSeeker, logger zerolog.Logger) (model.Metadata, time.Duration, error) {
	tag, err := id3v2.ParseReader(rs, id3v2.Options{Parse: true})
	if err != nil {
		return nil, 0, err
	}

	md := id3Metadata(tag)

	if ms, err := strconv.ParseInt(textFrame(tag, "TLEN"), 10, 64); err == nil && ms > 0 {
		return md, time.Duration(ms) * time.Millisecond, nil
	}

	if err := rewind(rs); err != nil {
		return md, 0, nil
	}
	length, err := mp3Length(rs)
	if err != nil {
		logger.Debug().Err(err).Msg("could not decode mp3 stream")
	}
	return md, length, nil
}

// id3Metadata maps ID3v2 text frames to tag names.
func id3Metadata(tag *id3v2.Tag) model.Metadata {
	md := model.Metadata{}

	setNonEmpty(md, model.TagTitle, textFrame(tag, "TIT2"))
	setNonEmpty(md, model.TagArtist, textFrame(tag, "TPE1"))
	setNonEmpty(md, model.TagAlbumArtist, textFrame(tag, "TPE2"))
	setNonEmpty(md, model.TagAlbum, textFrame(tag, "TALB"))

	track, totalTracks := splitNumber(textFrame(tag, "TRCK"))
	setNonEmpty(md, model.TagTrackNumber, track)
	setNonEmpty(md, model.TagTotalTracks, totalTracks)

	// The disc number is kept whole: "2/3" is a valid discnumber value.
	setNonEmpty(md, model.TagDiscNumber, textFrame(tag, "TPOS"))
	if _, totalDiscs := splitNumber(textFrame(tag, "TPOS")); totalDiscs != "" {
		md.Set(model.TagTotalDiscs, totalDiscs)
	}

	return md
}

// textFrame returns the text of the first frame with the given ID.
func textFrame(tag *id3v2.Tag, id string) string {
	frames := tag.GetFrames(id)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// mp3Length decodes the frame headers of r to compute its playing time.
func mp3Length(r io.Reader) (time.Duration, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, err
	}

	n := dec.Length()
	if n <= 0 || dec.SampleRate() <= 0 {
		return 0, nil
	}

	samples := n / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(dec.SampleRate()), nil
}
