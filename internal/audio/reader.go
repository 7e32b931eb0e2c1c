package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/handiism/mb-seeder/internal/model"
)

// ErrUnsupportedFormat is returned for files whose extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Format identifies the tag reader used for a file.
type Format int

const (
	// FormatUnknown is returned for unsupported extensions.
	FormatUnknown Format = iota

	// FormatMP3 files are read with the ID3v2 reader.
	FormatMP3

	// FormatFLAC files are read from their Vorbis comment block.
	FormatFLAC

	// FormatGeneric covers the containers understood by the generic reader
	// (Ogg, MP4/M4A, DSF). Their length is not determined.
	FormatGeneric
)

var extensions = map[string]Format{
	".mp3":  FormatMP3,
	".flac": FormatFLAC,
	".ogg":  FormatGeneric,
	".oga":  FormatGeneric,
	".opus": FormatGeneric,
	".m4a":  FormatGeneric,
	".m4b":  FormatGeneric,
	".mp4":  FormatGeneric,
	".dsf":  FormatGeneric,
}

// FormatOf returns the Format for path based on its extension.
func FormatOf(path string) Format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Supported reports whether path has an extension Reader can read.
func Supported(path string) bool {
	return FormatOf(path) != FormatUnknown
}

// Reader reads tags and playing time from audio files.
//
// Tags are kept as the raw strings found in the file: a discnumber of "-1/4"
// or "boop" is passed through unchanged so the seeding code can decide what
// to do with it. Track numbers written as "N/M" are split into tracknumber and
// totaltracks.
//
// Example:
//
//	r := audio.NewReader(afero.NewOsFs(), logger)
//	f, err := r.Read("/music/Abbey Road/01 Come Together.mp3")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Metadata.Get(model.TagTitle), f.Metadata.Get(model.TagLength))
type Reader struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewReader creates a Reader that opens files on fs.
func NewReader(fs afero.Fs, logger zerolog.Logger) *Reader {
	return &Reader{fs: fs, log: logger}
}

// Read reads the file at path.
//
// Returns ErrUnsupportedFormat if the extension is not supported. A file
// whose length cannot be determined is still returned, with a zero Length.
func (r *Reader) Read(path string) (*model.File, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		md     model.Metadata
		length time.Duration
	)
	switch format {
	case FormatMP3:
		md, length, err = readMP3(f, r.log)
	case FormatFLAC:
		md, length, err = readFLAC(f)
	default:
		md, err = readGeneric(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read tags of %s: %w", path, err)
	}

	if length == 0 {
		r.log.Debug().Str("path", path).Msg("could not determine length")
	}

	return model.NewFile(path, md, length), nil
}

// splitNumber splits "N/M" into "N" and "M". Values without a slash are
// returned unchanged with an empty total.
func splitNumber(s string) (num, total string) {
	num, total, _ = strings.Cut(s, "/")
	return strings.TrimSpace(num), strings.TrimSpace(total)
}

// setNonEmpty sets name in md if value is not empty.
func setNonEmpty(md model.Metadata, name, value string) {
	if value != "" {
		md.Set(name, value)
	}
}

// rewind seeks r back to the start.
func rewind(r io.Seeker) error {
	_, err := r.Seek(0, io.SeekStart)
	return err
}
