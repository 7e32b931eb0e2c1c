package model

import (
	"path/filepath"
	"strings"
	"time"
)

// File represents a single tagged audio file.
//
// File contains everything the seeding actions need from one file:
//   - The path it was read from
//   - Its tags, unparsed (see Metadata)
//   - Its playing time, if it could be determined
//
// Files are created via NewFile, which also fills in the hidden "~filename"
// variable used in diagnostics.
//
// Example:
//
//	md := Metadata{TagTitle: "Come Together", TagTrackNumber: "1"}
//	f := NewFile("/music/Abbey Road/01.flac", md, 259*time.Second)
//	// f.Metadata.Get(TagFilename) == "01"
type File struct {
	// Path is the file system path the file was read from.
	Path string

	// Metadata holds the file's tags.
	Metadata Metadata

	// Length is the playing time. Zero means unknown.
	Length time.Duration
}

// NewFile creates a new File for path with the given tags and length.
//
// The metadata is copied, so later changes to md do not affect the file.
// The "~filename" variable is set to the base name of path without its
// extension, and "~length" to the display form of length (see FormatLength).
func NewFile(path string, md Metadata, length time.Duration) *File {
	f := &File{
		Path:     path,
		Metadata: md.Clone(),
		Length:   length,
	}

	base := filepath.Base(path)
	f.Metadata.Set(TagFilename, strings.TrimSuffix(base, filepath.Ext(base)))
	f.Metadata.Set(TagLength, FormatLength(length))

	return f
}

// LengthMillis returns the playing time in whole milliseconds.
func (f *File) LengthMillis() int64 {
	return f.Length.Milliseconds()
}

// Kind implements Target.
func (f *File) Kind() Kind {
	return KindFile
}

func (f *File) isTarget() {}
