// Package audio reads tags and playing time from audio files.
//
// # Reading Files
//
// Reader picks a tag reader by file extension:
//
//	r := audio.NewReader(afero.NewOsFs(), logger)
//	f, err := r.Read("/music/Abbey Road/01 Come Together.flac")
//
// Supported formats:
//   - MP3 (ID3v2 frames, length from TLEN or the MPEG frames)
//   - FLAC (Vorbis comments, length from STREAMINFO)
//   - Ogg, Opus, MP4/M4A and DSF (common tags only, no length)
//
// Tag values are kept as written. Disc numbers in particular are not parsed
// here, since "0", "-1/4" and other odd values must reach the seeding code
// unchanged.
//
// # Scanning
//
// Scanner walks directories and reads the files it finds with a bounded
// number of goroutines:
//
//	s := audio.NewScanner(fs, r, 8)
//	files, err := s.Scan(ctx, []string{"/music"})
package audio
