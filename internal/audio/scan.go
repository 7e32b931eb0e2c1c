package audio

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/mb-seeder/internal/model"
)

// DefaultScanLimit is the number of files read at once when no limit is
// given.
const DefaultScanLimit = 4

// Scanner finds audio files below a set of paths and reads them
// concurrently.
//
// Files that cannot be read are reported to the error callback and skipped,
// so one broken file does not hide the rest of an album.
//
// Example:
//
//	s := audio.NewScanner(fs, audio.NewReader(fs, logger), 8)
//	s.OnError(func(path string, err error) {
//	    logger.Warn().Str("path", path).Err(err).Msg("skipping file")
//	})
//	files, err := s.Scan(ctx, []string{"/music/Abbey Road"})
type Scanner struct {
	fs      afero.Fs
	reader  *Reader
	limit   int
	onError func(path string, err error)
	onRead  func(done, total int)
}

// NewScanner creates a Scanner that reads up to limit files at once. A limit
// below 1 means DefaultScanLimit.
func NewScanner(fs afero.Fs, reader *Reader, limit int) *Scanner {
	if limit < 1 {
		limit = DefaultScanLimit
	}
	return &Scanner{fs: fs, reader: reader, limit: limit}
}

// OnError sets the callback for files that could not be read. It may be
// called from several goroutines at once.
func (s *Scanner) OnError(fn func(path string, err error)) {
	s.onError = fn
}

// OnRead sets a callback run after each file is read, successfully or not,
// with the number of files done so far and the total. It may be called from
// several goroutines at once.
func (s *Scanner) OnRead(fn func(done, total int)) {
	s.onRead = fn
}

// Paths returns the supported audio files below roots, sorted and without
// duplicates. A root may be a single file; it is included only if supported.
//
// A root that cannot be walked is an error. Entries below a root that cannot
// be read are passed to the OnError callback and skipped.
func (s *Scanner) Paths(roots []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				if s.onError != nil {
					s.onError(path, err)
				}
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.IsDir() && Supported(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// Scan reads every supported file below roots.
//
// Files are returned in path order. Unreadable files and directories are
// passed to the OnError callback and left out. Scan only fails if a root
// cannot be walked or ctx is cancelled.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]*model.File, error) {
	paths, err := s.Paths(roots)
	if err != nil {
		return nil, err
	}

	results := make([]*model.File, len(paths))
	var done atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := s.reader.Read(path)
			if s.onRead != nil {
				s.onRead(int(done.Add(1)), len(paths))
			}
			if err != nil {
				if s.onError != nil {
					s.onError(path, err)
				}
				return nil
			}
			results[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]*model.File, 0, len(results))
	for _, f := range results {
		if f != nil {
			files = append(files, f)
		}
	}
	return files, nil
}
