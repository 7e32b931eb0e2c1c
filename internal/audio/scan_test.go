package audio

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mb-seeder/internal/model"
)

func newTestLibrary(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/music/b/02.mp3", mp3Bytes(t, map[string]string{"TIT2": "Two", "TRCK": "2"}))
	writeFile(t, fs, "/music/b/01.mp3", mp3Bytes(t, map[string]string{"TIT2": "One", "TRCK": "1"}))
	writeFile(t, fs, "/music/a/01.flac", flacBytes(t, "TITLE=Flac"))
	writeFile(t, fs, "/music/a/cover.jpg", []byte{0xFF, 0xD8})
	writeFile(t, fs, "/music/a/broken.flac", []byte("junk"))
	return fs
}

func TestScanner_Paths(t *testing.T) {
	t.Parallel()

	fs := newTestLibrary(t)
	s := NewScanner(fs, NewReader(fs, zerolog.Nop()), 2)

	paths, err := s.Paths([]string{"/music", "/music/b/01.mp3"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/music/a/01.flac",
		"/music/a/broken.flac",
		"/music/b/01.mp3",
		"/music/b/02.mp3",
	}, paths)
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	fs := newTestLibrary(t)
	s := NewScanner(fs, NewReader(fs, zerolog.Nop()), 2)

	var (
		mu     sync.Mutex
		failed []string
	)
	s.OnError(func(path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, path)
	})

	var (
		reads    int
		lastDone int
	)
	s.OnRead(func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		reads++
		lastDone = max(lastDone, done)
		assert.Equal(t, 4, total)
	})

	files, err := s.Scan(context.Background(), []string{"/music"})
	require.NoError(t, err)

	assert.Equal(t, 4, reads)
	assert.Equal(t, 4, lastDone)
	require.Len(t, files, 3)
	assert.Equal(t, "Flac", files[0].Metadata.Get(model.TagTitle))
	assert.Equal(t, "One", files[1].Metadata.Get(model.TagTitle))
	assert.Equal(t, "Two", files[2].Metadata.Get(model.TagTitle))
	assert.Equal(t, []string{"/music/a/broken.flac"}, failed)
}

// lockedFs refuses to open one directory, like a folder without read
// permission.
type lockedFs struct {
	afero.Fs
	locked string
}

func (fs lockedFs) Open(name string) (afero.File, error) {
	if name == fs.locked {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return fs.Fs.Open(name)
}

func TestScanner_SkipsUnreadableDirectory(t *testing.T) {
	t.Parallel()

	fs := lockedFs{Fs: newTestLibrary(t), locked: "/music/a"}
	s := NewScanner(fs, NewReader(fs, zerolog.Nop()), 2)

	var failed []error
	s.OnError(func(path string, err error) {
		if path == "/music/a" {
			failed = append(failed, err)
		}
	})

	files, err := s.Scan(context.Background(), []string{"/music"})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "One", files[0].Metadata.Get(model.TagTitle))
	assert.Equal(t, "Two", files[1].Metadata.Get(model.TagTitle))
	require.Len(t, failed, 1)
	assert.True(t, errors.Is(failed[0], os.ErrPermission))

	_, err = s.Paths([]string{"/music/a"})
	assert.ErrorIs(t, err, os.ErrPermission, "an unreadable root is still an error")
}

func TestScanner_MissingRoot(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewScanner(fs, NewReader(fs, zerolog.Nop()), 0)

	_, err := s.Scan(context.Background(), []string{"/nowhere"})
	assert.Error(t, err)
}

func TestScanner_Cancelled(t *testing.T) {
	t.Parallel()

	fs := newTestLibrary(t)
	s := NewScanner(fs, NewReader(fs, zerolog.Nop()), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, []string{"/music"})
	assert.ErrorIs(t, err, context.Canceled)
}
