package ioutils

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "AC/DC - Back in Black", want: "AC_DC - Back in Black"},
		{in: "Add Cluster As Release...", want: "Add Cluster As Release"},
		{in: "What?  Why:   Me", want: "What_ Why_ Me"},
		{in: "tab\there", want: "tab_here"},
		{in: "trailing   ", want: "trailing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), tt.in)
	}
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/out", "Beatles - Abbey Road.html"), PagePath("/out", "Beatles - Abbey Road"))
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path, err := WriteTempFile(fs, "/tmp/seed", "page-*.html", func(w io.Writer) error {
		_, err := io.WriteString(w, "<!doctype html>")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/seed", filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "page-"))
	assert.True(t, strings.HasSuffix(path, ".html"))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "<!doctype html>", string(data))
}

func TestWriteTempFile_RemovesOnError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	boom := errors.New("boom")

	_, err := WriteTempFile(fs, "/tmp", "page-*.html", func(w io.Writer) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	entries, err := afero.ReadDir(fs, "/tmp")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileAndEnsureDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, "/a/b/c"))
	require.NoError(t, EnsureDir(fs, "/a/b/c"))
	require.NoError(t, WriteFile(fs, "/a/b/c/x.html", []byte("x")))

	ok, err := afero.Exists(fs, "/a/b/c/x.html")
	require.NoError(t, err)
	assert.True(t, ok)
}
