package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mb-seeder/internal/config"
)

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
}

func (o *fakeOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return nil
}

type cliTestEnv struct {
	fs     afero.Fs
	opener *fakeOpener
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	env := &cliTestEnv{fs: afero.NewMemMapFs(), opener: &fakeOpener{}}

	writeMP3(t, env.fs, "/music/abbey/01.mp3", map[string]string{
		"TIT2": "Come Together", "TPE1": "The Beatles", "TALB": "Abbey Road", "TRCK": "1/17", "TLEN": "259946",
	})
	writeMP3(t, env.fs, "/music/abbey/02.mp3", map[string]string{
		"TIT2": "Something", "TPE1": "The Beatles", "TALB": "Abbey Road", "TRCK": "2/17", "TLEN": "182293",
	})
	writeMP3(t, env.fs, "/music/single.mp3", map[string]string{
		"TIT2": "Lonely", "TPE1": "Someone", "TLEN": "90000",
	})
	return env
}

func writeMP3(t *testing.T, fs afero.Fs, path string, frames map[string]string) {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	var buf bytes.Buffer
	_, err := tag.WriteTo(&buf)
	require.NoError(t, err)
	buf.Write(make([]byte, 16))

	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommandWithContext(newCommandContext(env.fs, env.opener))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", "/etc/mb-seeder.toml"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestClustersCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, env, "clusters", "/music")
	require.NoError(t, err)

	assert.Contains(t, out, "The Beatles - Abbey Road (2 files)")
	assert.Contains(t, out, "Come Together")
	assert.Contains(t, out, "[4:19]")
	assert.Contains(t, out, "Someone")
	assert.Contains(t, stderr, "Found 3 files in 2 clusters")
}

func TestReleaseCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "release", "/music", "--cluster", "1", "--output-dir", "/out")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, "/out/The Beatles - Abbey Road - Add Cluster As Release.html", path)

	data, err := afero.ReadFile(env.fs, path)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, `<form action="https://musicbrainz.org/release/add" method="post">`)
	assert.Contains(t, page, `name="mediums.0.track.1.name" value="Something"`)

	require.Len(t, env.opener.urls, 1)
	assert.Equal(t, "file:///out/The%20Beatles%20-%20Abbey%20Road%20-%20Add%20Cluster%20As%20Release.html", env.opener.urls[0])
}

func TestRecordingCommand_NoBrowser(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, env,
		"recording", "/music/single.mp3",
		"--no-browser", "--server-host", "localhost", "--server-port", "5000", "--output-dir", "/out",
	)
	require.NoError(t, err)
	assert.Empty(t, env.opener.urls)
	assert.Contains(t, stderr, "in a browser to continue")

	data, err := afero.ReadFile(env.fs, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, string(data), `action="http://localhost:5000/recording/create"`)
	assert.Contains(t, string(data), `name="edit-recording.length" value="1:30"`)
}

func TestSeedCommand_OutOfRange(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "file-release", "/music", "--file", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file 9 of 3")
	assert.Empty(t, env.opener.urls)
}

func TestSeedCommand_NoFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	require.NoError(t, env.fs.MkdirAll("/empty", 0o755))

	_, _, err := runCLI(t, env, "release", "/empty")
	assert.EqualError(t, err, "no audio files found")
}

func TestActionsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "actions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "add-cluster-as-release"))
	assert.Contains(t, lines[1], "/recording/create")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file did not exist; defaults were used")
	assert.Contains(t, out, "Configuration valid")

	out, _, err = runCLI(t, env, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration to /etc/mb-seeder.toml")

	_, _, err = runCLI(t, env, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = runCLI(t, env, "config", "init", "--overwrite")
	require.NoError(t, err)

	settings, err := config.Load(env.fs, "/etc/mb-seeder.toml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)

	out, _, err = runCLI(t, env, "config", "validate")
	require.NoError(t, err)
	assert.NotContains(t, out, "did not exist")
	assert.Contains(t, out, "Server: https://musicbrainz.org")
}

func TestConfigShow_FlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "show", "--server-host", "localhost", "--server-port", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "server_host = 'localhost'")
	assert.Contains(t, out, "server_port = 5000")
}

func TestConfigValidate_Invalid(t *testing.T) {
	env := setupCLITestEnv(t)
	require.NoError(t, afero.WriteFile(env.fs, "/etc/mb-seeder.toml", []byte("server_port = 70000\n"), 0o644))

	_, _, err := runCLI(t, env, "config", "validate")
	assert.ErrorContains(t, err, "ServerPort")
}
