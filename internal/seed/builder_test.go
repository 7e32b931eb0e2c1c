package seed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mb-seeder/internal/model"
)

func newTestFile(path string, md model.Metadata, length time.Duration) *model.File {
	return model.NewFile(path, md, length)
}

func abbeyRoad() *model.Cluster {
	return model.NewCluster("The Beatles", "Abbey Road", []*model.File{
		newTestFile("/music/01.flac", model.Metadata{
			model.TagTitle:       "Come Together",
			model.TagArtist:      "The Beatles",
			model.TagTrackNumber: "1",
			model.TagDiscNumber:  "1",
		}, 259946*time.Millisecond),
		newTestFile("/music/02.flac", model.Metadata{
			model.TagTitle:       "Something",
			model.TagArtist:      "George Harrison",
			model.TagTrackNumber: "2",
			model.TagDiscNumber:  "1",
		}, 182293*time.Millisecond),
	})
}

func TestFormBuilder_ClusterRelease(t *testing.T) {
	t.Parallel()

	values := NewFormValues()
	NewFormBuilder(zerolog.Nop()).ClusterRelease(abbeyRoad(), values)

	assert.Equal(t, []string{
		"artist_credit.names.0.artist.name",
		"name",
		"mediums.0.track.0.name",
		"mediums.0.track.0.length",
		"mediums.0.track.1.name",
		"mediums.0.track.1.artist_credit.names.0.name",
		"mediums.0.track.1.length",
	}, values.Keys())

	get := func(k string) string {
		v, _ := values.Get(k)
		return v
	}
	assert.Equal(t, "The Beatles", get("artist_credit.names.0.artist.name"))
	assert.Equal(t, "Abbey Road", get("name"))
	assert.Equal(t, "Come Together", get("mediums.0.track.0.name"))
	assert.Equal(t, "259946", get("mediums.0.track.0.length"))
	assert.Equal(t, "George Harrison", get("mediums.0.track.1.artist_credit.names.0.name"))
	assert.Equal(t, "182293", get("mediums.0.track.1.length"))
}

func TestFormBuilder_ClusterRelease_Idempotent(t *testing.T) {
	t.Parallel()

	b := NewFormBuilder(zerolog.Nop())
	cluster := abbeyRoad()

	first := NewFormValues()
	b.ClusterRelease(cluster, first)

	second := NewFormValues()
	b.ClusterRelease(cluster, second)
	b.ClusterRelease(cluster, second)

	assert.Equal(t, first.Keys(), second.Keys())
	for k, v := range first.All() {
		got, ok := second.Get(k)
		assert.True(t, ok, k)
		assert.Equal(t, v, got, k)
	}
}

func TestFormBuilder_ClusterRelease_PositionFallback(t *testing.T) {
	t.Parallel()

	cluster := model.NewCluster("A", "B", []*model.File{
		newTestFile("/x/a.mp3", model.Metadata{model.TagTitle: "One", model.TagArtist: "A"}, 0),
		newTestFile("/x/b.mp3", model.Metadata{model.TagTitle: "Two", model.TagArtist: "A", model.TagTrackNumber: "x"}, 0),
		newTestFile("/x/c.mp3", model.Metadata{model.TagTitle: "Five", model.TagArtist: "A", model.TagTrackNumber: "5"}, 0),
	})

	values := NewFormValues()
	NewFormBuilder(zerolog.Nop()).ClusterRelease(cluster, values)

	for field, want := range map[string]string{
		"mediums.0.track.0.name":   "One",
		"mediums.0.track.1.name":   "Two",
		"mediums.0.track.4.name":   "Five",
		"mediums.0.track.0.length": "0",
	} {
		got, ok := values.Get(field)
		require.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}
}

func TestFormBuilder_ClusterRelease_DiscNumbers(t *testing.T) {
	t.Parallel()

	cluster := model.NewCluster("A", "B", []*model.File{
		newTestFile("/x/a.mp3", model.Metadata{model.TagTitle: "a", model.TagArtist: "A", model.TagTrackNumber: "1", model.TagDiscNumber: "-2/2"}, 0),
		newTestFile("/x/b.mp3", model.Metadata{model.TagTitle: "b", model.TagArtist: "A", model.TagTrackNumber: "1", model.TagDiscNumber: "-1/4"}, 0),
		newTestFile("/x/c.mp3", model.Metadata{model.TagTitle: "c", model.TagArtist: "A", model.TagTrackNumber: "1", model.TagDiscNumber: "1/4"}, 0),
	})

	values := NewFormValues()
	NewFormBuilder(zerolog.Nop()).ClusterRelease(cluster, values)

	for field, want := range map[string]string{
		"mediums.0.track.0.name": "a",
		"mediums.1.track.0.name": "b",
		"mediums.3.track.0.name": "c",
	} {
		got, ok := values.Get(field)
		require.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}
}

func TestFormBuilder_ClusterRelease_LogsUnparseableDisc(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewFormBuilder(zerolog.New(&buf))

	cluster := model.NewCluster("A", "B", []*model.File{
		newTestFile("/x/bad.mp3", model.Metadata{model.TagTitle: "Bad", model.TagArtist: "A", model.TagTrackNumber: "2", model.TagDiscNumber: "boop"}, 0),
		newTestFile("/x/good.mp3", model.Metadata{model.TagTitle: "Good", model.TagArtist: "A", model.TagTrackNumber: "3"}, 0),
	})

	values := NewFormValues()
	b.ClusterRelease(cluster, values)

	v, ok := values.Get("mediums.0.track.1.name")
	require.True(t, ok)
	assert.Equal(t, "Bad", v)

	v, ok = values.Get("mediums.0.track.2.name")
	require.True(t, ok)
	assert.Equal(t, "Good", v)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[0], `"file":"bad"`)
	assert.Contains(t, lines[0], `"discnumber":"boop"`)
	assert.Contains(t, lines[0], "could not get disc number, assuming 0")
}

func TestFormBuilder_FileRecording(t *testing.T) {
	t.Parallel()

	file := newTestFile("/x/song.flac", model.Metadata{
		model.TagTitle:  "Song",
		model.TagArtist: "Someone",
		model.TagAlbum:  "ignored",
	}, 259*time.Second)

	values := NewFormValues()
	NewFormBuilder(zerolog.Nop()).FileRecording(file, values)

	assert.Equal(t, []string{
		"edit-recording.name",
		"edit-recording.artist_credit.names.0.artist.name",
		"edit-recording.length",
	}, values.Keys())

	v, _ := values.Get("edit-recording.length")
	assert.Equal(t, "4:19", v)
}

func TestFormBuilder_FileRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		md         model.Metadata
		wantArtist string
		wantName   string
	}{
		{
			name:       "album tags present",
			md:         model.Metadata{model.TagTitle: "T", model.TagArtist: "A", model.TagAlbumArtist: "AA", model.TagAlbum: "Al"},
			wantArtist: "AA",
			wantName:   "Al",
		},
		{
			name:       "falls back to artist and title",
			md:         model.Metadata{model.TagTitle: "T", model.TagArtist: "A"},
			wantArtist: "A",
			wantName:   "T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := NewFormValues()
			NewFormBuilder(zerolog.Nop()).FileRelease(newTestFile("/x/t.ogg", tt.md, 90*time.Second), values)

			get := func(k string) string {
				v, ok := values.Get(k)
				require.True(t, ok, k)
				return v
			}
			assert.Equal(t, tt.wantArtist, get("artist_credit.names.0.artist.name"))
			assert.Equal(t, tt.wantName, get("name"))
			assert.Equal(t, "T", get("mediums.0.track.0.name"))
			assert.Equal(t, "A", get("mediums.0.track.0.artist_credit.names.0.name"))
			assert.Equal(t, "90000", get("mediums.0.track.0.length"))
		})
	}
}
