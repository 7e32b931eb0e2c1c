package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormValues_Order(t *testing.T) {
	t.Parallel()

	values := NewFormValues()
	values.Set("b", "1")
	values.Set("a", "2")
	values.Set("c", "3")

	assert.Equal(t, []string{"b", "a", "c"}, values.Keys())
	assert.Equal(t, 3, values.Len())
}

func TestFormValues_OverwriteKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	values := NewFormValues()
	values.Set("name", "first")
	values.Set("other", "x")
	values.Set("name", "second")

	v, ok := values.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, []string{"name", "other"}, values.Keys())

	var pairs [][2]string
	for k, v := range values.All() {
		pairs = append(pairs, [2]string{k, v})
	}
	assert.Equal(t, [][2]string{{"name", "second"}, {"other", "x"}}, pairs)
}

func TestFormValues_ZeroValueAndClear(t *testing.T) {
	t.Parallel()

	var values FormValues
	_, ok := values.Get("missing")
	assert.False(t, ok)

	values.Set("k", "")
	v, ok := values.Get("k")
	assert.True(t, ok)
	assert.Empty(t, v)

	values.Clear()
	assert.Equal(t, 0, values.Len())
	assert.Empty(t, values.Keys())
}

func TestTrackField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mediums.1.track.4.name", TrackField(1, 4, TrackFieldName))
	assert.Equal(t, "mediums.0.track.0.artist_credit.names.0.name", TrackField(0, 0, TrackFieldArtist))
	assert.Equal(t, "mediums.2.track.-1.length", TrackField(2, -1, TrackFieldLength))
}
