package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Render(t *testing.T) {
	t.Parallel()

	values := NewFormValues()
	values.Set(FieldReleaseArtist, "Simon & Garfunkel")
	values.Set(FieldReleaseName, `The "Best" Of`)

	page := &Page{
		Title:  "Add Cluster As Release...",
		Action: "https://musicbrainz.org/release/add",
		Values: values,
	}

	var sb strings.Builder
	require.NoError(t, page.Render(&sb))

	want := `<!doctype html>
<meta charset="UTF-8">
<title>Add Cluster As Release...</title>
<form action="https://musicbrainz.org/release/add" method="post">
<input type="hidden" name="artist_credit.names.0.artist.name" value="Simon &amp; Garfunkel">
<input type="hidden" name="name" value="The &quot;Best&quot; Of">
<input type="submit" value="Add Cluster As Release...">
</form>
<script>document.forms[0].submit()</script>
`
	assert.Equal(t, want, sb.String())
}

func TestPage_Render_NoValues(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, (&Page{Title: "x", Action: "http://localhost:5000/recording/create"}).Render(&sb))

	assert.NotContains(t, sb.String(), `type="hidden"`)
	assert.Contains(t, sb.String(), `<form action="http://localhost:5000/recording/create" method="post">`)
}

func TestEscapeAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a & b", want: "a &amp; b"},
		{in: `say "hi"`, want: "say &quot;hi&quot;"},
		{in: "&quot;", want: "&amp;quot;"},
		{in: "<tag>'", want: "<tag>'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeAttr(tt.in), tt.in)
	}
}
