package seed

import (
	"fmt"
	"io"
	"strings"
)

// Page is a self-submitting HTML form.
//
// When opened in a browser the page immediately posts its hidden fields to
// Action, which seeds the MusicBrainz form there. The submit button stays
// visible in case scripts are disabled.
//
// Example:
//
//	page := &Page{
//	    Title:  "Add Cluster As Release...",
//	    Action: "https://musicbrainz.org/release/add",
//	    Values: values,
//	}
//	err := page.Render(file)
//
//	// Result:
//	// <!doctype html>
//	// <meta charset="UTF-8">
//	// <title>Add Cluster As Release...</title>
//	// <form action="https://musicbrainz.org/release/add" method="post">
//	// <input type="hidden" name="name" value="Abbey Road">
//	// <input type="submit" value="Add Cluster As Release...">
//	// </form>
//	// <script>document.forms[0].submit()</script>
type Page struct {
	// Title is used for the page title and the submit button.
	Title string

	// Action is the absolute URL the form is posted to.
	Action string

	// Values are the form fields, one hidden input each.
	Values *FormValues
}

// Render writes the page to w.
func (p *Page) Render(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("<!doctype html>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", p.Title)
	fmt.Fprintf(&sb, "<form action=\"%s\" method=\"post\">\n", escapeAttr(p.Action))

	if p.Values != nil {
		for name, value := range p.Values.All() {
			fmt.Fprintf(&sb, "<input type=\"hidden\" name=\"%s\" value=\"%s\">\n", escapeAttr(name), escapeAttr(value))
		}
	}

	fmt.Fprintf(&sb, "<input type=\"submit\" value=\"%s\">\n", escapeAttr(p.Title))
	sb.WriteString("</form>\n")
	sb.WriteString("<script>document.forms[0].submit()</script>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeAttr escapes a string for a double-quoted HTML attribute.
//
// Replaces: & "
// With:     &amp; &quot;
func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
