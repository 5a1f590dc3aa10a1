package renderer

import (
	"bytes"
	"fmt"

	"github.com/fmarino/prospect"
	md "github.com/nao1215/markdown"
)

// NotesMarkdown renders the notes of a single client in stored
// (creation) order.
func NotesMarkdown(c prospect.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Notas de %s", c.Name))
	if len(c.Notes) == 0 {
		doc.PlainText("No hay notas registradas.")
		return doc.String()
	}

	for _, n := range c.Notes {
		doc.H2(fmt.Sprintf("#%d %s (%s)", n.ID, n.Title, n.Date))
		if t := tags(n); t != "" {
			doc.PlainText(md.Italic(t))
		}
		if n.Content != "" {
			doc.PlainText(n.Content)
		}
	}

	return doc.String()
}
