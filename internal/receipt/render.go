package receipt

import (
	"html"
	"strings"
)

const textSeparator = "--------------------------------"

// RenderText flattens blocks into plain receipt text, one block per
// line. This is also what gets archived and sent over WhatsApp.
func RenderText(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case KindSeparator:
			b.WriteString(textSeparator)
		default:
			b.WriteString(blk.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderHTML produces the on-screen summary markup.
func RenderHTML(blocks []Block) string {
	var b strings.Builder
	b.WriteString(`<div class="receipt">`)
	for _, blk := range blocks {
		switch blk.Kind {
		case KindHeader:
			b.WriteString("<p><strong>")
			b.WriteString(html.EscapeString(blk.Text))
			b.WriteString("</strong></p>")
		case KindSeparator:
			b.WriteString("<hr>")
		default:
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(blk.Text))
			b.WriteString("</p>")
		}
	}
	b.WriteString("</div>")
	return b.String()
}
