package printing

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
)

// RenderESCPOS maps composer blocks onto the printer document: headers
// centered and bold, fields left-aligned, separators as dashed rules.
func RenderESCPOS(blocks []receipt.Block, width int) []byte {
	d := NewDocument(width)
	for _, b := range blocks {
		switch b.Kind {
		case receipt.KindHeader:
			d.Align(AlignCenter).Bold(true).Line(b.Text).Bold(false).Align(AlignLeft)
		case receipt.KindSeparator:
			d.Rule()
		default:
			d.Line(b.Text)
		}
	}
	d.Feed(3).Cut()
	return d.Bytes()
}
