package printing

import (
	"bytes"
	"testing"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
)

func TestDocumentStartsWithInit(t *testing.T) {
	d := NewDocument(32)
	got := d.Bytes()
	if len(got) < 2 || got[0] != esc || got[1] != '@' {
		t.Fatalf("document must start with ESC @, got % x", got[:2])
	}
}

func TestDocumentRuleMatchesWidth(t *testing.T) {
	d := NewDocument(16)
	d.Rule()
	if !bytes.Contains(d.Bytes(), []byte("----------------\n")) {
		t.Fatalf("missing 16-char rule in % x", d.Bytes())
	}
}

func TestRenderESCPOSWrapsHeaders(t *testing.T) {
	blocks := []receipt.Block{
		{Kind: receipt.KindHeader, Text: "2 Almuerzos iguales"},
		{Kind: receipt.KindField, Text: "Sopa de pasta"},
		{Kind: receipt.KindSeparator},
	}
	data := RenderESCPOS(blocks, 32)

	if !bytes.Contains(data, []byte{esc, 'a', 1}) {
		t.Error("header must switch to centered alignment")
	}
	if !bytes.Contains(data, []byte{esc, 'E', 1}) {
		t.Error("header must enable bold")
	}
	if !bytes.Contains(data, []byte("2 Almuerzos iguales\n")) {
		t.Error("header text missing")
	}
	if !bytes.Contains(data, []byte("Sopa de pasta\n")) {
		t.Error("field text missing")
	}
	if !bytes.Contains(data, []byte{gs, 'V', 0x00}) {
		t.Error("stream must end with a cut")
	}
}

func TestNewPrinterFromConfig(t *testing.T) {
	if _, err := NewPrinterFromConfig("usb", "", ""); err == nil {
		t.Error("usb without path must fail")
	}
	if _, err := NewPrinterFromConfig("network", "", ""); err == nil {
		t.Error("network without address must fail")
	}
	if _, err := NewPrinterFromConfig("laser", "", ""); err == nil {
		t.Error("unknown type must fail")
	}
	p, err := NewPrinterFromConfig("", "", "")
	if err != nil {
		t.Fatalf("empty type must yield the null printer: %v", err)
	}
	if p.IsConnected() {
		t.Error("null printer must report disconnected")
	}
	if err := p.Print([]byte("x")); err != nil {
		t.Errorf("null printer must swallow jobs: %v", err)
	}
}
