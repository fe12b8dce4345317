package printing

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
)

// Archiver stores a copy of every printed receipt. Optional.
type Archiver interface {
	UploadReceipt(ctx context.Context, order *orders.Order, text string) error
}

type Service struct {
	orders   *orders.Service
	printer  Printer
	sides    receipt.SideSource
	archiver Archiver
	width    int
}

func NewService(orderService *orders.Service, printer Printer, sides receipt.SideSource, archiver Archiver, width int) *Service {
	if width <= 0 {
		width = 32
	}
	return &Service{
		orders:   orderService,
		printer:  printer,
		sides:    sides,
		archiver: archiver,
		width:    width,
	}
}

// Result reports what happened to one print job. The text rendering is
// always returned so the caller can fall back to showing it on screen
// when the printer is down.
type Result struct {
	Text    string `json:"text"`
	Printed bool   `json:"printed"`
}

// PrintOrder renders the order's receipt, sends it to the printer,
// marks the order printed and archives the text copy. Printer and
// archive failures are logged, not fatal: the kitchen can always
// re-print, and a receipt on screen beats no receipt.
func (s *Service) PrintOrder(ctx context.Context, order *orders.Order) (*Result, error) {
	opts := receipt.Options{}
	if s.sides != nil {
		if catalog, err := s.sides.ListSides(ctx); err == nil {
			opts.SideCatalog = catalog
		}
	}
	blocks := receipt.Compose(order, opts)
	res := &Result{Text: receipt.RenderText(blocks)}

	if err := s.printer.Print(RenderESCPOS(blocks, s.width)); err != nil {
		logrus.WithError(err).WithField("order", order.ID).Warn("receipt print failed")
	} else {
		res.Printed = true
		if err := s.orders.MarkPrinted(ctx, order); err != nil {
			logrus.WithError(err).WithField("order", order.ID).Warn("failed to mark order printed")
		}
	}

	if s.archiver != nil {
		if err := s.archiver.UploadReceipt(ctx, order, res.Text); err != nil {
			logrus.WithError(err).WithField("order", order.ID).Warn("receipt archive failed")
		}
	}

	return res, nil
}
