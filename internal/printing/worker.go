package printing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/payments"
)

// Worker auto-prints newly created delivery orders so the kitchen gets
// a ticket without anyone touching the dashboard.
type Worker struct {
	orders   *orders.Service
	printing *Service
	interval time.Duration
}

func NewWorker(orderService *orders.Service, printingService *Service, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Worker{orders: orderService, printing: printingService, interval: interval}
}

// Run polls until the context is cancelled. Meant to be launched as a
// goroutine from main.
func (w *Worker) Run(ctx context.Context) {
	logrus.WithField("interval", w.interval).Info("auto-print worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("auto-print worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	for _, collection := range []string{orders.CollectionOrders, orders.CollectionBreakfast} {
		pending, err := w.orders.ListUnprinted(ctx, collection)
		if err != nil {
			logrus.WithError(err).WithField("collection", collection).Warn("auto-print poll failed")
			continue
		}
		for _, order := range pending {
			if !payments.IsDeliveryOrder(order) {
				continue
			}
			if _, err := w.printing.PrintOrder(ctx, order); err != nil {
				logrus.WithError(err).WithField("order", order.ID).Warn("auto-print failed")
			}
		}
	}
}
