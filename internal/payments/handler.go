package payments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

type Handler struct {
	orders *orders.Service
}

func NewHandler(orderService *orders.Service) *Handler {
	return &Handler{orders: orderService}
}

func (h *Handler) loadAll(c *gin.Context) (generic, table, breakfast []*orders.Order, ok bool) {
	ctx := c.Request.Context()

	generic, err := h.orders.List(ctx, orders.CollectionOrders)
	if err == nil {
		table, err = h.orders.List(ctx, orders.CollectionTableOrders)
	}
	if err == nil {
		breakfast, err = h.orders.List(ctx, orders.CollectionBreakfast)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return nil, nil, nil, false
	}
	return generic, table, breakfast, true
}

// --------------------------------------------------
// Per-method totals (dashboard tiles)
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	generic, table, breakfast, ok := h.loadAll(c)
	if !ok {
		return
	}

	all := make([]*orders.Order, 0, len(generic)+len(table)+len(breakfast))
	all = append(all, generic...)
	all = append(all, table...)
	all = append(all, breakfast...)

	sums := SumPaymentsByMethod(all)

	// Orders whose lunch split drifted from the total are reported, not
	// silently corrected.
	var mismatched []string
	for _, o := range all {
		if !SplitMatchesTotal(o) {
			mismatched = append(mismatched, o.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":           sums,
		"splitMismatchIDs": mismatched,
	})
}

// --------------------------------------------------
// Register reconciliation (caja)
// --------------------------------------------------
func (h *Handler) Caja(c *gin.Context) {
	generic, table, breakfast, ok := h.loadAll(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, CalcMethodTotalsAll(generic, table, breakfast))
}
