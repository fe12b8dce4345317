package receipt

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

// SideSource supplies the side-dish catalog for "No Incluir" lines.
type SideSource interface {
	ListSides(ctx context.Context) ([]core.OptionRef, error)
}

type Handler struct {
	orders *orders.Service
	sides  SideSource
}

func NewHandler(orderService *orders.Service, sides SideSource) *Handler {
	return &Handler{orders: orderService, sides: sides}
}

// --------------------------------------------------
// Order receipt (blocks, text or html)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	blocks := Compose(order, Options{SideCatalog: h.sideCatalog(c.Request.Context())})

	switch c.Query("format") {
	case "text":
		c.String(http.StatusOK, RenderText(blocks))
	case "html":
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(RenderHTML(blocks)))
	default:
		c.JSON(http.StatusOK, gin.H{"blocks": blocks})
	}
}

// sideCatalog loads the catalog, tolerating an unavailable source: the
// receipt just omits the "No Incluir" line.
func (h *Handler) sideCatalog(ctx context.Context) []core.OptionRef {
	if h.sides == nil {
		return nil
	}
	catalog, err := h.sides.ListSides(ctx)
	if err != nil {
		return nil
	}
	return catalog
}
