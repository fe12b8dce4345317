package printing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

type Handler struct {
	orders  *orders.Service
	service *Service
}

func NewHandler(orderService *orders.Service, service *Service) *Handler {
	return &Handler{orders: orderService, service: service}
}

// --------------------------------------------------
// Print an order's receipt
// --------------------------------------------------
func (h *Handler) Print(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	res, err := h.service.PrintOrder(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// --------------------------------------------------
// Printer status
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": h.service.printer.IsConnected()})
}
