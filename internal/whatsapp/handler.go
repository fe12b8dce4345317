package whatsapp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
)

type Handler struct {
	orders *orders.Service
}

func NewHandler(orderService *orders.Service) *Handler {
	return &Handler{orders: orderService}
}

// Link builds a wa.me link for the customer of an order, with the rendered
// receipt as the prefilled message. Orders without a usable phone get a 422.
func (h *Handler) Link(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		if err == orders.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	phone := NormalizePhone(orderPhone(order))
	if phone == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "order has no valid phone number"})
		return
	}

	text := receipt.RenderText(receipt.Compose(order, receipt.Options{}))
	c.JSON(http.StatusOK, gin.H{
		"phone": phone,
		"url":   BuildURL(phone, text),
	})
}

func orderPhone(o *orders.Order) string {
	for _, m := range o.Meals {
		if m.Address != nil && m.Address.PhoneNumber != "" {
			return m.Address.PhoneNumber
		}
	}
	for _, b := range o.Breakfasts {
		if b.Address != nil && b.Address.PhoneNumber != "" {
			return b.Address.PhoneNumber
		}
	}
	return ""
}
