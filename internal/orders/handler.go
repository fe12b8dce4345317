package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var order Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	order.Collection = c.Param("collection")

	created, err := h.service.Create(c.Request.Context(), &order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// List orders in a collection
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Param("collection"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// --------------------------------------------------
// Get one order
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Update status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.Param("collection"), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Edit payment split
// --------------------------------------------------
func (h *Handler) EditSplit(c *gin.Context) {
	var req struct {
		PaymentLines []PaymentLine `json:"paymentLines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.EditSplit(c.Request.Context(), c.Param("collection"), c.Param("id"), req.PaymentLines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Assign delivery person
// --------------------------------------------------
func (h *Handler) AssignDeliveryPerson(c *gin.Context) {
	var req struct {
		DeliveryPerson string `json:"deliveryPerson"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.AssignDeliveryPerson(c.Request.Context(), c.Param("collection"), c.Param("id"), req.DeliveryPerson)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Settlement
// --------------------------------------------------
func (h *Handler) Settle(c *gin.Context) {
	var req struct {
		Method string `json:"method"`
	}
	// Body is optional: no method means settle the whole order.
	_ = c.ShouldBindJSON(&req)

	var (
		order *Order
		err   error
	)
	if req.Method != "" {
		order, err = h.service.SettleMethod(c.Request.Context(), c.Param("collection"), c.Param("id"), req.Method)
	} else {
		order, err = h.service.Settle(c.Request.Context(), c.Param("collection"), c.Param("id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --------------------------------------------------
// Admin bulk delete
// --------------------------------------------------
func (h *Handler) DeleteCollection(c *gin.Context) {
	deleted, err := h.service.DeleteCollection(c.Request.Context(), c.Param("collection"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
