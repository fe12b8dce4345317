package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List a catalog category
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	options, err := h.service.List(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

// --------------------------------------------------
// Add or reprice an option (admin)
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	var req struct {
		Name  string     `json:"name"`
		Price core.Money `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	option, err := h.service.Save(c.Request.Context(), c.Param("category"), req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, option)
}

// --------------------------------------------------
// Deactivate an option (admin)
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
