package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/auth"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/menu"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/middleware"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/payments"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/printing"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/whatsapp"
)

// Handlers collects the HTTP handlers wired by main.
type Handlers struct {
	Auth     *auth.Handler
	Orders   *orders.Handler
	Payments *payments.Handler
	Receipt  *receipt.Handler
	Printing *printing.Handler
	Menu     *menu.Handler
	WhatsApp *whatsapp.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	ordersGroup := r.Group("/orders/:collection")
	ordersGroup.Use(middleware.AuthMiddleware())
	{
		ordersGroup.POST("", h.Orders.Create)
		ordersGroup.GET("", h.Orders.List)
		ordersGroup.GET("/:id", h.Orders.Get)
		ordersGroup.PATCH("/:id/status", h.Orders.UpdateStatus)
		ordersGroup.PATCH("/:id/payments", h.Orders.EditSplit)
		ordersGroup.PATCH("/:id/delivery-person", h.Orders.AssignDeliveryPerson)

		ordersGroup.GET("/:id/receipt", h.Receipt.Get)
		ordersGroup.GET("/:id/whatsapp", h.WhatsApp.Link)
		ordersGroup.POST("/:id/print", h.Printing.Print)

		admin := ordersGroup.Group("")
		admin.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			admin.POST("/:id/settle", h.Orders.Settle)
			admin.DELETE("", h.Orders.DeleteCollection)
		}
	}

	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.AuthMiddleware(), middleware.RequireRole(auth.RoleAdmin))
	{
		paymentsGroup.GET("/summary", h.Payments.Summary)
		paymentsGroup.GET("/caja", h.Payments.Caja)
	}

	menuGroup := r.Group("/menu")
	menuGroup.Use(middleware.AuthMiddleware())
	{
		menuGroup.GET("/:category", h.Menu.List)

		adminMenu := menuGroup.Group("")
		adminMenu.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			adminMenu.POST("/:category", h.Menu.Save)
			adminMenu.DELETE("/options/:id", h.Menu.Remove)
		}
	}

	r.GET("/printer/status", h.Printing.Status)

	return r
}
