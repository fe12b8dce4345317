package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/archive"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/auth"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/db"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/menu"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/payments"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/printing"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/receipt"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/router"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/whatsapp"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			logrus.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	// Receipt archiving is optional: without R2_ENDPOINT the app runs
	// with archiving disabled.
	r2, err := archive.NewR2Archive(context.Background())
	if err != nil {
		logrus.Fatal("R2 init failed: ", err)
	}
	var archiver printing.Archiver
	if r2 != nil {
		archiver = r2
	}

	// ───────────────────────── PRINTER ─────────────────────────
	printer, err := printing.NewPrinterFromConfig(
		os.Getenv("PRINTER_TYPE"),
		os.Getenv("PRINTER_USB_PATH"),
		os.Getenv("PRINTER_ADDRESS"),
	)
	if err != nil {
		logrus.Fatal("printer init failed: ", err)
	}
	printerWidth, _ := strconv.Atoi(os.Getenv("PRINTER_WIDTH"))

	// ───────────────────────── SERVICES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	orderRepo := orders.NewPostgresRepository(pgDB)
	orderService := orders.NewService(orderRepo)

	menuRepo := menu.NewPostgresRepository(pgDB)
	menuService := menu.NewService(menuRepo)

	printingService := printing.NewService(orderService, printer, menuService, archiver, printerWidth)

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Auth:     auth.NewHandler(authService),
		Orders:   orders.NewHandler(orderService),
		Payments: payments.NewHandler(orderService),
		Receipt:  receipt.NewHandler(orderService, menuService),
		Printing: printing.NewHandler(orderService, printingService),
		Menu:     menu.NewHandler(menuService),
		WhatsApp: whatsapp.NewHandler(orderService),
	}

	r := router.NewRouter(handlers)

	// ───────────────────────── AUTO-PRINT WORKER ─────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pollInterval, _ := time.ParseDuration(os.Getenv("PRINT_POLL_INTERVAL"))
	worker := printing.NewWorker(orderService, printingService, pollInterval)
	go worker.Run(ctx)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logrus.Info("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
