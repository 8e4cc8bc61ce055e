package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JAX838/divine-sounds/config"
	orderControllers "github.com/JAX838/divine-sounds/controllers/order"
	"github.com/JAX838/divine-sounds/mail"
	"github.com/JAX838/divine-sounds/models"
	"github.com/JAX838/divine-sounds/notify"
	"github.com/JAX838/divine-sounds/orders"
	"github.com/JAX838/divine-sounds/routes"
	"github.com/JAX838/divine-sounds/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Init DB
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.ProductSpec{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// SMS gateway + dispatcher
	dispatcher := notify.NewDispatcher(buildGateway(cfg))

	// Stores and workflow engine
	catalog := store.NewCatalogStore(db)
	orderRepo := store.NewOrderRepository(db)
	engine := orders.NewEngine(orderRepo, catalog, dispatcher, orders.ParsePolicy(cfg.OrderTransitionPolicy))

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.ContactInbox)
	feed := orderControllers.NewFeed()

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Shop API")
	})

	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Catalog:   catalog,
		Engine:    engine,
		Feed:      feed,
		Mailer:    mailer,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Server running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, let in-flight SMS
	// dispatches drain, then close the DB pool.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("⏳ Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}

	dispatcher.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Shutdown complete")
}

// buildGateway wires the Africa's Talking client, or a stand-in that always
// fails when credentials are missing. The dispatcher swallows those
// failures, so an unconfigured gateway never breaks checkout.
func buildGateway(cfg *config.Config) notify.Gateway {
	gateway, err := notify.NewAfricasTalkingGateway(cfg.ATAPIKey, cfg.ATUsername, cfg.ATBaseURL, cfg.ATSenderID)
	if err != nil {
		log.Printf("⚠️ SMS gateway not configured: %v (notifications will be skipped)", err)
		return notify.GatewayFunc(func(_ []string, _ string) error {
			return fmt.Errorf("sms gateway not configured")
		})
	}
	masked := cfg.ATAPIKey
	if len(masked) > 8 {
		masked = masked[:4] + "..." + masked[len(masked)-4:]
	}
	log.Printf("✅ SMS gateway configured. username: %s apiKey: %s", cfg.ATUsername, masked)
	return gateway
}
