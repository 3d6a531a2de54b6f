package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"healthshop/docs" // swagger docs
	"healthshop/internal/auth"
	"healthshop/internal/cache"
	"healthshop/internal/config"
	"healthshop/internal/db"
	"healthshop/internal/handler"
	"healthshop/internal/jobs"
	"healthshop/internal/payment"
	"healthshop/internal/repository"
	"healthshop/internal/router"
	"healthshop/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title HealthShop API
// @version 1.0
// @description Online pharmacy API: users, medicines, categories, carts, payments and cookie-based JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoClient, database, err := db.NewMongo(startCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.EnsureIndexes(startCtx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()
	log.Printf("Connected to MongoDB database %q", cfg.MongoDatabase)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	medicineRepo := repository.NewMedicineRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	testimonialRepo := repository.NewTestimonialRepository(database)
	cartRepo := repository.NewCartRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	joinRepo := repository.NewJoinRequestRepository(database)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set, payment intents will fail")
	}
	stripeProvider := payment.NewStripeProvider(cfg.StripeSecretKey)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient, cfg.CacheTTL)
	medicineService := service.NewMedicineService(medicineRepo)
	catalogService := service.NewCatalogService(categoryRepo, testimonialRepo, cacheClient, cfg.CacheTTL)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(stripeProvider, paymentRepo, cfg.PaymentCurrency)
	joinService := service.NewJoinService(joinRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, router.Handlers{
		User:     handler.NewUserHandler(userService),
		Medicine: handler.NewMedicineHandler(medicineService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Join:     handler.NewJoinHandler(joinService),
		Auth:     handler.NewAuthHandler(authService, jwtService, cfg.IsProduction()),
	}, auth.Middleware(jwtService, tokenStore))

	scheduler, err := jobs.NewScheduler(cartService, cfg.CartRetention)
	if err != nil {
		log.Fatalf("scheduler init: %v", err)
	}
	scheduler.Start()

	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	scheduler.Stop(ctx)
	if err := cacheClient.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	log.Println("Server stopped")
}
