package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hamroCraft/app/echo-server/router"
	"hamroCraft/business/behavior"
	"hamroCraft/business/product"
	"hamroCraft/business/reco"
	"hamroCraft/business/review"
	"hamroCraft/business/search"
	"hamroCraft/business/suggest"
	userService "hamroCraft/business/user"
	"hamroCraft/internal/middleware"
	"hamroCraft/internal/repository/notification"
	psqlRepo "hamroCraft/internal/repository/postgres"
	redisRepo "hamroCraft/internal/repository/redis"
	"hamroCraft/internal/rest"
	"hamroCraft/pkg/config"
	"hamroCraft/pkg/database"
	redisdb "hamroCraft/pkg/database/redis"
	"hamroCraft/pkg/logger"
	"hamroCraft/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting HamroCraft", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	behaviorRepo := psqlRepo.NewBehaviorRepository(db)

	// Trending store is optional; discovery degrades to catalog
	// backfill without it.
	var counterStore behavior.PopularityStore
	var trendingStore reco.PopularityStore
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, trending disabled", "error", err)
		redisClient = nil
	} else {
		popularityRepo := redisRepo.NewPopularityRepository(redisClient)
		counterStore = popularityRepo
		trendingStore = popularityRepo
	}

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	productSvc := product.NewProductService(productRepo)
	reviewSvc := review.NewReviewService(reviewRepo, productRepo)
	searchSvc := search.NewService(productRepo)
	suggestSvc := suggest.NewService(productRepo)
	behaviorService := behavior.NewBehaviorService(behaviorRepo, counterStore)
	recoService := reco.NewService(productRepo, behaviorRepo, userRepo, trendingStore)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	searchHandler := rest.NewSearchHandler(searchSvc, suggestSvc)
	recoHandler := rest.NewRecommendationHandler(recoService)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	behaviorHandler := rest.NewBehaviorHandler(behaviorService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()
	sellerOnly := middleware.SellerOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler, authRequired, sellerOnly, adminOnly)
	router.SetupSearchRoutes(api, searchHandler)
	router.SetupRecommendationRoutes(api, recoHandler, authRequired)
	router.SetupReviewRoutes(api, reviewHandler, authRequired)
	router.SetupEventRoutes(api, behaviorHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if redisClient != nil {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Redis shutdown error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
