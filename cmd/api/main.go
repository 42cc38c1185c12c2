package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finmate/docs"
	"finmate/internal/config"
	"finmate/internal/database"
	"finmate/internal/handlers"
	"finmate/internal/logger"
	"finmate/internal/middleware"
	"finmate/internal/notify"
	"finmate/internal/services"
	"finmate/internal/validator"
)

// @title FinMate API
// @version 1.0
// @description Personal finance tracker: transactions, budgets, and spending insights.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.Get()

	validator.Register()

	dbConfig, err := database.NewConfig()
	if err != nil {
		log.Fatalw("failed to load database configuration", "error", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.AMQPURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Fatalw("failed to connect to rabbitmq", "error", err)
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	}

	db := dbManager.DB()
	userSvc := services.NewUserService(db)
	transactionSvc := services.NewTransactionService(db)
	budgetSvc := services.NewBudgetService(db)
	profileSvc := services.NewProfileService(db)
	insightsSvc := services.NewInsightsService(db, transactionSvc, budgetSvc, notifier)

	authHandler := handlers.NewAuthHandler(userSvc)
	transactionHandler := handlers.NewTransactionHandler(transactionSvc)
	budgetHandler := handlers.NewBudgetHandler(budgetSvc)
	profileHandler := handlers.NewProfileHandler(profileSvc)
	insightsHandler := handlers.NewInsightsHandler(insightsSvc)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", profileHandler.Get)
			protected.PUT("/profile", profileHandler.Update)

			protected.POST("/transactions", transactionHandler.Create)
			protected.GET("/transactions", transactionHandler.List)
			protected.GET("/transactions/:id", transactionHandler.Get)
			protected.PUT("/transactions/:id", transactionHandler.Update)
			protected.DELETE("/transactions/:id", transactionHandler.Delete)

			protected.GET("/budgets", budgetHandler.GetCeilings)
			protected.PUT("/budgets/:category", budgetHandler.SetCeiling)
			protected.GET("/budgets/:category", budgetHandler.GetCeiling)
			protected.DELETE("/budgets/:category", budgetHandler.DeleteCeiling)

			protected.GET("/insights/dashboard", insightsHandler.Dashboard)
			protected.GET("/insights/breakdown", insightsHandler.Breakdown)
			protected.GET("/insights/trends", insightsHandler.Trends)
			protected.GET("/insights/budgets", insightsHandler.Budgets)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}
