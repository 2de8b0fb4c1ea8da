package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/config"
	"github.com/stwalsh4118/heritage/internal/database"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/handlers"
	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/middleware"
	"github.com/stwalsh4118/heritage/internal/render"
	"github.com/stwalsh4118/heritage/internal/reports"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
	"github.com/stwalsh4118/heritage/migrations"
	"github.com/stwalsh4118/heritage/web"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env).With(logger.Fields{"version": handlers.AppVersion})
	log.Info("Starting Heritage", map[string]interface{}{
		"version":     handlers.AppVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database.URL, migrations.FS, log); err != nil {
			log.Fatal("Failed to run migrations", err, nil)
		}
	}

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, nil)
	}
	defer db.Close()

	spatial, err := db.HasColumn(ctx, "building", "geom")
	if err != nil {
		log.Fatal("Failed to inspect schema", err, nil)
	}

	log.Info("Database connection established", map[string]interface{}{
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
		"spatial":  spatial,
	})

	pages, err := render.New(web.FS)
	if err != nil {
		log.Fatal("Failed to parse templates", err, nil)
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		log.Fatal("Failed to open static assets", err, nil)
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handlers.RegisterFormNames()
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	router.StaticFS("/static", http.FS(static))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env, spatial)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	buildingService := services.NewBuildingService(repository.NewBuildingRepository(spatial), log)
	inspectionService := services.NewInspectionService(repository.NewInspectionRepository(), log)
	interventionService := services.NewInterventionService(repository.NewInterventionRepository(), log)
	documentService := services.NewDocumentService(repository.NewDocumentRepository(), log)
	zoneService := services.NewZoneService(repository.NewZoneRepository(), log)
	typeService := services.NewBuildingTypeService(repository.NewBuildingTypeRepository(), log)
	protectionService := services.NewProtectionService(repository.NewProtectionRepository(), log)
	ownerService := services.NewOwnerService(repository.NewOwnerRepository(), log)
	providerService := services.NewProviderService(repository.NewProviderRepository(), log)
	dashboardService := services.NewDashboardService(repository.NewDashboardRepository(spatial), log)
	lookupService := services.NewLookupService(repository.NewLookupRepository(), log)

	// Initialize handlers
	shared := handlers.NewPages(pages, flash.NewStore(cfg.Session.Secret, cfg.IsProduction()))
	exporter := reports.NewExporter()
	dashboardHandler := handlers.NewDashboardHandler(shared, dashboardService)

	// Every page and API route below runs on one connection per request
	app := router.Group("/", database.RequestScope(db))
	{
		app.GET("/", dashboardHandler.Dashboard)

		handlers.NewBuildingHandler(shared, buildingService, lookupService, exporter).Register(app.Group("/buildings"))
		handlers.NewInspectionHandler(shared, inspectionService, lookupService).Register(app.Group("/inspections"))
		handlers.NewInterventionHandler(shared, interventionService, lookupService, exporter).Register(app.Group("/interventions"))
		handlers.NewDocumentHandler(shared, documentService, buildingService, lookupService).Register(app.Group("/documents"))
		handlers.NewZoneHandler(shared, zoneService, lookupService).Register(app.Group("/zones"))
		handlers.NewBuildingTypeHandler(shared, typeService).Register(app.Group("/types"))
		handlers.NewProtectionHandler(shared, protectionService).Register(app.Group("/protections"))
		handlers.NewOwnerHandler(shared, ownerService, lookupService).Register(app.Group("/owners"))
		handlers.NewProviderHandler(shared, providerService, lookupService).Register(app.Group("/providers"))

		v1 := app.Group("/api/v1")
		{
			v1.GET("/map", dashboardHandler.Map)
		}
	}

	router.NoRoute(shared.NotFound)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
