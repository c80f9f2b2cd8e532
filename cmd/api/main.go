package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/noonstudio/cms_api/internal/cache"
	"github.com/noonstudio/cms_api/internal/config"
	"github.com/noonstudio/cms_api/internal/database"
	"github.com/noonstudio/cms_api/internal/handler"
	"github.com/noonstudio/cms_api/internal/metrics"
	"github.com/noonstudio/cms_api/internal/middleware"
	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/service"
)

// main is the application entrypoint for the Noon Studio CMS API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting cms api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis (login throttle backing store)
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	linkRepo := repository.NewSocialLinkRepository(db)
	credRepo := repository.NewCredentialRepository(db)

	// 5. Initialize services
	credSvc := service.NewCredentialService(credRepo, cfg.AdminPassword)
	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		log.Error().Err(err).Msg("storage service initialization failed")
		os.Exit(1)
	}

	// 6. Initialize middleware and metrics
	collector := metrics.NewCollector()
	sessionMw := middleware.NewSessionMiddleware(cfg.SessionSecret)
	throttle := middleware.NewLoginThrottle(redisClient)
	secureCookie := cfg.Env == "production"

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db),
		Auth:      handler.NewAuthHandler(credSvc, cfg.SessionSecret, secureCookie, throttle, collector),
		Password:  handler.NewPasswordHandler(credSvc),
		Portfolio: handler.NewPortfolioHandler(portfolioRepo),
		Service:   handler.NewServiceHandler(serviceRepo),
		Setting:   handler.NewSettingHandler(settingRepo),
		Link:      handler.NewLinkHandler(linkRepo),
		Upload:    handler.NewUploadHandler(storageSvc, collector),
		Site:      handler.NewSiteHandler(portfolioRepo, serviceRepo, linkRepo),
		Page:      handler.NewPageHandler(cfg.Web.AdminDir),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(collector.Middleware())
	setupRoutes(router, handlers, sessionMw, throttle)
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Password  *handler.PasswordHandler
	Portfolio *handler.PortfolioHandler
	Service   *handler.ServiceHandler
	Setting   *handler.SettingHandler
	Link      *handler.LinkHandler
	Upload    *handler.UploadHandler
	Site      *handler.SiteHandler
	Page      *handler.PageHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, sessionMw *middleware.SessionMiddleware, throttle *middleware.LoginThrottle) {
	router.GET("/api/health", handlers.Health.GetHealth)

	// Public site content (read-only)
	site := router.Group("/api")
	{
		site.GET("/portfolios", handlers.Site.GetPortfolios)
		site.GET("/portfolios/:id", handlers.Site.GetPortfolio)
		site.GET("/services", handlers.Site.GetServices)
		site.GET("/links", handlers.Site.GetLinks)
		site.GET("/settings", handlers.Setting.ListSettings)
	}

	// Admin API. The login submission is the only route reachable without a
	// session; everything after the guard requires a valid cookie.
	admin := router.Group("/api/admin")
	admin.POST("/auth", throttle.Handle(), handlers.Auth.Login)
	admin.Use(sessionMw.APIGuard())
	{
		admin.DELETE("/auth", handlers.Auth.Logout)
		admin.PUT("/password", handlers.Password.ChangePassword)

		// Portfolio management
		admin.GET("/portfolios", handlers.Portfolio.ListPortfolios)
		admin.POST("/portfolios", handlers.Portfolio.CreatePortfolio)
		admin.GET("/portfolios/:id", handlers.Portfolio.GetPortfolio)
		admin.PUT("/portfolios/:id", handlers.Portfolio.UpdatePortfolio)
		admin.DELETE("/portfolios/:id", handlers.Portfolio.DeletePortfolio)

		// Service management
		admin.GET("/services", handlers.Service.ListServices)
		admin.POST("/services", handlers.Service.CreateService)
		admin.PUT("/services/:id", handlers.Service.UpdateService)
		admin.DELETE("/services/:id", handlers.Service.DeleteService)

		// Site settings
		admin.GET("/settings", handlers.Setting.ListSettings)
		admin.PUT("/settings", handlers.Setting.UpsertSetting)
		admin.POST("/settings", handlers.Setting.BatchUpsertSettings)

		// Social links
		admin.GET("/links", handlers.Link.ListLinks)
		admin.POST("/links", handlers.Link.CreateLink)
		admin.GET("/links/:id", handlers.Link.GetLink)
		admin.PUT("/links/:id", handlers.Link.UpdateLink)
		admin.DELETE("/links/:id", handlers.Link.DeleteLink)

		// Image upload
		admin.POST("/upload", handlers.Upload.Upload)
	}

	// Admin panel pages. The login page itself is reachable without a
	// session; deeper pages redirect back to it.
	router.GET("/admin", handlers.Page.Login)
	pages := router.Group("/admin")
	pages.Use(sessionMw.PageGuard("/admin"))
	pages.GET("/*path", handlers.Page.App)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
