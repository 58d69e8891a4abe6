package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/ims/backend/internal/application/identity"
	inventoryapp "github.com/ims/backend/internal/application/inventory"
	partnerapp "github.com/ims/backend/internal/application/partner"
	reportapp "github.com/ims/backend/internal/application/report"
	tradeapp "github.com/ims/backend/internal/application/trade"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/infrastructure/pdf"
	"github.com/ims/backend/internal/infrastructure/persistence"
	"github.com/ims/backend/internal/infrastructure/session"
	"github.com/ims/backend/internal/interfaces/http/handler"
	"github.com/ims/backend/internal/interfaces/http/middleware"
	"github.com/ims/backend/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting IMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Session store
	sessionStore, closeSessions, err := newSessionStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeSessions()

	// PDF renderer
	renderer := pdf.NewChromedpRenderer(pdf.Config{
		RemoteURL: cfg.PDF.ChromeRemoteURL,
		Timeout:   cfg.PDF.RenderTimeout,
		NoSandbox: cfg.PDF.NoSandbox,
		Logger:    log,
	})
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	activityRepo := persistence.NewGormActivityLogRepository(db.DB)
	orderReportRepo := persistence.NewGormOrderReportRepository(db.DB)
	inventoryReportRepo := persistence.NewGormInventoryReportRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Application services
	authService := identityapp.NewAuthService(userRepo, sessionStore, cfg.Session.TTL, activityRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	itemService := inventoryapp.NewItemService(itemRepo)
	orderService := tradeapp.NewOrderService(tradeScope, orderRepo, log)
	reportService := reportapp.NewReportService(orderReportRepo, inventoryReportRepo, renderer, log)
	dashboardService := reportapp.NewDashboardService(inventoryReportRepo, orderRepo, salesReportRepo, supplierRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	middleware.SetupValidator()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		logger.GinMiddleware(log),
		middleware.SessionIdentity(sessionStore, cfg.Cookie.Name, log),
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Cookie, cfg.Session.TTL)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	inventoryHandler := handler.NewInventoryHandler(itemService)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(db)

	r := router.NewRouter(engine)

	// Auth routes. Login and register are public; the rest of the API
	// sits behind the session.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", middleware.RequireAuth(), authHandler.Me)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.Use(middleware.RequireAuth())
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.Use(middleware.RequireAuth())
	inventoryRoutes.POST("/items", inventoryHandler.Create)
	inventoryRoutes.GET("/items", inventoryHandler.List)
	inventoryRoutes.GET("/items/:id", inventoryHandler.GetByID)
	inventoryRoutes.PUT("/items/:id", inventoryHandler.Update)
	inventoryRoutes.DELETE("/items/:id", inventoryHandler.Delete)

	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.Use(middleware.RequireAuth())
	tradeRoutes.POST("/orders", orderHandler.Create)
	tradeRoutes.GET("/orders", orderHandler.List)
	tradeRoutes.GET("/orders/:id", orderHandler.GetByID)
	tradeRoutes.PUT("/orders/:id", orderHandler.Update)
	tradeRoutes.DELETE("/orders/:id", orderHandler.Delete)

	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.Use(middleware.RequireAuth())
	reportRoutes.POST("/generate", reportHandler.Generate)

	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.Use(middleware.RequireAuth())
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/health", systemHandler.Health)
	systemRoutes.GET("/ready", systemHandler.Ready)

	r.Register(authRoutes).
		Register(partnerRoutes).
		Register(inventoryRoutes).
		Register(tradeRoutes).
		Register(reportRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSessionStore builds the configured session store. The returned
// closer is safe to call even when setup partially failed.
func newSessionStore(cfg *config.Config, log *zap.Logger) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, func() {}, err
		}
		log.Info("Session store ready", zap.String("store", "redis"), zap.String("addr", cfg.Redis.Addr()))
		return session.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}, nil
	default:
		store := session.NewMemoryStore()
		log.Info("Session store ready", zap.String("store", "memory"))
		return store, func() { store.Close() }, nil
	}
}
