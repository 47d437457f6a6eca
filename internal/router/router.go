// internal/router/router.go
package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shopledger/backend/internal/config"
	"github.com/shopledger/backend/internal/handlers"
	"github.com/shopledger/backend/internal/middleware"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/store"
)

// Initialize wires services, handlers and middleware over repo. Rate limiter bookkeeping
// stops when ctx is done.
func Initialize(ctx context.Context, repo *store.Repository, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	authorizationService := services.NewAuthorizationService()
	userService := services.NewUserService(repo)
	authService := services.NewAuthService(repo, cfg, userService)
	settingsService := services.NewSettingsService(repo)
	orderService := services.NewOrderService(repo)
	paymentService := services.NewPaymentService(repo)
	productService := services.NewProductService(repo)
	reportService := services.NewReportService(repo)
	messageService := services.NewMessageService(repo, settingsService)
	backupService := services.NewBackupService(repo, storageService, cfg.AWS.ArchivePrefix)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repo, cfg.Store.ProbeTimeout)
	authHandler := handlers.NewAuthHandler(authService, authorizationService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService, messageService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	productHandler := handlers.NewProductHandler(productService)
	reportHandler := handlers.NewReportHandler(reportService)
	backupHandler := handlers.NewBackupHandler(backupService, storageService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// 100 requests per minute per client, with a burst of 20
	generalLimiter := middleware.NewRateLimiter(rate.Limit(100.0/60.0), 20)
	// 5 failed sign-ins per minute per client
	authFailures := middleware.NewRateLimiter(rate.Limit(5.0/60.0), 5)
	generalLimiter.StartCleanup(ctx.Done())
	authFailures.StartCleanup(ctx.Done())

	require := func(perm services.Permission) gin.HandlerFunc {
		return middleware.RequirePermission(authorizationService, perm)
	}

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(middleware.BasicAuth(authService, authFailures))
	{
		auth := v1.Group("/auth")
		{
			auth.GET("/me", authHandler.Me)
			auth.GET("/logs", require(services.PermManageUsers), authHandler.Logs)
		}

		users := v1.Group("/users")
		users.Use(require(services.PermManageUsers))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:username/role", userHandler.ChangeRole)
			users.DELETE("/:username", userHandler.DeactivateUser)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", require(services.PermEnterOrders), orderHandler.CreateOrder)
			orders.PUT("/:id/items", require(services.PermEnterOrders), orderHandler.UpdateItems)
			orders.POST("/:id/status", require(services.PermEnterOrders), orderHandler.AdvanceStatus)
			orders.POST("/:id/lock", require(services.PermLockOrders), orderHandler.LockOrder)
			orders.GET("/:id/invoice-draft", require(services.PermViewReports), orderHandler.InvoiceDraft)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", require(services.PermRecordPayments), paymentHandler.RecordPayment)
			payments.GET("/unattributed", require(services.PermViewReports), paymentHandler.ListUnattributed)
		}

		products := v1.Group("/products")
		{
			products.PUT("/:id/freight-rate", require(services.PermManageCatalog), productHandler.UpdateFreightRate)
			products.POST("/:id/stock", require(services.PermManageCatalog), productHandler.RecordStock)
			products.GET("/:id/reconciliation", require(services.PermViewReports), productHandler.Reconciliation)
		}

		reports := v1.Group("/reports")
		reports.Use(require(services.PermViewReports))
		{
			reports.GET("/summary", reportHandler.Summary)
			reports.GET("/clients/:id", reportHandler.ClientStatement)
		}

		backup := v1.Group("/backup")
		{
			backup.GET("", require(services.PermExportData), backupHandler.Export)
			backup.POST("", require(services.PermImportData), backupHandler.Import)
			backup.POST("/archive", require(services.PermImportData), backupHandler.Archive)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", require(services.PermViewReports), settingsHandler.GetSettings)
			settings.PUT("", require(services.PermManageSettings), settingsHandler.UpdateSettings)
		}
	}

	return r, nil
}
