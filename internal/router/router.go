package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/config"
	"github.com/dzhusipov/fleet-core/internal/handler"
	"github.com/dzhusipov/fleet-core/internal/i18n"
	"github.com/dzhusipov/fleet-core/internal/infra"
	"github.com/dzhusipov/fleet-core/internal/middleware"
	"github.com/dzhusipov/fleet-core/internal/repository"
	"github.com/dzhusipov/fleet-core/internal/service"
	"github.com/dzhusipov/fleet-core/internal/worker"
)

// Deps carries the externally-constructed infrastructure shared between the
// HTTP surface and the background workers. New fills Sweeper and Notifier so
// cmd/server can start the workers against the same repositories the API uses.
type Deps struct {
	DB       *gorm.DB
	RDB      *redis.Client
	Bundle   *i18n.Bundle
	Store    service.ObjectStore
	Sweeper  *worker.SweeperConfig
	Notifier *worker.NotificationWorker
}

// New wires all dependencies and returns a configured Gin engine together
// with the filled-in background worker dependencies.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, deps *Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	db, rdb := deps.DB, deps.RDB

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	driverRepo := repository.NewDriverRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	maintenanceRepo := repository.NewMaintenanceRepo(db)
	contractRepo := repository.NewContractRepo(db)
	mileageRepo := repository.NewMileageRepo(db)
	documentRepo := repository.NewDocumentRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	var dispatcher service.Dispatcher
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret,
		time.Duration(cfg.JWTExpirationHours)*time.Hour,
		time.Duration(cfg.JWTRefreshHours)*time.Hour)
	userSvc := service.NewUserService(userRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, deps.Bundle, dispatcher, log.Logger)
	vehicleSvc := service.NewVehicleService(vehicleRepo, driverRepo)
	driverSvc := service.NewDriverService(driverRepo)
	expenseSvc := service.NewExpenseService(expenseRepo, vehicleRepo)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, vehicleRepo)
	contractSvc := service.NewContractService(contractRepo, vehicleRepo, log.Logger)
	mileageSvc := service.NewMileageService(mileageRepo, vehicleRepo, notificationSvc, log.Logger)
	documentSvc := service.NewDocumentService(documentRepo, deps.Store)
	reportSvc := service.NewReportService(vehicleRepo, expenseRepo, maintenanceRepo)
	dashboardSvc := service.NewDashboardService(vehicleRepo, driverRepo, maintenanceRepo, contractRepo, expenseRepo)

	// Background worker deps, consumed by cmd/server
	if deps.Sweeper != nil {
		deps.Sweeper.Contracts = contractSvc
		deps.Sweeper.Notifications = notificationSvc
		deps.Sweeper.ContractRepo = contractRepo
		deps.Sweeper.Maintenance = maintenanceRepo
		deps.Sweeper.Drivers = driverRepo
	}
	deps.Notifier = worker.NewNotificationWorker(
		notificationRepo, userRepo,
		infra.NewMailer(cfg),
		infra.NewTelegramClient(cfg.TelegramBotToken),
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, userSvc)
	usersH := handler.NewUsersHandler(userSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	driversH := handler.NewDriversHandler(driverSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	maintenanceH := handler.NewMaintenanceHandler(maintenanceSvc)
	contractsH := handler.NewContractsHandler(contractSvc)
	mileageH := handler.NewMileageHandler(mileageSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	healthH := handler.NewHealthHandler(db)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(authSvc)
	readRoles := middleware.RequireRole("admin", "fleet_manager", "driver", "viewer")
	writeRoles := middleware.RequireRole("admin", "fleet_manager")
	driverWrite := middleware.RequireRole("admin", "fleet_manager", "driver")

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		dashboard := v1.Group("/dashboard", readRoles)
		{
			dashboard.GET("", dashboardH.Summary)
			dashboard.GET("/expense-summary", dashboardH.ExpenseSummary)
			dashboard.GET("/maintenance-stats", dashboardH.MaintenanceStats)
			dashboard.GET("/top-vehicles", dashboardH.TopVehicles)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", readRoles, vehiclesH.List)
			vehicles.GET("/:id", readRoles, vehiclesH.Get)
			vehicles.POST("", writeRoles, vehiclesH.Create)
			vehicles.PATCH("/:id", writeRoles, vehiclesH.Update)
			vehicles.DELETE("/:id", middleware.RequireRole("admin"), vehiclesH.Delete)

			// Detail tabs of the vehicle page
			vehicles.GET("/:id/expenses", readRoles, expensesH.ListForVehicle)
			vehicles.GET("/:id/maintenance", readRoles, maintenanceH.ListForVehicle)
			vehicles.GET("/:id/contracts", readRoles, contractsH.ListForVehicle)
			vehicles.GET("/:id/mileage", readRoles, mileageH.ListForVehicle)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", readRoles, driversH.List)
			drivers.GET("/:id", readRoles, driversH.Get)
			drivers.POST("", writeRoles, driversH.Create)
			drivers.PATCH("/:id", writeRoles, driversH.Update)
			drivers.DELETE("/:id", middleware.RequireRole("admin"), driversH.Delete)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", readRoles, expensesH.List)
			expenses.GET("/:id", readRoles, expensesH.Get)
			expenses.POST("", driverWrite, expensesH.Create)
			expenses.PATCH("/:id", writeRoles, expensesH.Update)
			expenses.DELETE("/:id", writeRoles, expensesH.Delete)
		}

		maintenance := v1.Group("/maintenance")
		{
			maintenance.GET("", readRoles, maintenanceH.List)
			maintenance.GET("/kanban", readRoles, maintenanceH.Kanban)
			maintenance.GET("/:id", readRoles, maintenanceH.Get)
			maintenance.POST("", writeRoles, maintenanceH.Create)
			maintenance.PATCH("/:id", writeRoles, maintenanceH.Update)
			maintenance.POST("/:id/complete", writeRoles, maintenanceH.Complete)
			maintenance.DELETE("/:id", writeRoles, maintenanceH.Delete)
		}

		contracts := v1.Group("/contracts")
		{
			contracts.GET("", readRoles, contractsH.List)
			contracts.GET("/:id", readRoles, contractsH.Get)
			contracts.POST("", writeRoles, contractsH.Create)
			contracts.PATCH("/:id", writeRoles, contractsH.Update)
			contracts.DELETE("/:id", middleware.RequireRole("admin"), contractsH.Delete)
		}

		mileage := v1.Group("/mileage")
		{
			mileage.GET("", readRoles, mileageH.List)
			mileage.POST("", driverWrite, mileageH.Record)
			mileage.POST("/bulk", driverWrite, mileageH.Bulk)
		}

		documents := v1.Group("/documents")
		{
			documents.GET("", readRoles, documentsH.List)
			documents.GET("/:id", readRoles, documentsH.Get)
			documents.GET("/:id/download", readRoles, documentsH.Download)
			documents.POST("", writeRoles, documentsH.Upload)
			documents.DELETE("/:id", writeRoles, documentsH.Delete)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationsH.List)
			notifications.GET("/unread-count", notificationsH.UnreadCount)
			notifications.POST("/:id/read", notificationsH.MarkRead)
			notifications.POST("/read-all", notificationsH.MarkAllRead)
			notifications.GET("/preferences", notificationsH.Preferences)
			notifications.PUT("/preferences", notificationsH.UpdatePreferences)
		}

		reports := v1.Group("/reports", readRoles)
		{
			reports.GET("/tco", reportsH.TCO)
			reports.GET("/utilization", reportsH.Utilization)
			reports.GET("/fuel", reportsH.Fuel)
			reports.GET("/expenses", reportsH.Expenses)
			reports.GET("/maintenance", reportsH.MaintenanceHistory)
			reports.GET("/tco/export", reportsH.ExportTCO)
			reports.GET("/fuel/export", reportsH.ExportFuel)
			reports.GET("/expenses/export", reportsH.ExportExpensesXLSX)
			reports.GET("/expenses/export.csv", reportsH.ExportExpensesCSV)
			reports.GET("/maintenance/export", reportsH.ExportMaintenance)
		}

		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.PATCH("/:id", usersH.Update)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
