package routes

import (
	"time"

	"chamaflow/internal/adapters/http/handlers"
	"chamaflow/internal/adapters/http/middleware"
	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/config"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ReminderService {
	// Repositories
	personRepo := repositories.NewPersonRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	meetingRepo := repositories.NewMeetingRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	notifier := services.NewNotificationService(notificationRepo, userRepo)
	authService := services.NewAuthService(userRepo, personRepo, roleRepo, refreshTokenRepo, notifier, cfg)
	userService := services.NewUserService(userRepo, personRepo, roleRepo)
	contributionService := services.NewContributionService(contributionRepo, notifier)
	loanService := services.NewLoanService(loanRepo, notifier)
	meetingService := services.NewMeetingService(meetingRepo, notifier)
	rentService := services.NewRentService(propertyRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo)
	reportService := services.NewReportService(reportRepo, personRepo)
	reminderService := services.NewReminderService(loanRepo, meetingRepo, notifier)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	contributionHandler := handlers.NewContributionHandler(contributionService)
	loanHandler := handlers.NewLoanHandler(loanService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	notificationHandler := handlers.NewNotificationHandler(notifier)
	rentHandler := handlers.NewRentHandler(rentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	auth := middleware.AuthMiddleware(cfg)

	// Auth routes
	authRoutes := apiV1.Group("/auth", middleware.NoCacheHeaders())
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/refresh", middleware.AuthRateLimiter(), authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", auth, authHandler.Me)
	authRoutes.Post("/logout-all", auth, authHandler.LogoutAll)

	// Profile routes
	profileRoutes := apiV1.Group("/profile", auth)
	profileRoutes.Get("/", userHandler.GetProfile)
	profileRoutes.Put("/", userHandler.UpdateProfile)

	// User management routes
	userRoutes := apiV1.Group("/users", auth)
	userRoutes.Get("/roles", userHandler.ListRoles)
	userRoutes.Get("/", middleware.RequirePermission(domain.PermUserManage), userHandler.List)
	userRoutes.Put("/:id/role", middleware.RequirePermission(domain.PermUserRoleAssign), userHandler.SetRole)
	userRoutes.Delete("/members/:person_id", middleware.RequirePermission(domain.PermUserManage), userHandler.RemoveMember)

	// Contribution routes
	contributionRoutes := apiV1.Group("/contributions", auth)
	contributionRoutes.Post("/", middleware.RequirePermission(domain.PermContributionSubmit), contributionHandler.Submit)
	contributionRoutes.Get("/my", contributionHandler.ListMine)
	contributionRoutes.Get("/", middleware.RequirePermission(domain.PermContributionViewAll), contributionHandler.List)

	// Loan routes
	loanRoutes := apiV1.Group("/loans", auth)
	loanRoutes.Post("/", middleware.RequirePermission(domain.PermLoanRequest), loanHandler.Request)
	loanRoutes.Get("/my", loanHandler.ListMine)
	loanRoutes.Get("/", middleware.RequirePermission(domain.PermLoanReview), loanHandler.List)
	loanRoutes.Get("/:id", middleware.RequirePermission(domain.PermLoanReview), loanHandler.Get)
	loanRoutes.Put("/:id/approve", middleware.RequirePermission(domain.PermLoanReview), loanHandler.Approve)
	loanRoutes.Put("/:id/reject", middleware.RequirePermission(domain.PermLoanReview), loanHandler.Reject)

	// Meeting routes
	meetingRoutes := apiV1.Group("/meetings", auth)
	meetingRoutes.Post("/", middleware.RequirePermission(domain.PermMeetingCreate), meetingHandler.Create)
	meetingRoutes.Get("/", middleware.RequirePermission(domain.PermMeetingView), meetingHandler.ListUpcoming)
	meetingRoutes.Post("/:id/minutes", middleware.RequirePermission(domain.PermMinuteWrite), meetingHandler.AddMinutes)
	meetingRoutes.Get("/:id/minutes", middleware.RequirePermission(domain.PermMeetingView), meetingHandler.ListMinutes)

	// Notification inbox routes
	notificationRoutes := apiV1.Group("/notifications", auth, middleware.RequirePermission(domain.PermNotificationRead))
	notificationRoutes.Get("/", notificationHandler.ListMine)
	notificationRoutes.Get("/unread-count", notificationHandler.UnreadCount)
	notificationRoutes.Put("/:id/read", notificationHandler.MarkRead)

	// Property and rent routes
	propertyRoutes := apiV1.Group("/properties", auth, middleware.RequirePermission(domain.PermRentManage))
	propertyRoutes.Post("/", rentHandler.AddProperty)
	propertyRoutes.Get("/", rentHandler.ListProperties)
	propertyRoutes.Post("/:id/payments", rentHandler.RecordPayment)
	propertyRoutes.Get("/:id/payments", rentHandler.ListPayments)

	// Maintenance routes
	maintenanceRoutes := apiV1.Group("/maintenance", auth)
	maintenanceRoutes.Post("/", middleware.RequirePermission(domain.PermMaintenanceManage), maintenanceHandler.Report)
	maintenanceRoutes.Get("/", middleware.RequirePermission(domain.PermMaintenanceManage), maintenanceHandler.List)
	maintenanceRoutes.Put("/:id/resolve", middleware.RequirePermission(domain.PermMaintenanceManage), maintenanceHandler.Resolve)

	// Report routes, cached briefly
	reportRoutes := apiV1.Group("/reports", auth, middleware.CacheControl(5*time.Minute))
	reportRoutes.Get("/summary", middleware.RequirePermission(domain.PermReportView), reportHandler.Summary)
	reportRoutes.Get("/members/:person_id", middleware.RequirePermission(domain.PermReportMember), reportHandler.Member)
	reportRoutes.Get("/income", middleware.RequirePermission(domain.PermReportIncome), reportHandler.Income)

	return reminderService
}
