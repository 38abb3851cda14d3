package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/qubitara/hr-console/internal/api/handler"
	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/service"
	"github.com/qubitara/hr-console/internal/infrastructure/config"
	"github.com/qubitara/hr-console/internal/infrastructure/directory"
	"github.com/qubitara/hr-console/internal/infrastructure/memstore"
	"github.com/qubitara/hr-console/internal/notify"
	"github.com/qubitara/hr-console/internal/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, notifier *notify.Notifier) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Authentication stack ---
	users, err := directory.New()
	if err != nil {
		return nil, err
	}
	limiter := service.NewLoginRateLimiter(memstore.NewAttemptStore(), cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, nil)
	authService := service.NewAuthService(users, limiter, cfg.LoginDelay)
	codec := session.NewCodec(cfg.SessionSecret, session.TokenTTL, nil)
	store := session.NewStore(codec, cfg.IsProduction())
	sessions := session.NewManager(authService, store, notifier)

	// --- HR module stack ---
	employees := memstore.NewEmployeeStore()
	attendance := memstore.NewAttendanceStore()
	leave := memstore.NewLeaveStore()
	performance := memstore.NewPerformanceStore()
	payroll := memstore.NewPayrollStore()
	announcements := memstore.NewAnnouncementStore()

	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(employees, nil))
	attendanceHandler := handler.NewAttendanceHandler(service.NewAttendanceService(attendance, employees))
	leaveHandler := handler.NewLeaveHandler(service.NewLeaveService(leave, employees, nil))
	performanceHandler := handler.NewPerformanceHandler(service.NewPerformanceService(performance, employees))
	payrollHandler := handler.NewPayrollHandler(service.NewPayrollService(payroll))
	announcementHandler := handler.NewAnnouncementHandler(service.NewAnnouncementService(announcements, nil))
	homeHandler := handler.NewHomeHandler(service.NewOverviewService(employees, attendance, leave, announcements, nil))
	authHandler := handler.NewAuthHandler(sessions)
	userHandler := handler.NewUserHandler(users)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr_console"))
	e.Use(middleware.Session(store))

	// --- Auth routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login, middleware.IPRateLimit(cfg.RateLimit.LoginPerMinute))
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	// --- Role landing routes ---
	e.GET("/admin", homeHandler.Home, middleware.RequireRoles(domain.RoleAdmin))
	e.GET("/hr", homeHandler.Home, middleware.RequireRoles(domain.RoleHR))
	e.GET("/employee", homeHandler.Home, middleware.RequireRoles(domain.RoleEmployee))

	// --- API routes (permission table per verb) ---
	apiGroup := e.Group("/api", middleware.RequireAuth())
	apiGroup.GET("/modules", authHandler.Modules)

	apiGroup.GET("/employees", employeeHandler.List, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionRead))
	apiGroup.GET("/employees/departments", employeeHandler.Departments, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionRead))
	apiGroup.GET("/employees/:id", employeeHandler.Get, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionRead))
	apiGroup.POST("/employees", employeeHandler.Create, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionCreate))
	apiGroup.PUT("/employees/:id", employeeHandler.Update, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionUpdate))
	apiGroup.DELETE("/employees/:id", employeeHandler.Deactivate, middleware.RequirePermission(domain.ModuleEmployees, domain.ActionDelete))

	apiGroup.GET("/attendance", attendanceHandler.List, middleware.RequirePermission(domain.ModuleAttendance, domain.ActionRead))
	apiGroup.POST("/attendance/check-in", attendanceHandler.CheckIn, middleware.RequirePermission(domain.ModuleAttendance, domain.ActionCreate))
	apiGroup.POST("/attendance/check-out", attendanceHandler.CheckOut, middleware.RequirePermission(domain.ModuleAttendance, domain.ActionUpdate))
	apiGroup.PUT("/attendance/:id", attendanceHandler.Update, middleware.RequirePermission(domain.ModuleAttendance, domain.ActionUpdate))

	apiGroup.GET("/leave", leaveHandler.List, middleware.RequirePermission(domain.ModuleLeave, domain.ActionRead))
	apiGroup.POST("/leave", leaveHandler.Submit, middleware.RequirePermission(domain.ModuleLeave, domain.ActionCreate))
	apiGroup.POST("/leave/:id/approve", leaveHandler.Approve, middleware.RequirePermission(domain.ModuleLeave, domain.ActionApprove))
	apiGroup.POST("/leave/:id/reject", leaveHandler.Reject, middleware.RequirePermission(domain.ModuleLeave, domain.ActionReject))

	apiGroup.GET("/performance", performanceHandler.List, middleware.RequirePermission(domain.ModulePerformance, domain.ActionRead))
	apiGroup.GET("/performance/:id", performanceHandler.Get, middleware.RequirePermission(domain.ModulePerformance, domain.ActionRead))
	apiGroup.POST("/performance", performanceHandler.Create, middleware.RequirePermission(domain.ModulePerformance, domain.ActionCreate))
	apiGroup.PUT("/performance/:id", performanceHandler.Update, middleware.RequirePermission(domain.ModulePerformance, domain.ActionUpdate))

	apiGroup.GET("/payroll", payrollHandler.List, middleware.RequirePermission(domain.ModulePayroll, domain.ActionRead))
	apiGroup.GET("/payroll/totals", payrollHandler.Totals, middleware.RequirePermission(domain.ModulePayroll, domain.ActionRead))

	apiGroup.GET("/users", userHandler.List, middleware.RequirePermission(domain.ModuleUserManagement, domain.ActionRead))
	apiGroup.GET("/users/:id", userHandler.Get, middleware.RequirePermission(domain.ModuleUserManagement, domain.ActionRead))

	apiGroup.GET("/announcements", announcementHandler.List, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionRead))
	apiGroup.POST("/announcements", announcementHandler.Create, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionCreate))
	apiGroup.PUT("/announcements/:id", announcementHandler.Update, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionUpdate))
	apiGroup.POST("/announcements/:id/read", announcementHandler.MarkRead, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionRead))

	// --- Observability ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
