package routes

import (
	"catering-ops/constants"
	"catering-ops/controllers/assignment"
	"catering-ops/controllers/auth"
	"catering-ops/controllers/dashboard"
	"catering-ops/controllers/order"
	"catering-ops/controllers/parttimer"
	"catering-ops/controllers/task"
	"catering-ops/controllers/vendor"
	"catering-ops/logger"
	"catering-ops/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	orderController := order.NewOrderController(db, asyncLogger)
	taskController := task.NewTaskController(db, asyncLogger)
	assignmentController := assignment.NewAssignmentController(db, asyncLogger)
	vendorController := vendor.NewVendorController(db, asyncLogger)
	partTimerController := parttimer.NewPartTimerController(db, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	operator := middleware.RequirePermissions(
		constants.PermAdminFull,
		constants.PermOperatorFull,
	)
	admin := middleware.RequirePermissions(constants.PermAdminFull)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/sign-in", authController.SignIn)
	api.Post("/resolve-role", authController.ResolveRole)

	// Link-credential task access: task id + token, no account needed.
	api.Get("/tasks/link/:id", taskController.ShowByLink)
	api.Post("/tasks/link/:id/confirm", taskController.Confirm)
	api.Post("/tasks/link/:id/issue", taskController.ReportIssue)
	api.Post("/tasks/link/:id/actions", taskController.ToggleAction)

	/*=============================================================================
	| Session Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Get("/profile", authController.Profile)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Get("/", operator, dashboardController.Load)
	dashboardGroup.Get("/risk-briefing", operator, dashboardController.RiskBriefing)
	dashboardGroup.Get("/logs", admin, dashboardController.RequestLogs)
	dashboardGroup.Get("/backup", admin, dashboardController.BackupExport)
	dashboardGroup.Post("/restore", admin, dashboardController.BackupRestore)

	/*=============================================================================
	| Order Routes
	===============================================================================*/
	orderGroup := api.Group("/orders").Use(operator)
	orderGroup.Get("/", orderController.Index)
	orderGroup.Get("/logistics-templates", orderController.LogisticsTemplates)
	orderGroup.Get("/event-flow-templates", orderController.EventFlowTemplates)
	orderGroup.Get("/:id", orderController.Show)
	orderGroup.Put("/:id", orderController.Update)
	orderGroup.Post("/:id/service-charge", orderController.ToggleServiceCharge)
	orderGroup.Post("/:id/cancel", orderController.Cancel)
	orderGroup.Delete("/:id", orderController.Delete)

	/*=============================================================================
	| Assignment Routes
	===============================================================================*/
	api.Post("/assignments", operator, assignmentController.Create)

	/*=============================================================================
	| Task Routes
	===============================================================================*/
	// Operator gate goes per route here: the public link routes share the
	// /tasks prefix and a group-level Use would swallow them.
	taskGroup := api.Group("/tasks")
	taskGroup.Get("/", operator, taskController.Index)
	taskGroup.Post("/escalate", operator, taskController.Escalate)
	taskGroup.Put("/:id", operator, taskController.Edit)
	taskGroup.Delete("/:id", operator, taskController.Delete)
	taskGroup.Post("/:id/publish", operator, taskController.Publish)
	taskGroup.Post("/:id/remind", operator, taskController.Remind)
	taskGroup.Post("/:id/archive", operator, taskController.Archive)
	taskGroup.Post("/:id/logs", operator, taskController.AppendOpsLog)
	taskGroup.Post("/:id/ai-summary", operator, taskController.GenerateSummary)

	/*=============================================================================
	| Vendor Routes
	===============================================================================*/
	vendorGroup := api.Group("/vendors")
	vendorGroup.Get("/", operator, vendorController.Index)
	vendorGroup.Get("/roles", operator, vendorController.Roles)
	vendorGroup.Get("/:id", operator, vendorController.Show)
	vendorGroup.Post("/", operator, vendorController.Create)
	vendorGroup.Put("/:id", operator, vendorController.Update)
	vendorGroup.Delete("/:id", admin, vendorController.Delete)

	// Profile review workflow: vendors submit, operators stage then resolve.
	vendorGroup.Post("/:id/profile-update", middleware.RequirePermissions(
		constants.PermVendorSelf,
		constants.PermAdminFull,
		constants.PermOperatorFull,
	), vendorController.SubmitUpdate)
	vendorGroup.Get("/:id/profile-update/stage", operator, vendorController.Stage)
	vendorGroup.Post("/:id/profile-update/review", operator, vendorController.Review)

	/*=============================================================================
	| Part-Timer Routes
	===============================================================================*/
	partTimerGroup := api.Group("/part-timers").Use(operator)
	partTimerGroup.Get("/", partTimerController.Index)
	partTimerGroup.Get("/:id", partTimerController.Show)
	partTimerGroup.Post("/", partTimerController.Create)
	partTimerGroup.Put("/:id", partTimerController.Update)
	partTimerGroup.Delete("/:id", partTimerController.Delete)
}
