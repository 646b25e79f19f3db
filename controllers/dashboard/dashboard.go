package dashboard

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"catering-ops/logger"
	logModel "catering-ops/models/log"
	orderModel "catering-ops/models/order"
	parttimerModel "catering-ops/models/parttimer"
	taskModel "catering-ops/models/task"
	userModel "catering-ops/models/user"
	vendorModel "catering-ops/models/vendor"
	"catering-ops/services/aisummary"
	"catering-ops/services/archive"
	"catering-ops/services/taskpolicy"
	"catering-ops/types"
)

// DashboardController serves the operations overview and admin maintenance
// endpoints
type DashboardController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: asyncLogger,
	}
}

type dashboardView struct {
	Stats       types.DashboardStats   `json:"stats"`
	UrgentTasks []taskModel.VendorTask `json:"urgent_tasks"`
	Archive     archive.Result         `json:"archive"`
}

// Load runs the auto-archive pass and returns the overview: headline stats
// plus the urgent tasks sorted by display priority. The archive pass piggy-
// backs on this load rather than a background scheduler; opening the
// dashboard is what brings the data set up to date.
func (dc *DashboardController) Load(c *fiber.Ctx) error {
	archiveResult, err := archive.Run(dc.DB, time.Now())
	if err != nil {
		logger.Error("Auto-archive pass failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var tasks []taskModel.VendorTask
	if err := dc.DB.Where("is_archived = ?", false).Find(&tasks).Error; err != nil {
		logger.Error("Failed to fetch tasks", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var activeOrders int64
	if err := dc.DB.Model(&orderModel.Order{}).
		Where("status = ?", orderModel.OrderStatusActive).
		Count(&activeOrders).Error; err != nil {
		logger.Error("Failed to count active orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	stats := computeStats(int(activeOrders), tasks)

	var urgent []taskModel.VendorTask
	for _, t := range tasks {
		if t.Status.NeedsAttention() {
			urgent = append(urgent, t)
		}
	}
	taskpolicy.SortByPriority(urgent)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard loaded",
		Data: dashboardView{
			Stats:       stats,
			UrgentTasks: urgent,
			Archive:     archiveResult,
		},
	})
}

// RiskBriefing produces the AI risk assessment over the active task list.
// Always 200; generation failures come back as fixed fallback text.
func (dc *DashboardController) RiskBriefing(c *fiber.Ctx) error {
	var tasks []taskModel.VendorTask
	if err := dc.DB.Where("is_archived = ?", false).Find(&tasks).Error; err != nil {
		logger.Error("Failed to fetch tasks", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var totalOrders int64
	if err := dc.DB.Model(&orderModel.Order{}).Count(&totalOrders).Error; err != nil {
		logger.Error("Failed to count orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	briefing := aisummary.GenerateRiskBriefing(c.Context(), tasks, int(totalOrders))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Risk briefing generated",
		Data:    fiber.Map{"briefing": briefing},
	})
}

// backupSnapshot is the full-system JSON export.
type backupSnapshot struct {
	Version    string                     `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	Orders     []orderModel.Order         `json:"orders"`
	Tasks      []taskModel.VendorTask     `json:"tasks"`
	Vendors    []vendorModel.Vendor       `json:"vendors"`
	PartTimers []parttimerModel.PartTimer `json:"part_timers"`
	Users      []userModel.User           `json:"users"`
}

// BackupExport dumps the whole data set as one JSON document for offline
// safekeeping. Admin only; password hashes are excluded by the models'
// JSON tags.
func (dc *DashboardController) BackupExport(c *fiber.Ctx) error {
	snapshot := backupSnapshot{Version: "1.0", ExportedAt: time.Now()}

	loads := []struct {
		name string
		dest interface{}
	}{
		{"orders", &snapshot.Orders},
		{"tasks", &snapshot.Tasks},
		{"vendors", &snapshot.Vendors},
		{"part_timers", &snapshot.PartTimers},
		{"users", &snapshot.Users},
	}
	for _, l := range loads {
		if err := dc.DB.Find(l.dest).Error; err != nil {
			logger.Error(fmt.Sprintf("Backup export: failed to load %s", l.name), err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Backup export failed",
			})
		}
	}

	logger.Success("Backup export generated")
	c.Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="catering-ops-backup-%s.json"`, time.Now().Format("20060102-150405")))
	return c.Status(fiber.StatusOK).JSON(snapshot)
}

// BackupRestore is intentionally not supported: a blind overwrite from an
// uploaded file is too destructive for this data set. Restores go through
// a database-level procedure instead.
func (dc *DashboardController) BackupRestore(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
		Status:  fiber.StatusForbidden,
		Message: "Restore from backup file is not supported; contact the system administrator",
	})
}

// RequestLogs exposes the newest persisted HTTP request logs for auditing.
func (dc *DashboardController) RequestLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var logs []logModel.Log
	if err := dc.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		logger.Error("Failed to fetch request logs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Request logs retrieved successfully",
		Data:    logs,
	})
}

// computeStats derives the headline numbers. Response time averages the
// send-to-ack interval over tasks that have both timestamps.
func computeStats(activeOrders int, tasks []taskModel.VendorTask) types.DashboardStats {
	stats := types.DashboardStats{TotalActive: activeOrders}

	var totalHours float64
	var acked int
	for _, t := range tasks {
		switch t.Status {
		case taskModel.TaskStatusPending, taskModel.TaskStatusNotified, taskModel.TaskStatusWarning:
			stats.PendingConfirmation++
		case taskModel.TaskStatusEmergency:
			stats.EmergencyCount++
		case taskModel.TaskStatusIssueReported:
			stats.IssueCount++
		}
		if t.SentAt != nil && t.AckAt != nil && t.AckAt.After(*t.SentAt) {
			totalHours += t.AckAt.Sub(*t.SentAt).Hours()
			acked++
		}
	}
	if acked > 0 {
		stats.AvgResponseTimeHours = totalHours / float64(acked)
	}
	return stats
}
