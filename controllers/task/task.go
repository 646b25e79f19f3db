package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"catering-ops/logger"
	"catering-ops/middleware"
	orderModel "catering-ops/models/order"
	parttimerModel "catering-ops/models/parttimer"
	taskModel "catering-ops/models/task"
	vendorModel "catering-ops/models/vendor"
	"catering-ops/services/aisummary"
	"catering-ops/services/taskpolicy"
	"catering-ops/types"
	"catering-ops/utils"
)

// opsLogCap bounds how many audit entries a single response carries. The
// stored log itself is append-only and never pruned.
const opsLogCap = 200

// TaskController handles vendor-task HTTP requests
type TaskController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewTaskController creates a new task controller
func NewTaskController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TaskController {
	return &TaskController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Assignee is the resolved collaborator behind a task. Tasks do not record
// the collaborator type; it is re-derived by probing the vendor roster
// first, then the part-timers.
type Assignee struct {
	Kind      string                    `json:"kind"` // VENDOR or PART_TIMER
	Vendor    *vendorModel.Vendor       `json:"vendor,omitempty"`
	PartTimer *parttimerModel.PartTimer `json:"part_timer,omitempty"`
}

// Name returns the display name of the resolved collaborator.
func (a *Assignee) Name() string {
	if a.Vendor != nil {
		return a.Vendor.Name
	}
	if a.PartTimer != nil {
		return a.PartTimer.Name
	}
	return ""
}

// RoleLabel returns the collaborator's role text for AI prompts and views.
func (a *Assignee) RoleLabel() string {
	if a.Vendor != nil {
		return a.Vendor.Role
	}
	if a.PartTimer != nil {
		return string(a.PartTimer.Role)
	}
	return ""
}

// ResolveAssignee looks the id up in both rosters; a vendor wins on an id
// collision.
func ResolveAssignee(db *gorm.DB, id string) (*Assignee, error) {
	var v vendorModel.Vendor
	err := db.First(&v, "id = ?", id).Error
	if err == nil {
		return &Assignee{Kind: "VENDOR", Vendor: &v}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var pt parttimerModel.PartTimer
	err = db.First(&pt, "id = ?", id).Error
	if err == nil {
		return &Assignee{Kind: "PART_TIMER", PartTimer: &pt}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, gorm.ErrRecordNotFound
}

func capLogs(t *taskModel.VendorTask) {
	if len(t.OpsLogs) > opsLogCap {
		t.OpsLogs = t.OpsLogs[:opsLogCap]
	}
}

// Index lists tasks, highest display priority first. Query params:
// assignee_id filters to one collaborator, archived=true switches to the
// history view.
func (tc *TaskController) Index(c *fiber.Ctx) error {
	query := tc.DB.Order("created_at DESC")

	if assigneeID := c.Query("assignee_id"); assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if c.Query("archived") == "true" {
		query = query.Where("is_archived = ?", true)
	} else {
		query = query.Where("is_archived = ?", false)
	}

	var tasks []taskModel.VendorTask
	if err := query.Find(&tasks).Error; err != nil {
		logger.Error("Failed to fetch tasks", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	taskpolicy.SortByPriority(tasks)
	for i := range tasks {
		capLogs(&tasks[i])
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tasks retrieved successfully",
		Data:    tasks,
	})
}

// taskView bundles a task with its order and resolved collaborator for the
// confirmation page.
type taskView struct {
	Task     taskModel.VendorTask `json:"task"`
	Order    orderModel.Order     `json:"order"`
	Assignee *Assignee            `json:"assignee"`
}

// ShowByLink serves the link-credential view: a valid task id + token lets
// an unauthenticated collaborator see exactly this task. Broken references
// resolve to a not-found notice rather than an error page.
func (tc *TaskController) ShowByLink(c *fiber.Ctx) error {
	task, ok := tc.findTaskByLink(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Task not found or link is invalid",
		})
	}

	var order orderModel.Order
	if err := tc.DB.First(&order, "id = ?", task.OrderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order for this task no longer exists",
		})
	}

	assignee, err := ResolveAssignee(tc.DB, task.AssigneeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Collaborator for this task no longer exists",
		})
	}

	capLogs(task)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Task retrieved successfully",
		Data:    taskView{Task: *task, Order: order, Assignee: assignee},
	})
}

// Publish sends a draft task to its collaborator. The UI asks the operator
// to confirm before calling this.
func (tc *TaskController) Publish(c *fiber.Ctx) error {
	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	actor := middleware.ClaimString(c, "name")
	if err := taskpolicy.Publish(task, actor, time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return tc.saveAndRespond(c, task, "Task published")
}

// Confirm records the collaborator's acknowledgement through the link
// credential. Requires both affirmative checkboxes.
func (tc *TaskController) Confirm(c *fiber.Ctx) error {
	var req types.ConfirmTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	task, ok := tc.findTaskByToken(c.Params("id"), req.Token)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Task not found or link is invalid",
		})
	}

	err := taskpolicy.Confirm(task, req.UnderstoodDetails, req.CapableOfExecuting,
		req.VendorNote, utils.ClientIP(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return tc.saveAndRespond(c, task, "Task confirmed")
}

// ReportIssue flags a problem through the link credential. Issue text is
// required; any previous acknowledgement is cleared.
func (tc *TaskController) ReportIssue(c *fiber.Ctx) error {
	var req types.ReportIssueRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	task, ok := tc.findTaskByToken(c.Params("id"), req.Token)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Task not found or link is invalid",
		})
	}

	if err := taskpolicy.ReportIssue(task, req.IssueDetails, time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return tc.saveAndRespond(c, task, "Issue reported")
}

// ToggleAction checks or unchecks a checklist item. Reachable with the link
// token (collaborator) or an operator session.
func (tc *TaskController) ToggleAction(c *fiber.Ctx) error {
	var req types.ToggleActionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	task, ok := tc.findTaskByToken(c.Params("id"), req.Token)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Task not found or link is invalid",
		})
	}

	if err := taskpolicy.ToggleAction(task, req.Index, req.Done); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return tc.saveAndRespond(c, task, "Checklist updated")
}

// Edit applies an operator change to the summary or checklist and moves the
// task to CHANGED without touching the ack history. Completed indices that
// fall outside the new checklist are dropped.
func (tc *TaskController) Edit(c *fiber.Ctx) error {
	var req types.EditTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	if req.AISummary != nil {
		task.AISummary = *req.AISummary
	}
	if req.RequiredActions != nil {
		task.RequiredActions = taskModel.StringSlice(req.RequiredActions)
		taskpolicy.PruneStaleIndices(task)
	}
	taskpolicy.MarkChanged(task, middleware.ClaimString(c, "name"), time.Now())

	return tc.saveAndRespond(c, task, "Task updated")
}

// Remind records a manual reminder; a reminded draft counts as sent.
func (tc *TaskController) Remind(c *fiber.Ctx) error {
	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	if err := taskpolicy.Remind(task, middleware.ClaimString(c, "name"), time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return tc.saveAndRespond(c, task, "Reminder sent")
}

// AppendOpsLog adds a manual audit entry (called vendor, resolved issue...).
func (tc *TaskController) AppendOpsLog(c *fiber.Ctx) error {
	var req types.OpsLogRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Action label is required",
		})
	}

	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	task.OpsLogs = task.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: time.Now(),
		Action:    req.Action,
		Note:      req.Note,
		User:      middleware.ClaimString(c, "name"),
	})

	return tc.saveAndRespond(c, task, "Log entry added")
}

// Archive toggles the archived flag on a task.
func (tc *TaskController) Archive(c *fiber.Ctx) error {
	var req types.ArchiveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	task.IsArchived = req.Archived
	return tc.saveAndRespond(c, task, "Task archive state updated")
}

// Delete permanently removes a task. Operator action only; archival is the
// normal path.
func (tc *TaskController) Delete(c *fiber.Ctx) error {
	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	if err := tc.DB.Delete(task).Error; err != nil {
		logger.Error("Failed to delete task", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete task",
		})
	}

	logger.Success(fmt.Sprintf("Task %s deleted", task.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Task deleted",
	})
}

// Escalate sweeps all active published tasks and promotes unconfirmed ones
// approaching their event (WARNING inside 72h, EMERGENCY inside 24h).
// Triggered by an operator or an external cron hitting this endpoint.
func (tc *TaskController) Escalate(c *fiber.Ctx) error {
	var tasks []taskModel.VendorTask
	if err := tc.DB.Where("is_archived = ?", false).Find(&tasks).Error; err != nil {
		logger.Error("Failed to fetch tasks for escalation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var orders []orderModel.Order
	if err := tc.DB.Where("status = ?", orderModel.OrderStatusActive).Find(&orders).Error; err != nil {
		logger.Error("Failed to fetch orders for escalation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	eventDates := make(map[string]time.Time, len(orders))
	for _, o := range orders {
		eventDates[o.ID] = o.EventDate
	}

	now := time.Now()
	escalated := 0
	var failed []string
	for i := range tasks {
		eventDate, ok := eventDates[tasks[i].OrderID]
		if !ok {
			continue
		}
		if !taskpolicy.Escalate(&tasks[i], eventDate, now) {
			continue
		}
		if err := tc.DB.Save(&tasks[i]).Error; err != nil {
			logger.Error(fmt.Sprintf("Failed to persist escalation for task %s", tasks[i].ID), err)
			failed = append(failed, tasks[i].ID)
			continue
		}
		escalated++
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Escalated %d tasks", escalated),
		Data: fiber.Map{
			"escalated":       escalated,
			"failed_task_ids": failed,
		},
	})
}

// GenerateSummary regenerates the AI execution summary for a task from its
// order and the collaborator's role. Generation failures degrade to a fixed
// fallback text and still return 200.
func (tc *TaskController) GenerateSummary(c *fiber.Ctx) error {
	task, errResp := tc.loadTask(c)
	if errResp != nil {
		return errResp(c)
	}

	var order orderModel.Order
	if err := tc.DB.First(&order, "id = ?", task.OrderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order for this task no longer exists",
		})
	}

	role := "合作廠商"
	if assignee, err := ResolveAssignee(tc.DB, task.AssigneeID); err == nil {
		role = assignee.RoleLabel()
	}

	task.AISummary = aisummary.GenerateTaskSummary(c.Context(), &order, role)
	return tc.saveAndRespond(c, task, "Summary generated")
}

// loadTask fetches the task in the :id param, returning a responder on
// failure.
func (tc *TaskController) loadTask(c *fiber.Ctx) (*taskModel.VendorTask, func(*fiber.Ctx) error) {
	var task taskModel.VendorTask
	if err := tc.DB.First(&task, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
					Status:  fiber.StatusNotFound,
					Message: "Task not found",
				})
			}
		}
		logger.Error("Failed to find task", err)
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
			})
		}
	}
	return &task, nil
}

// findTaskByLink reads id + token from path and query.
func (tc *TaskController) findTaskByLink(c *fiber.Ctx) (*taskModel.VendorTask, bool) {
	return tc.findTaskByToken(c.Params("id"), c.Query("token"))
}

// findTaskByToken validates the link credential. The token is mandatory on
// these routes; knowing a task id alone grants nothing.
func (tc *TaskController) findTaskByToken(id, token string) (*taskModel.VendorTask, bool) {
	if token == "" {
		return nil, false
	}
	var task taskModel.VendorTask
	if err := tc.DB.First(&task, "id = ?", id).Error; err != nil {
		return nil, false
	}
	if task.Token != token {
		return nil, false
	}
	return &task, true
}

func (tc *TaskController) saveAndRespond(c *fiber.Ctx, task *taskModel.VendorTask, message string) error {
	if err := tc.DB.Save(task).Error; err != nil {
		logger.Error("Failed to save task", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save task",
		})
	}

	capLogs(task)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    task,
	})
}
