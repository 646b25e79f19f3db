package assignment

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"catering-ops/logger"
	"catering-ops/middleware"
	"catering-ops/services/assignment"
	"catering-ops/types"
	"catering-ops/utils"
)

// AssignmentController handles the combined order + task creation flow
type AssignmentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AssignmentController {
	return &AssignmentController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Create materialises a new event: one order plus one draft task per
// selected collaborator. The order is saved first; each task is then saved
// on its own so a single bad row does not abort the batch. Failures come
// back in failed_task_ids for the operator to retry.
func (ac *AssignmentController) Create(c *fiber.Ctx) error {
	var req types.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	eventDate, err := utils.ParseEventDate(req.EventDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid event date",
		})
	}

	actor := middleware.ClaimString(c, "name")
	newOrder, tasks, err := assignment.Build(assignment.EventInfo{
		EventName:  req.EventName,
		ClientName: req.ClientName,
		EventDate:  eventDate,
	}, req.VendorIDs, req.PartTimerIDs, actor, time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := ac.DB.Create(&newOrder).Error; err != nil {
		logger.Error("Failed to create order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	result := types.AssignmentResult{OrderID: newOrder.ID}
	for i := range tasks {
		if err := ac.DB.Create(&tasks[i]).Error; err != nil {
			logger.Error(fmt.Sprintf("Failed to create task for collaborator %s", tasks[i].AssigneeID), err)
			result.FailedTaskIDs = append(result.FailedTaskIDs, tasks[i].ID)
			continue
		}
		result.TaskIDs = append(result.TaskIDs, tasks[i].ID)
	}

	ac.Logger.Log(utils.CreateSanitizedLogEntry(c, actor))

	message := "Assignment created"
	if len(result.FailedTaskIDs) > 0 {
		message = fmt.Sprintf("Assignment created with %d failed tasks", len(result.FailedTaskIDs))
	}
	logger.Success(fmt.Sprintf("Assignment %s: %d tasks created, %d failed",
		newOrder.ID, len(result.TaskIDs), len(result.FailedTaskIDs)))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: message,
		Data:    result,
	})
}
