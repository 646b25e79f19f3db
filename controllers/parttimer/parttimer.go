package parttimer

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"catering-ops/logger"
	parttimerModel "catering-ops/models/parttimer"
	"catering-ops/services/auth"
	"catering-ops/types"
	"catering-ops/utils"
)

// PartTimerController handles part-timer roster requests
type PartTimerController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewPartTimerController creates a new part-timer controller
func NewPartTimerController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *PartTimerController {
	return &PartTimerController{
		DB:     db,
		Logger: asyncLogger,
	}
}

type upsertPartTimerRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	SalaryType string  `json:"salary_type"`
	Rate       *int    `json:"rate"`
	Skills     *string `json:"skills"`
	Password   string  `json:"password,omitempty"`
}

// Index lists part-timers, optionally filtered by role.
func (pc *PartTimerController) Index(c *fiber.Ctx) error {
	query := pc.DB.Order("name ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var partTimers []parttimerModel.PartTimer
	if err := query.Find(&partTimers).Error; err != nil {
		logger.Error("Failed to fetch part-timers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Part-timers retrieved successfully",
		Data:    partTimers,
	})
}

// Show returns one part-timer by id.
func (pc *PartTimerController) Show(c *fiber.Ctx) error {
	partTimer, errResp := pc.loadPartTimer(c)
	if errResp != nil {
		return errResp(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Part-timer retrieved successfully",
		Data:    partTimer,
	})
}

// Create registers a new part-timer. Role and salary type come from closed
// sets, unlike vendor roles.
func (pc *PartTimerController) Create(c *fiber.Ctx) error {
	var req upsertPartTimerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name and email are required",
		})
	}
	role := parttimerModel.PartTimeRole(req.Role)
	if !role.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid part-timer role",
		})
	}
	salaryType := parttimerModel.SalaryType(req.SalaryType)
	if !salaryType.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid salary type",
		})
	}
	if req.Phone != "" && !utils.ValidatePhoneNumber(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid phone number",
		})
	}

	partTimer := parttimerModel.PartTimer{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Role:       role,
		Phone:      req.Phone,
		Email:      req.Email,
		SalaryType: salaryType,
		Skills:     req.Skills,
	}
	if req.Rate != nil {
		partTimer.Rate = *req.Rate
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to process password",
			})
		}
		partTimer.PasswordHash = hash
	}

	if err := pc.DB.Create(&partTimer).Error; err != nil {
		logger.Error("Failed to create part-timer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create part-timer",
		})
	}

	logger.Success(fmt.Sprintf("Part-timer %s created", partTimer.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Part-timer created",
		Data:    partTimer,
	})
}

// Update edits a part-timer. Changes apply immediately; there is no review
// step for part-timer profiles.
func (pc *PartTimerController) Update(c *fiber.Ctx) error {
	var req upsertPartTimerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	partTimer, errResp := pc.loadPartTimer(c)
	if errResp != nil {
		return errResp(c)
	}

	if req.Name != "" {
		partTimer.Name = req.Name
	}
	if req.Role != "" {
		role := parttimerModel.PartTimeRole(req.Role)
		if !role.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid part-timer role",
			})
		}
		partTimer.Role = role
	}
	if req.SalaryType != "" {
		salaryType := parttimerModel.SalaryType(req.SalaryType)
		if !salaryType.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid salary type",
			})
		}
		partTimer.SalaryType = salaryType
	}
	if req.Phone != "" {
		if !utils.ValidatePhoneNumber(req.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid phone number",
			})
		}
		partTimer.Phone = req.Phone
	}
	if req.Email != "" {
		partTimer.Email = req.Email
	}
	if req.Rate != nil {
		partTimer.Rate = *req.Rate
	}
	if req.Skills != nil {
		partTimer.Skills = req.Skills
	}

	if err := pc.DB.Save(partTimer).Error; err != nil {
		logger.Error("Failed to save part-timer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save part-timer",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Part-timer updated",
		Data:    partTimer,
	})
}

// Delete removes a part-timer; their existing tasks surface as broken
// references.
func (pc *PartTimerController) Delete(c *fiber.Ctx) error {
	partTimer, errResp := pc.loadPartTimer(c)
	if errResp != nil {
		return errResp(c)
	}

	if err := pc.DB.Delete(partTimer).Error; err != nil {
		logger.Error("Failed to delete part-timer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete part-timer",
		})
	}

	logger.Success(fmt.Sprintf("Part-timer %s deleted", partTimer.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Part-timer deleted",
	})
}

func (pc *PartTimerController) loadPartTimer(c *fiber.Ctx) (*parttimerModel.PartTimer, func(*fiber.Ctx) error) {
	var partTimer parttimerModel.PartTimer
	if err := pc.DB.First(&partTimer, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
					Status:  fiber.StatusNotFound,
					Message: "Part-timer not found",
				})
			}
		}
		logger.Error("Failed to find part-timer", err)
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
			})
		}
	}
	return &partTimer, nil
}
