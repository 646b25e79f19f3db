package order

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"catering-ops/constants"
	"catering-ops/logger"
	"catering-ops/middleware"
	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
	"catering-ops/services/finance"
	"catering-ops/types"
	"catering-ops/utils"
)

// OrderController handles order-related HTTP requests
type OrderController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewOrderController creates a new order controller
func NewOrderController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *OrderController {
	return &OrderController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// LogisticsTemplates serves the per-event-type logistics timelines operators
// load into an order as a starting point.
func (oc *OrderController) LogisticsTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logistics templates retrieved successfully",
		Data:    constants.LogisticsTemplates,
	})
}

// EventFlowTemplates serves the per-event-type run-of-show timelines
// operators load into an order's event flow.
func (oc *OrderController) EventFlowTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event flow templates retrieved successfully",
		Data:    constants.EventFlowTemplates,
	})
}

// orderView pairs an order with its recomputed financial breakdown.
type orderView struct {
	orderModel.Order
	Computed finance.Breakdown `json:"computed"`
}

// Index lists orders, newest event first, with derived financials attached.
func (oc *OrderController) Index(c *fiber.Ctx) error {
	var orders []orderModel.Order
	if err := oc.DB.Order("event_date DESC").Find(&orders).Error; err != nil {
		logger.Error("Failed to fetch orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	views := make([]orderView, len(orders))
	for i := range orders {
		views[i] = orderView{Order: orders[i], Computed: finance.Compute(&orders[i])}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders retrieved successfully",
		Data:    views,
	})
}

// Show returns one order with its financial breakdown.
func (oc *OrderController) Show(c *fiber.Ctx) error {
	var order orderModel.Order
	if err := oc.DB.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		logger.Error("Failed to find order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order retrieved successfully",
		Data:    orderView{Order: order, Computed: finance.Compute(&order)},
	})
}

// Update overwrites an order's editable fields. Terminal statuses never
// revert to ACTIVE.
func (oc *OrderController) Update(c *fiber.Ctx) error {
	var existing orderModel.Order
	if err := oc.DB.First(&existing, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		logger.Error("Failed to find order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	var incoming orderModel.Order
	if err := c.BodyParser(&incoming); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if incoming.Status != "" && !incoming.Status.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order status",
		})
	}
	if existing.Status.IsTerminal() && incoming.Status == orderModel.OrderStatusActive {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Completed or cancelled orders cannot be reactivated",
		})
	}

	incoming.ID = existing.ID
	incoming.CreatedBy = existing.CreatedBy
	incoming.CreatedAt = existing.CreatedAt
	if incoming.Status == "" {
		incoming.Status = existing.Status
	}
	incoming.Financials = finance.MergeFinancials(existing.Financials, incoming.Financials)

	if err := oc.DB.Save(&incoming).Error; err != nil {
		logger.Error("Failed to update order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order updated successfully",
		Data:    orderView{Order: incoming, Computed: finance.Compute(&incoming)},
	})
}

// ToggleServiceCharge flips the automatic 10% service charge. Turning it on
// overwrites the stored manual fee once; the stored fee is read-only while
// the flag stays on.
func (oc *OrderController) ToggleServiceCharge(c *fiber.Ctx) error {
	var req types.ToggleServiceChargeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var order orderModel.Order
	if err := oc.DB.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		logger.Error("Failed to find order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	order.Financials = finance.ApplyServiceChargeToggle(order.GuestCount, order.Financials, req.Enabled)
	if err := oc.DB.Save(&order).Error; err != nil {
		logger.Error("Failed to update service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service charge updated",
		Data:    orderView{Order: order, Computed: finance.Compute(&order)},
	})
}

// Cancel manually closes an order without archiving its tasks.
func (oc *OrderController) Cancel(c *fiber.Ctx) error {
	var order orderModel.Order
	if err := oc.DB.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		logger.Error("Failed to find order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if order.Status.IsTerminal() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order is already closed",
		})
	}

	order.Status = orderModel.OrderStatusCancelled
	if err := oc.DB.Save(&order).Error; err != nil {
		logger.Error("Failed to cancel order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	logger.Success(fmt.Sprintf("Order %s cancelled by %s", order.ID, middleware.ClaimString(c, "name")))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order cancelled",
		Data:    order,
	})
}

// Delete permanently removes an order and, explicitly, its tasks. There is
// no automatic cascade; the task delete runs first so a failure leaves no
// orphaned order-less tasks.
func (oc *OrderController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var order orderModel.Order
	if err := oc.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		logger.Error("Failed to find order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if err := oc.DB.Where("order_id = ?", id).Delete(&taskModel.VendorTask{}).Error; err != nil {
		logger.Error("Failed to delete order tasks", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete order tasks",
		})
	}
	if err := oc.DB.Unscoped().Delete(&order).Error; err != nil {
		logger.Error("Failed to delete order", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete order",
		})
	}

	oc.Logger.Log(utils.CreateSanitizedLogEntry(c, middleware.ClaimString(c, "name")))
	logger.Success(fmt.Sprintf("Order %s and its tasks deleted", id))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order and linked tasks deleted",
	})
}
