package assignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"catering-ops/constants"
	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
)

var (
	ErrEventNameRequired  = errors.New("event name is required")
	ErrClientNameRequired = errors.New("client name is required")
	ErrNoCollaborators    = errors.New("at least one vendor or part-timer must be selected")
)

// EventInfo is the minimal input for a new assignment.
type EventInfo struct {
	EventName  string
	ClientName string
	EventDate  time.Time
}

// defaultTaxRate applies to every new order; it stays configurable per order
// afterwards.
const defaultTaxRate = 0.05

// Build creates one new order with zeroed financials and one PENDING task
// per selected collaborator. Vendors and part-timers share the task shape;
// the collaborator type is not recorded on the task. Nothing is persisted
// here — the caller saves the order and each task independently.
func Build(info EventInfo, vendorIDs, partTimerIDs []string, actor string, now time.Time) (orderModel.Order, []taskModel.VendorTask, error) {
	if info.EventName == "" {
		return orderModel.Order{}, nil, ErrEventNameRequired
	}
	if info.ClientName == "" {
		return orderModel.Order{}, nil, ErrClientNameRequired
	}
	if len(vendorIDs)+len(partTimerIDs) == 0 {
		return orderModel.Order{}, nil, ErrNoCollaborators
	}

	paymentStatus := "未付訂"
	newOrder := orderModel.Order{
		ID:            uuid.NewString(),
		EventName:     info.EventName,
		ClientName:    info.ClientName,
		EventDate:     info.EventDate,
		GuestCount:    0,
		Location:      "待定",
		SiteManager:   orderModel.SiteManager{Name: "待定"},
		Status:        orderModel.OrderStatusActive,
		PaymentStatus: &paymentStatus,
		Financials: orderModel.Financials{
			TaxRate:           defaultTaxRate,
			IsInvoiceRequired: true,
		},
		EventFlow:     orderModel.EventFlowList{},
		Logistics:     orderModel.LogisticsList{},
		ExecutionTeam: orderModel.ExecutionStaffSet{},
		CreatedBy:     actor,
	}

	tasks := make([]taskModel.VendorTask, 0, len(vendorIDs)+len(partTimerIDs))
	for _, vid := range vendorIDs {
		tasks = append(tasks, newTask(newOrder.ID, vid,
			fmt.Sprintf("準備 %s 的相關服務。", info.EventName), "任務建立", actor, now))
	}
	for _, pid := range partTimerIDs {
		tasks = append(tasks, newTask(newOrder.ID, pid,
			fmt.Sprintf("支援 %s 現場執行。", info.EventName), "兼職任務建立", actor, now))
	}
	return newOrder, tasks, nil
}

func newTask(orderID, assigneeID, summary, note, actor string, now time.Time) taskModel.VendorTask {
	actions := make(taskModel.StringSlice, len(constants.StandardExecutionList))
	copy(actions, constants.StandardExecutionList)

	return taskModel.VendorTask{
		ID:                     uuid.NewString(),
		OrderID:                orderID,
		AssigneeID:             assigneeID,
		Status:                 taskModel.TaskStatusPending,
		AISummary:              summary,
		RequiredActions:        actions,
		CompletedActionIndices: taskModel.IndexSet{},
		Token:                  uuid.NewString(),
		OpsLogs: taskModel.OpsLog{{
			Timestamp: now,
			Action:    "Task Created",
			Note:      note,
			User:      actor,
		}},
	}
}
