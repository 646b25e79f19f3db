package archive

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"catering-ops/logger"
	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
)

// Plan is the set of records the archive pass intends to change.
type Plan struct {
	OrderIDs []string
	TaskIDs  []string
}

// Result reports which records were persisted and which failed. Failures are
// tolerated; the in-memory view reflects the intended end state regardless.
type Result struct {
	ArchivedOrders int      `json:"archived_orders"`
	ArchivedTasks  int      `json:"archived_tasks"`
	FailedOrderIDs []string `json:"failed_order_ids,omitempty"`
	FailedTaskIDs  []string `json:"failed_task_ids,omitempty"`
}

// IsEmpty reports whether the plan touches nothing.
func (p Plan) IsEmpty() bool {
	return len(p.OrderIDs) == 0 && len(p.TaskIDs) == 0
}

// StartOfToday returns the date-only boundary used for archival.
func StartOfToday(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// BuildPlan selects active orders whose event date is strictly before the
// start of "today", plus their not-yet-archived tasks. An order dated today
// at 00:00 is not selected. Running the pass twice yields an empty second
// plan: completed orders and archived tasks are never reprocessed.
func BuildPlan(orders []orderModel.Order, tasks []taskModel.VendorTask, today time.Time) Plan {
	cutoff := StartOfToday(today)

	past := make(map[string]bool)
	var plan Plan
	for _, o := range orders {
		if o.Status == orderModel.OrderStatusActive && o.EventDate.Before(cutoff) {
			past[o.ID] = true
			plan.OrderIDs = append(plan.OrderIDs, o.ID)
		}
	}
	for _, t := range tasks {
		if past[t.OrderID] && !t.IsArchived {
			plan.TaskIDs = append(plan.TaskIDs, t.ID)
		}
	}
	return plan
}

// Apply persists the plan record by record. Each update is independent and
// best-effort: a failure is logged, collected in the result and does not
// stop the remaining updates. No transaction wraps the pass.
func Apply(db *gorm.DB, plan Plan) Result {
	var res Result

	for _, id := range plan.OrderIDs {
		err := db.Model(&orderModel.Order{}).
			Where("id = ?", id).
			Update("status", orderModel.OrderStatusCompleted).Error
		if err != nil {
			logger.Error(fmt.Sprintf("Auto-archive: failed to complete order %s", id), err)
			res.FailedOrderIDs = append(res.FailedOrderIDs, id)
			continue
		}
		res.ArchivedOrders++
	}

	for _, id := range plan.TaskIDs {
		err := db.Model(&taskModel.VendorTask{}).
			Where("id = ?", id).
			Update("is_archived", true).Error
		if err != nil {
			logger.Error(fmt.Sprintf("Auto-archive: failed to archive task %s", id), err)
			res.FailedTaskIDs = append(res.FailedTaskIDs, id)
			continue
		}
		res.ArchivedTasks++
	}

	if res.ArchivedOrders > 0 || res.ArchivedTasks > 0 {
		logger.Info(fmt.Sprintf("Auto-archive: completed %d orders, archived %d tasks",
			res.ArchivedOrders, res.ArchivedTasks))
	}
	return res
}

// Run loads the active data set, builds the plan and applies it. Invoked
// once per full data load, not continuously.
func Run(db *gorm.DB, today time.Time) (Result, error) {
	var orders []orderModel.Order
	if err := db.Find(&orders).Error; err != nil {
		return Result{}, err
	}
	var tasks []taskModel.VendorTask
	if err := db.Find(&tasks).Error; err != nil {
		return Result{}, err
	}
	plan := BuildPlan(orders, tasks, today)
	if plan.IsEmpty() {
		return Result{}, nil
	}
	return Apply(db, plan), nil
}
