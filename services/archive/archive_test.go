package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
)

var today = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestStartOfToday(t *testing.T) {
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartOfToday(today))
}

func TestBuildPlanSelectsPastActiveOrders(t *testing.T) {
	orders := []orderModel.Order{
		{ID: "past-active", Status: orderModel.OrderStatusActive,
			EventDate: time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC)},
		{ID: "past-cancelled", Status: orderModel.OrderStatusCancelled,
			EventDate: time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC)},
		{ID: "future", Status: orderModel.OrderStatusActive,
			EventDate: time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)},
	}
	tasks := []taskModel.VendorTask{
		{ID: "t1", OrderID: "past-active"},
		{ID: "t2", OrderID: "past-active", IsArchived: true},
		{ID: "t3", OrderID: "future"},
	}

	plan := BuildPlan(orders, tasks, today)

	assert.Equal(t, []string{"past-active"}, plan.OrderIDs)
	assert.Equal(t, []string{"t1"}, plan.TaskIDs)
}

func TestBuildPlanTodayMidnightIsNotPast(t *testing.T) {
	orders := []orderModel.Order{
		{ID: "today-midnight", Status: orderModel.OrderStatusActive,
			EventDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "yesterday-end", Status: orderModel.OrderStatusActive,
			EventDate: time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)},
	}

	plan := BuildPlan(orders, nil, today)

	assert.Equal(t, []string{"yesterday-end"}, plan.OrderIDs)
}

func TestBuildPlanIdempotent(t *testing.T) {
	orders := []orderModel.Order{
		{ID: "o1", Status: orderModel.OrderStatusActive,
			EventDate: time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)},
	}
	tasks := []taskModel.VendorTask{{ID: "t1", OrderID: "o1"}}

	first := BuildPlan(orders, tasks, today)
	assert.False(t, first.IsEmpty())

	// Simulate the applied end state and rebuild.
	orders[0].Status = orderModel.OrderStatusCompleted
	tasks[0].IsArchived = true

	second := BuildPlan(orders, tasks, today)
	assert.True(t, second.IsEmpty())
}

func TestBuildPlanEmptyInput(t *testing.T) {
	assert.True(t, BuildPlan(nil, nil, today).IsEmpty())
}
