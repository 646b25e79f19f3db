package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering-ops/constants"
	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
)

var eventInfo = EventInfo{
	EventName:  "春酒晚宴",
	ClientName: "王小姐",
	EventDate:  time.Date(2026, 4, 18, 18, 0, 0, 0, time.UTC),
}

func TestBuildValidation(t *testing.T) {
	now := time.Now()

	_, _, err := Build(EventInfo{ClientName: "x", EventDate: eventInfo.EventDate},
		[]string{"v1"}, nil, "ops", now)
	assert.ErrorIs(t, err, ErrEventNameRequired)

	_, _, err = Build(EventInfo{EventName: "x", EventDate: eventInfo.EventDate},
		[]string{"v1"}, nil, "ops", now)
	assert.ErrorIs(t, err, ErrClientNameRequired)

	_, _, err = Build(eventInfo, nil, nil, "ops", now)
	assert.ErrorIs(t, err, ErrNoCollaborators)
}

func TestBuildCreatesOrderWithDefaults(t *testing.T) {
	newOrder, _, err := Build(eventInfo, []string{"v1"}, nil, "ops", time.Now())
	require.NoError(t, err)

	assert.NotEmpty(t, newOrder.ID)
	assert.Equal(t, "春酒晚宴", newOrder.EventName)
	assert.Equal(t, "王小姐", newOrder.ClientName)
	assert.Equal(t, orderModel.OrderStatusActive, newOrder.Status)
	assert.Equal(t, 0, newOrder.GuestCount)
	assert.Equal(t, "待定", newOrder.Location)
	assert.Equal(t, "待定", newOrder.SiteManager.Name)
	require.NotNil(t, newOrder.PaymentStatus)
	assert.Equal(t, "未付訂", *newOrder.PaymentStatus)
	assert.Equal(t, 0.05, newOrder.Financials.TaxRate)
	assert.True(t, newOrder.Financials.IsInvoiceRequired)
	assert.False(t, newOrder.Financials.HasServiceCharge)
	assert.Equal(t, "ops", newOrder.CreatedBy)
}

func TestBuildOneTaskPerCollaborator(t *testing.T) {
	newOrder, tasks, err := Build(eventInfo, []string{"v1", "v2"}, []string{"p1"}, "ops", time.Now())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	seenIDs := map[string]bool{}
	seenTokens := map[string]bool{}
	for _, task := range tasks {
		assert.Equal(t, newOrder.ID, task.OrderID)
		assert.Equal(t, taskModel.TaskStatusPending, task.Status)
		assert.Nil(t, task.SentAt)
		assert.Equal(t, taskModel.StringSlice(constants.StandardExecutionList), task.RequiredActions)
		assert.Empty(t, task.CompletedActionIndices)
		assert.NotEmpty(t, task.Token)
		seenIDs[task.ID] = true
		seenTokens[task.Token] = true
	}
	assert.Len(t, seenIDs, 3)
	assert.Len(t, seenTokens, 3)

	assert.Equal(t, "v1", tasks[0].AssigneeID)
	assert.Equal(t, "v2", tasks[1].AssigneeID)
	assert.Equal(t, "p1", tasks[2].AssigneeID)
}

func TestBuildTaskSummariesByCollaboratorKind(t *testing.T) {
	_, tasks, err := Build(eventInfo, []string{"v1"}, []string{"p1"}, "ops", time.Now())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "準備 春酒晚宴 的相關服務。", tasks[0].AISummary)
	assert.Equal(t, "支援 春酒晚宴 現場執行。", tasks[1].AISummary)

	require.NotEmpty(t, tasks[0].OpsLogs)
	assert.Equal(t, "任務建立", tasks[0].OpsLogs[0].Note)
	assert.Equal(t, "兼職任務建立", tasks[1].OpsLogs[0].Note)
}

func TestBuildChecklistIsACopy(t *testing.T) {
	_, tasks, err := Build(eventInfo, []string{"v1"}, nil, "ops", time.Now())
	require.NoError(t, err)

	tasks[0].RequiredActions[0] = "改過的項目"
	assert.NotEqual(t, tasks[0].RequiredActions[0], constants.StandardExecutionList[0])
}
