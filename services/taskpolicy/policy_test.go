package taskpolicy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskModel "catering-ops/models/task"
)

func newNotifiedTask() *taskModel.VendorTask {
	sent := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &taskModel.VendorTask{
		ID:              "t-1",
		Status:          taskModel.TaskStatusNotified,
		SentAt:          &sent,
		RequiredActions: taskModel.StringSlice{"a", "b", "c"},
	}
}

func TestPublishMovesDraftToNotified(t *testing.T) {
	task := &taskModel.VendorTask{Status: taskModel.TaskStatusPending}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Publish(task, "ops", now))

	assert.Equal(t, taskModel.TaskStatusNotified, task.Status)
	require.NotNil(t, task.SentAt)
	assert.Equal(t, now, *task.SentAt)
	require.NotEmpty(t, task.OpsLogs)
	assert.Equal(t, "Task Published", task.OpsLogs[0].Action)
}

func TestPublishRejectsNonDraft(t *testing.T) {
	task := newNotifiedTask()
	err := Publish(task, "ops", time.Now())
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}

func TestPublishRejectsArchived(t *testing.T) {
	task := &taskModel.VendorTask{Status: taskModel.TaskStatusPending, IsArchived: true}
	assert.ErrorIs(t, Publish(task, "ops", time.Now()), ErrArchived)
}

func TestConfirmRequiresBothAffirmations(t *testing.T) {
	cases := []struct {
		understood, capable bool
	}{
		{false, false},
		{true, false},
		{false, true},
	}
	for _, tc := range cases {
		task := newNotifiedTask()
		err := Confirm(task, tc.understood, tc.capable, "", "10.0.0.1", time.Now())
		assert.ErrorIs(t, err, ErrAffirmationsRequired)
		assert.Equal(t, taskModel.TaskStatusNotified, task.Status)
	}
}

func TestConfirmRecordsAck(t *testing.T) {
	task := newNotifiedTask()
	now := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)

	require.NoError(t, Confirm(task, true, true, "備妥", "10.0.0.1", now))

	assert.Equal(t, taskModel.TaskStatusConfirmed, task.Status)
	require.NotNil(t, task.AckAt)
	assert.Equal(t, now, *task.AckAt)
	require.NotNil(t, task.AckIP)
	assert.Equal(t, "10.0.0.1", *task.AckIP)
	require.NotNil(t, task.VendorNote)
	assert.Equal(t, "備妥", *task.VendorNote)
}

func TestReportIssueClearsAck(t *testing.T) {
	task := newNotifiedTask()
	require.NoError(t, Confirm(task, true, true, "", "10.0.0.1", time.Now()))
	require.NotNil(t, task.AckAt)

	require.NoError(t, ReportIssue(task, "人手不足", time.Now()))

	assert.Equal(t, taskModel.TaskStatusIssueReported, task.Status)
	assert.Nil(t, task.AckAt)
	require.NotNil(t, task.IssueDetails)
	assert.Equal(t, "人手不足", *task.IssueDetails)
}

func TestReportIssueRequiresText(t *testing.T) {
	task := newNotifiedTask()
	assert.ErrorIs(t, ReportIssue(task, "", time.Now()), ErrIssueTextRequired)
}

func TestIssueThenReconfirm(t *testing.T) {
	task := newNotifiedTask()
	require.NoError(t, ReportIssue(task, "冷藏車故障", time.Now()))
	require.NoError(t, Confirm(task, true, true, "已換車", "10.0.0.2", time.Now()))

	assert.Equal(t, taskModel.TaskStatusConfirmed, task.Status)
	assert.NotNil(t, task.AckAt)
}

func TestMarkChangedKeepsAckHistory(t *testing.T) {
	task := newNotifiedTask()
	require.NoError(t, Confirm(task, true, true, "", "10.0.0.1", time.Now()))

	MarkChanged(task, "ops", time.Now())

	assert.Equal(t, taskModel.TaskStatusChanged, task.Status)
	assert.NotNil(t, task.AckAt)
}

func TestRemindPromotesDraft(t *testing.T) {
	task := &taskModel.VendorTask{Status: taskModel.TaskStatusPending}
	now := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)

	require.NoError(t, Remind(task, "ops", now))

	assert.Equal(t, taskModel.TaskStatusNotified, task.Status)
	require.NotNil(t, task.SentAt)
	assert.Equal(t, now, *task.SentAt)
	require.NotNil(t, task.LastRemindedAt)
}

func TestRemindKeepsNonDraftStatus(t *testing.T) {
	task := newNotifiedTask()
	originalSent := *task.SentAt

	require.NoError(t, Remind(task, "ops", time.Now()))

	assert.Equal(t, taskModel.TaskStatusNotified, task.Status)
	assert.Equal(t, originalSent, *task.SentAt)
}

func TestToggleAction(t *testing.T) {
	task := newNotifiedTask()

	require.NoError(t, ToggleAction(task, 2, true))
	require.NoError(t, ToggleAction(task, 0, true))
	assert.Equal(t, taskModel.IndexSet{0, 2}, task.CompletedActionIndices)

	// Re-checking is a no-op.
	require.NoError(t, ToggleAction(task, 2, true))
	assert.Equal(t, taskModel.IndexSet{0, 2}, task.CompletedActionIndices)

	require.NoError(t, ToggleAction(task, 0, false))
	assert.Equal(t, taskModel.IndexSet{2}, task.CompletedActionIndices)
}

func TestToggleActionRejectsOutOfRange(t *testing.T) {
	task := newNotifiedTask()
	assert.ErrorIs(t, ToggleAction(task, 3, true), ErrInvalidActionIndex)
	assert.ErrorIs(t, ToggleAction(task, -1, true), ErrInvalidActionIndex)
}

func TestPruneStaleIndices(t *testing.T) {
	task := newNotifiedTask()
	task.CompletedActionIndices = taskModel.IndexSet{0, 1, 2}

	task.RequiredActions = taskModel.StringSlice{"a", "b"}
	PruneStaleIndices(task)

	assert.Equal(t, taskModel.IndexSet{0, 1}, task.CompletedActionIndices)
}

func TestEscalateWindows(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		remaining time.Duration
		want      taskModel.TaskStatus
		changed   bool
	}{
		{"far out", 100 * time.Hour, taskModel.TaskStatusNotified, false},
		{"inside warning window", 48 * time.Hour, taskModel.TaskStatusWarning, true},
		{"inside emergency window", 12 * time.Hour, taskModel.TaskStatusEmergency, true},
		{"overdue", -6 * time.Hour, taskModel.TaskStatusEmergency, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := newNotifiedTask()
			changed := Escalate(task, now.Add(tc.remaining), now)
			assert.Equal(t, tc.changed, changed)
			assert.Equal(t, tc.want, task.Status)
		})
	}
}

func TestEscalateSkipsSettledStatuses(t *testing.T) {
	now := time.Now()
	for _, status := range []taskModel.TaskStatus{
		taskModel.TaskStatusPending,
		taskModel.TaskStatusConfirmed,
		taskModel.TaskStatusIssueReported,
		taskModel.TaskStatusEmergency,
	} {
		task := &taskModel.VendorTask{Status: status}
		assert.False(t, Escalate(task, now.Add(time.Hour), now), string(status))
		assert.Equal(t, status, task.Status)
	}
}

func TestEscalateWarningToEmergency(t *testing.T) {
	now := time.Now()
	task := newNotifiedTask()
	task.Status = taskModel.TaskStatusWarning

	assert.True(t, Escalate(task, now.Add(10*time.Hour), now))
	assert.Equal(t, taskModel.TaskStatusEmergency, task.Status)

	// Already at the right level: no change, no extra log entry.
	logs := len(task.OpsLogs)
	assert.False(t, Escalate(task, now.Add(10*time.Hour), now))
	assert.Len(t, task.OpsLogs, logs)
}

func TestEscalateSkipsArchived(t *testing.T) {
	now := time.Now()
	task := newNotifiedTask()
	task.IsArchived = true

	assert.False(t, Escalate(task, now.Add(time.Hour), now))
}

func TestSortByPriority(t *testing.T) {
	tasks := []taskModel.VendorTask{
		{ID: "a", Status: taskModel.TaskStatusConfirmed},
		{ID: "b", Status: taskModel.TaskStatusEmergency},
		{ID: "c", Status: taskModel.TaskStatusPending},
		{ID: "d", Status: taskModel.TaskStatusIssueReported},
	}

	SortByPriority(tasks)

	got := make([]string, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, got)
}

func TestSortByPriorityStable(t *testing.T) {
	tasks := []taskModel.VendorTask{
		{ID: "a", Status: taskModel.TaskStatusNotified},
		{ID: "b", Status: taskModel.TaskStatusNotified},
		{ID: "c", Status: taskModel.TaskStatusEmergency},
		{ID: "d", Status: taskModel.TaskStatusNotified},
	}

	SortByPriority(tasks)

	got := make([]string, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, got)
}

func TestOpsLogsNewestFirst(t *testing.T) {
	task := &taskModel.VendorTask{Status: taskModel.TaskStatusPending}
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Publish(task, "ops", t0))
	require.NoError(t, Confirm(task, true, true, "", "10.0.0.1", t0.Add(time.Hour)))

	require.Len(t, task.OpsLogs, 2)
	assert.Equal(t, "Task Confirmed", task.OpsLogs[0].Action)
	assert.Equal(t, "Task Published", task.OpsLogs[1].Action)
}
