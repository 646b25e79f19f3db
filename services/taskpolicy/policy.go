package taskpolicy

import (
	"errors"
	"sort"
	"time"

	taskModel "catering-ops/models/task"
)

// Escalation windows for unconfirmed tasks, measured against the event date.
const (
	WarningWindow   = 72 * time.Hour
	EmergencyWindow = 24 * time.Hour
)

var (
	ErrAlreadyPublished     = errors.New("task has already been published")
	ErrArchived             = errors.New("task is archived")
	ErrAffirmationsRequired = errors.New("both affirmations are required to confirm")
	ErrIssueTextRequired    = errors.New("issue details must not be empty")
	ErrInvalidActionIndex   = errors.New("checklist index out of range")
)

// Publish moves a draft task to NOTIFIED. Operator action: records the send
// time and an audit entry. The caller is expected to have asked the operator
// for confirmation before invoking this.
func Publish(t *taskModel.VendorTask, actor string, now time.Time) error {
	if t.IsArchived {
		return ErrArchived
	}
	if t.Status != taskModel.TaskStatusPending {
		return ErrAlreadyPublished
	}
	t.Status = taskModel.TaskStatusNotified
	t.SentAt = &now
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Task Published",
		Note:      "Notification sent to collaborator",
		User:      actor,
	})
	return nil
}

// Confirm records the collaborator's acknowledgement. Both affirmations
// ("understood details", "capable of executing") must be true. The vendor
// note is stored verbatim.
func Confirm(t *taskModel.VendorTask, understood, capable bool, note, ip string, now time.Time) error {
	if t.IsArchived {
		return ErrArchived
	}
	if !understood || !capable {
		return ErrAffirmationsRequired
	}
	t.Status = taskModel.TaskStatusConfirmed
	t.AckAt = &now
	t.AckIP = &ip
	if note != "" {
		t.VendorNote = &note
	}
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Task Confirmed",
		Note:      note,
		User:      "collaborator",
	})
	return nil
}

// ReportIssue flags a problem from the collaborator side. An issue is not an
// acknowledgement, so any previous ack is cleared.
func ReportIssue(t *taskModel.VendorTask, details string, now time.Time) error {
	if t.IsArchived {
		return ErrArchived
	}
	if details == "" {
		return ErrIssueTextRequired
	}
	t.Status = taskModel.TaskStatusIssueReported
	t.IssueDetails = &details
	t.AckAt = nil
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Issue Reported",
		Note:      details,
		User:      "collaborator",
	})
	return nil
}

// MarkChanged is applied after an operator edits the summary or checklist of
// a live task. It signals "needs re-acknowledgement" without resetting the
// ack history.
func MarkChanged(t *taskModel.VendorTask, actor string, now time.Time) {
	t.Status = taskModel.TaskStatusChanged
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Task Updated",
		Note:      "Content edited by operations",
		User:      actor,
	})
}

// Remind records a manual reminder. A reminded draft counts as sent.
func Remind(t *taskModel.VendorTask, actor string, now time.Time) error {
	if t.IsArchived {
		return ErrArchived
	}
	t.LastRemindedAt = &now
	if t.Status == taskModel.TaskStatusPending {
		t.Status = taskModel.TaskStatusNotified
		if t.SentAt == nil {
			t.SentAt = &now
		}
	}
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Manual Reminder",
		Note:      "Reminder sent to collaborator",
		User:      actor,
	})
	return nil
}

// ToggleAction checks or unchecks one checklist item by position.
func ToggleAction(t *taskModel.VendorTask, index int, done bool) error {
	if index < 0 || index >= len(t.RequiredActions) {
		return ErrInvalidActionIndex
	}
	if done {
		if !t.CompletedActionIndices.Contains(index) {
			t.CompletedActionIndices = append(t.CompletedActionIndices, index)
			sort.Ints(t.CompletedActionIndices)
		}
		return nil
	}
	kept := t.CompletedActionIndices[:0]
	for _, v := range t.CompletedActionIndices {
		if v != index {
			kept = append(kept, v)
		}
	}
	t.CompletedActionIndices = kept
	return nil
}

// PruneStaleIndices drops completed indices that no longer point into the
// checklist. Called after checklist edits; positional identity is kept, so
// surviving indices may refer to different items than when checked.
func PruneStaleIndices(t *taskModel.VendorTask) {
	kept := t.CompletedActionIndices[:0]
	for _, v := range t.CompletedActionIndices {
		if v >= 0 && v < len(t.RequiredActions) {
			kept = append(kept, v)
		}
	}
	t.CompletedActionIndices = kept
}

// Escalate promotes an unconfirmed, published task based on time until the
// event: WARNING inside the 72h window, EMERGENCY inside 24h or overdue.
// Confirmed, issue-reported, draft and archived tasks are left alone.
// Returns true if the status changed.
func Escalate(t *taskModel.VendorTask, eventDate, now time.Time) bool {
	if t.IsArchived {
		return false
	}
	switch t.Status {
	case taskModel.TaskStatusNotified, taskModel.TaskStatusWarning, taskModel.TaskStatusChanged:
	default:
		return false
	}

	remaining := eventDate.Sub(now)
	var next taskModel.TaskStatus
	switch {
	case remaining <= EmergencyWindow:
		next = taskModel.TaskStatusEmergency
	case remaining <= WarningWindow:
		next = taskModel.TaskStatusWarning
	default:
		return false
	}
	if next == t.Status {
		return false
	}
	t.Status = next
	t.OpsLogs = t.OpsLogs.Prepend(taskModel.OpsLogEntry{
		Timestamp: now,
		Action:    "Auto Escalated",
		Note:      "Unconfirmed with event approaching",
		User:      "system",
	})
	return true
}

// SortByPriority orders tasks highest display priority first. The sort is
// stable so equal-priority tasks keep their incoming order.
func SortByPriority(tasks []taskModel.VendorTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Status.Priority() > tasks[j].Status.Priority()
	})
}
