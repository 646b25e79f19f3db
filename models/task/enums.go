package task

// TaskStatus is the confirmation-workflow state of a vendor task.
type TaskStatus string

const (
	TaskStatusPending       TaskStatus = "PENDING"        // created, not yet sent
	TaskStatusNotified      TaskStatus = "NOTIFIED"       // sent to the collaborator
	TaskStatusConfirmed     TaskStatus = "CONFIRMED"      // collaborator accepted
	TaskStatusWarning       TaskStatus = "WARNING"        // approaching deadline, unconfirmed
	TaskStatusEmergency     TaskStatus = "EMERGENCY"      // imminent or overdue, unconfirmed
	TaskStatusIssueReported TaskStatus = "ISSUE_REPORTED" // collaborator flagged a problem
	TaskStatusChanged       TaskStatus = "CHANGED"        // content edited, needs re-acknowledgement
)

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusPending, TaskStatusNotified, TaskStatusConfirmed,
		TaskStatusWarning, TaskStatusEmergency, TaskStatusIssueReported, TaskStatusChanged:
		return true
	default:
		return false
	}
}

// Priority returns the display ordering weight for the active task list.
// Higher values sort first.
func (ts TaskStatus) Priority() int {
	switch ts {
	case TaskStatusEmergency:
		return 10
	case TaskStatusIssueReported:
		return 9
	case TaskStatusWarning:
		return 8
	case TaskStatusPending:
		return 5
	case TaskStatusNotified:
		return 2
	case TaskStatusConfirmed:
		return 1
	default:
		return 0
	}
}

// NeedsAttention returns true if the status represents an unresolved risk.
func (ts TaskStatus) NeedsAttention() bool {
	return ts == TaskStatusWarning || ts == TaskStatusEmergency || ts == TaskStatusIssueReported
}

// GetAllTaskStatuses returns all valid task statuses
func GetAllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusNotified,
		TaskStatusConfirmed,
		TaskStatusWarning,
		TaskStatusEmergency,
		TaskStatusIssueReported,
		TaskStatusChanged,
	}
}
