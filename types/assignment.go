package types

// CreateAssignmentRequest creates one order plus one task per selected
// collaborator.
type CreateAssignmentRequest struct {
	EventName    string   `json:"event_name"`
	ClientName   string   `json:"client_name"`
	EventDate    string   `json:"event_date"` // ISO date or datetime
	VendorIDs    []string `json:"vendor_ids"`
	PartTimerIDs []string `json:"part_timer_ids"`
}

// AssignmentResult reports what was persisted; task creation is per-record
// best-effort, so some tasks may fail while the order succeeds.
type AssignmentResult struct {
	OrderID       string   `json:"order_id"`
	TaskIDs       []string `json:"task_ids"`
	FailedTaskIDs []string `json:"failed_task_ids,omitempty"`
}
