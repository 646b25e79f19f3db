package types

// ConfirmTaskRequest carries the collaborator's acknowledgement. Both
// affirmations must be true for the confirmation to be accepted.
type ConfirmTaskRequest struct {
	Token              string `json:"token"`
	UnderstoodDetails  bool   `json:"understood_details"`
	CapableOfExecuting bool   `json:"capable_of_executing"`
	VendorNote         string `json:"vendor_note,omitempty"`
}

// ReportIssueRequest flags a problem on a task.
type ReportIssueRequest struct {
	Token        string `json:"token"`
	IssueDetails string `json:"issue_details"`
}

// ToggleActionRequest checks or unchecks one checklist item by position.
type ToggleActionRequest struct {
	Token string `json:"token,omitempty"`
	Index int    `json:"index"`
	Done  bool   `json:"done"`
}

// EditTaskRequest is an operator edit of the task content. Any edit moves a
// live task to CHANGED.
type EditTaskRequest struct {
	AISummary       *string  `json:"ai_summary,omitempty"`
	RequiredActions []string `json:"required_actions,omitempty"`
}

// ArchiveTaskRequest toggles the archived flag.
type ArchiveTaskRequest struct {
	Archived bool `json:"archived"`
}

// OpsLogRequest appends a manual ops-log entry.
type OpsLogRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}
