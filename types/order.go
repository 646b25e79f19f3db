package types

// ToggleServiceChargeRequest flips the automatic 10% service charge on an
// order.
type ToggleServiceChargeRequest struct {
	Enabled bool `json:"enabled"`
}

// DashboardStats is the operations overview block.
type DashboardStats struct {
	TotalActive          int     `json:"total_active"`
	PendingConfirmation  int     `json:"pending_confirmation"`
	EmergencyCount       int     `json:"emergency_count"`
	IssueCount           int     `json:"issue_count"`
	AvgResponseTimeHours float64 `json:"avg_response_time_hours"`
}
