package task

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// VendorTask represents one collaborator's obligation against an order.
// AssigneeID references either a vendor or a part-timer; the two rosters
// share the task shape and are told apart by lookup (vendor wins on an id
// collision).
type VendorTask struct {
	ID         string `gorm:"type:varchar(64);primaryKey" json:"id"`
	OrderID    string `gorm:"type:varchar(64);not null;index" json:"order_id"`
	AssigneeID string `gorm:"type:varchar(64);not null;index" json:"assignee_id"`

	Status TaskStatus `gorm:"type:varchar(20);not null;default:PENDING;index" json:"status"`

	SentAt *time.Time `json:"sent_at,omitempty"`
	AckAt  *time.Time `json:"ack_at,omitempty"`
	AckIP  *string    `gorm:"type:varchar(64)" json:"ack_ip,omitempty"`

	AISummary string `gorm:"type:text" json:"ai_summary"`

	// Checklist items plus the positions of the checked ones. Indices are
	// positional; entries that fall out of range after a checklist edit are
	// dropped on the next validation pass.
	RequiredActions        StringSlice `gorm:"type:json" json:"required_actions"`
	CompletedActionIndices IndexSet    `gorm:"type:json" json:"completed_action_indices"`

	LastRemindedAt *time.Time `json:"last_reminded_at,omitempty"`

	// Opaque link credential: task id + token authorizes a collaborator to
	// view and act on exactly this task without an account.
	Token string `gorm:"type:varchar(128);not null" json:"token"`

	VendorNote   *string `gorm:"type:text" json:"vendor_note,omitempty"`
	IssueDetails *string `gorm:"type:text" json:"issue_details,omitempty"`

	// Append-only audit trail, newest first.
	OpsLogs OpsLog `gorm:"type:json" json:"ops_logs"`

	IsArchived bool `gorm:"not null;default:false;index" json:"is_archived"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// OpsLogEntry is one audit record of an operator or collaborator action.
type OpsLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Note      string    `json:"note"`
	User      string    `json:"user"`
}

// OpsLog is a newest-first list of audit entries.
type OpsLog []OpsLogEntry

// Prepend returns the log with the entry added at the front.
func (l OpsLog) Prepend(entry OpsLogEntry) OpsLog {
	out := make(OpsLog, 0, len(l)+1)
	out = append(out, entry)
	out = append(out, l...)
	return out
}

type StringSlice []string
type IndexSet []int

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}
	return json.Unmarshal(bytes, dest)
}

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error { return scanJSON(value, ss) }

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return json.Marshal(StringSlice{})
	}
	return json.Marshal(ss)
}

func (is *IndexSet) Scan(value interface{}) error { return scanJSON(value, is) }
func (is IndexSet) Value() (driver.Value, error) {
	if is == nil {
		return json.Marshal(IndexSet{})
	}
	return json.Marshal(is)
}

func (l *OpsLog) Scan(value interface{}) error { return scanJSON(value, l) }
func (l OpsLog) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(OpsLog{})
	}
	return json.Marshal(l)
}

// Contains reports whether the set holds the given index.
func (is IndexSet) Contains(idx int) bool {
	for _, v := range is {
		if v == idx {
			return true
		}
	}
	return false
}

// TableName sets the table name for the VendorTask model
func (VendorTask) TableName() string {
	return "vendor_tasks"
}
