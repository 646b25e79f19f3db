package order

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Order represents one catering event booking.
type Order struct {
	ID         string `gorm:"type:varchar(64);primaryKey" json:"id"`
	ClientName string `gorm:"type:varchar(255);not null" json:"client_name"`
	EventName  string `gorm:"type:varchar(255);not null" json:"event_name"`

	EventDate      time.Time `gorm:"not null;index" json:"event_date"`
	EventStartTime string    `gorm:"type:varchar(10)" json:"event_start_time,omitempty"`
	EventEndTime   string    `gorm:"type:varchar(10)" json:"event_end_time,omitempty"`

	GuestCount   int     `gorm:"not null;default:0" json:"guest_count"`
	Location     string  `gorm:"type:varchar(255)" json:"location"`
	LocationLink *string `gorm:"type:varchar(2048)" json:"location_link,omitempty"`

	SiteManager     SiteManager `gorm:"type:json" json:"site_manager"`
	SpecialRequests string      `gorm:"type:text" json:"special_requests"`
	MenuItems       *string     `gorm:"type:text" json:"menu_items,omitempty"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:ACTIVE;index" json:"status"`

	PaymentStatus    *string `gorm:"type:varchar(50)" json:"payment_status,omitempty"`
	CateringCategory *string `gorm:"type:varchar(50)" json:"catering_category,omitempty"`
	Space            *string `gorm:"type:varchar(50)" json:"space,omitempty"`
	TaxID            *string `gorm:"type:varchar(50)" json:"tax_id,omitempty"`

	// Structured sub-lists stored as JSON blobs on the order row.
	Financials    Financials        `gorm:"type:json" json:"financials"`
	EventFlow     EventFlowList     `gorm:"type:json" json:"event_flow"`
	Logistics     LogisticsList     `gorm:"type:json" json:"logistics"`
	ExecutionTeam ExecutionStaffSet `gorm:"type:json" json:"execution_team"`

	LatestChangeSummary *string `gorm:"type:text" json:"latest_change_summary,omitempty"`
	ExecutionNote       *string `gorm:"type:text" json:"execution_note,omitempty"`

	CreatedBy string     `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Financials holds the stored financial terms of an order. Derived amounts
// (meal cost, subtotal, tax, total, balance) are never stored; they are
// recomputed from these fields and the guest count.
type Financials struct {
	BudgetPerHead     int     `json:"budget_per_head"`
	ShippingFee       int     `json:"shipping_fee"`
	ServiceFee        int     `json:"service_fee"`
	Adjustments       int     `json:"adjustments"`
	Deposit           int     `json:"deposit"`
	DepositDate       *string `json:"deposit_date,omitempty"`
	TaxRate           float64 `json:"tax_rate"`
	IsInvoiceRequired bool    `json:"is_invoice_required"`
	HasServiceCharge  bool    `json:"has_service_charge"`
}

// SiteManager is the internal contact responsible for the event site.
type SiteManager struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Title string `json:"title"`
}

// EventFlowItem is one run-of-show entry.
type EventFlowItem struct {
	Time         string   `json:"time"`
	Activity     string   `json:"activity"`
	Description  string   `json:"description"`
	HighlightFor []string `json:"highlight_for,omitempty"`
}

// LogisticsTime is one logistics checkpoint (depart, setup, teardown...).
type LogisticsTime struct {
	Time   string `json:"time"`
	Action string `json:"action"`
}

// ExecutionStaff is one execution-team slot. AssigneeID links to a vendor or
// part-timer when the slot is filled from the roster; otherwise name/phone
// are entered manually.
type ExecutionStaff struct {
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	IsNotified bool    `json:"is_notified"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

type EventFlowList []EventFlowItem
type LogisticsList []LogisticsTime
type ExecutionStaffSet []ExecutionStaff

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
func (f *Financials) Scan(value interface{}) error { return scanJSON(value, f) }

// Value implements the driver Valuer interface for database serialization
func (f Financials) Value() (driver.Value, error) { return json.Marshal(f) }

func (sm *SiteManager) Scan(value interface{}) error { return scanJSON(value, sm) }
func (sm SiteManager) Value() (driver.Value, error)  { return json.Marshal(sm) }

func (l *EventFlowList) Scan(value interface{}) error { return scanJSON(value, l) }
func (l EventFlowList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(EventFlowList{})
	}
	return json.Marshal(l)
}

func (l *LogisticsList) Scan(value interface{}) error { return scanJSON(value, l) }
func (l LogisticsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LogisticsList{})
	}
	return json.Marshal(l)
}

func (s *ExecutionStaffSet) Scan(value interface{}) error { return scanJSON(value, s) }
func (s ExecutionStaffSet) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(ExecutionStaffSet{})
	}
	return json.Marshal(s)
}

// TableName sets the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
