package parttimer

import (
	"time"
)

// PartTimer represents an individually contracted worker. Unlike vendors,
// part-timer profile changes are not reviewed.
type PartTimer struct {
	ID   string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	Role  PartTimeRole `gorm:"type:varchar(50);not null" json:"role"`
	Phone string       `gorm:"type:varchar(20);not null" json:"phone"`
	Email string       `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`

	SalaryType SalaryType `gorm:"type:varchar(20);not null" json:"salary_type"`
	Rate       int        `gorm:"not null;default:0" json:"rate"`
	Skills     *string    `gorm:"type:text" json:"skills,omitempty"`

	PasswordHash string `gorm:"type:varchar(255)" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// PartTimeRole is the closed role set for part-timers.
type PartTimeRole string

const (
	PartTimeRoleControl    PartTimeRole = "CONTROL"
	PartTimeRoleExecution  PartTimeRole = "EXECUTION"
	PartTimeRoleOperations PartTimeRole = "OPERATIONS"
	PartTimeRoleOther      PartTimeRole = "OTHER"
)

func (r PartTimeRole) IsValid() bool {
	switch r {
	case PartTimeRoleControl, PartTimeRoleExecution, PartTimeRoleOperations, PartTimeRoleOther:
		return true
	default:
		return false
	}
}

// SalaryType determines how the rate is applied.
type SalaryType string

const (
	SalaryTypeHourly  SalaryType = "HOURLY"
	SalaryTypeSession SalaryType = "SESSION"
)

func (st SalaryType) IsValid() bool {
	return st == SalaryTypeHourly || st == SalaryTypeSession
}

// TableName sets the table name for the PartTimer model
func (PartTimer) TableName() string {
	return "part_timers"
}
