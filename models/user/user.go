package user

import (
	"strings"
	"time"
)

// User is an internal session principal (admin or operator account).
// External collaborators authenticate against the vendor and part-timer
// tables instead.
type User struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string   `gorm:"type:varchar(255);not null;unique" json:"email"`
	DisplayName string   `gorm:"type:varchar(255);not null" json:"display_name"`
	Role        UserRole `gorm:"type:varchar(20);not null;default:OPERATOR" json:"role"`
	Title       string   `gorm:"type:varchar(100)" json:"title"`

	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// UserRole gates which views and actions a principal may use.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"     // full access, incl. data export and settings
	RoleOperator  UserRole = "OPERATOR"  // manages orders and tasks
	RoleVendor    UserRole = "VENDOR"    // sees own tasks and profile only
	RolePartTimer UserRole = "PART_TIMER"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleVendor, RolePartTimer:
		return true
	default:
		return false
	}
}

// IsInternal returns true for operations-team roles.
func (r UserRole) IsInternal() bool {
	return r == RoleAdmin || r == RoleOperator
}

// AvatarInitials derives the two-letter avatar badge from a display name.
func AvatarInitials(name string) string {
	runes := []rune(name)
	if len(runes) >= 2 {
		return strings.ToUpper(string(runes[:2]))
	}
	if len(runes) == 1 {
		return strings.ToUpper(string(runes))
	}
	return "??"
}
