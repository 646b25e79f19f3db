package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"catering-ops/constants"
	parttimerModel "catering-ops/models/parttimer"
	userModel "catering-ops/models/user"
	vendorModel "catering-ops/models/vendor"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Principal is the resolved session identity.
type Principal struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Role   userModel.UserRole `json:"role"`
	Title  string             `json:"title"`
	Avatar string             `json:"avatar"`
}

// Resolution is the outcome of probing the collaborator tables by email.
type Resolution struct {
	Kind      userModel.UserRole        `json:"kind"`
	Vendor    *vendorModel.Vendor       `json:"vendor,omitempty"`
	PartTimer *parttimerModel.PartTimer `json:"part_timer,omitempty"`
}

// ResolveRoleByEmail checks the vendor table first, then the part-timer
// table. A vendor wins on an email collision. Absence from both implies an
// internal principal (ADMIN side); the users table decides admin vs
// operator.
func ResolveRoleByEmail(db *gorm.DB, email string) (Resolution, error) {
	var v vendorModel.Vendor
	err := db.Where("email = ?", email).First(&v).Error
	if err == nil {
		return Resolution{Kind: userModel.RoleVendor, Vendor: &v}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Resolution{}, err
	}

	var pt parttimerModel.PartTimer
	err = db.Where("email = ?", email).First(&pt).Error
	if err == nil {
		return Resolution{Kind: userModel.RolePartTimer, PartTimer: &pt}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Resolution{}, err
	}

	return Resolution{Kind: userModel.RoleAdmin}, nil
}

// SignIn verifies the password against the matching account and returns the
// resolved principal. Collaborator accounts live on their roster rows;
// internal accounts live in the users table.
func SignIn(db *gorm.DB, email, password string) (Principal, error) {
	res, err := ResolveRoleByEmail(db, email)
	if err != nil {
		return Principal{}, err
	}

	switch res.Kind {
	case userModel.RoleVendor:
		if bcrypt.CompareHashAndPassword([]byte(res.Vendor.PasswordHash), []byte(password)) != nil {
			return Principal{}, ErrInvalidCredentials
		}
		title := res.Vendor.Role
		if title == "" {
			title = "合作廠商"
		}
		return Principal{
			ID:     res.Vendor.ID,
			Name:   res.Vendor.Name,
			Role:   userModel.RoleVendor,
			Title:  title,
			Avatar: userModel.AvatarInitials(res.Vendor.Name),
		}, nil

	case userModel.RolePartTimer:
		if bcrypt.CompareHashAndPassword([]byte(res.PartTimer.PasswordHash), []byte(password)) != nil {
			return Principal{}, ErrInvalidCredentials
		}
		return Principal{
			ID:     res.PartTimer.ID,
			Name:   res.PartTimer.Name,
			Role:   userModel.RolePartTimer,
			Title:  "兼職人員",
			Avatar: userModel.AvatarInitials(res.PartTimer.Name),
		}, nil

	default:
		var u userModel.User
		if err := db.Where("email = ?", email).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Principal{}, ErrInvalidCredentials
			}
			return Principal{}, err
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return Principal{}, ErrInvalidCredentials
		}
		title := u.Title
		if title == "" {
			title = "系統管理員"
		}
		return Principal{
			ID:     fmt.Sprintf("u-%d", u.ID),
			Name:   u.DisplayName,
			Role:   u.Role,
			Title:  title,
			Avatar: userModel.AvatarInitials(u.DisplayName),
		}, nil
	}
}

// IssueToken creates a signed session token carrying the principal and its
// role permissions.
func IssueToken(p Principal) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"sub":         p.ID,
		"name":        p.Name,
		"role":        string(p.Role),
		"permissions": PermissionsForRole(p.Role),
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// PermissionsForRole maps a role to its permission claims.
func PermissionsForRole(role userModel.UserRole) []string {
	switch role {
	case userModel.RoleAdmin:
		return []string{constants.PermAdminFull, constants.PermOperatorFull}
	case userModel.RoleOperator:
		return []string{constants.PermOperatorFull}
	case userModel.RoleVendor:
		return []string{constants.PermVendorSelf}
	case userModel.RolePartTimer:
		return []string{constants.PermPartTimerSelf}
	default:
		return nil
	}
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
