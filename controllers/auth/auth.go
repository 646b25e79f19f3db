package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"catering-ops/logger"
	"catering-ops/middleware"
	userModel "catering-ops/models/user"
	authService "catering-ops/services/auth"
	"catering-ops/types"
)

// AuthController handles sign-in and role resolution
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Helper function to set secure cookies based on environment
func (ac *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// SignIn authenticates any account kind (admin, operator, vendor,
// part-timer) by email and password and returns a session token plus the
// resolved principal.
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	var req types.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if validationErr := req.Validate(); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: validationErr,
		})
	}

	principal, err := authService.SignIn(ac.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		logger.Error("Sign-in failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	token, err := authService.IssueToken(principal)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	ac.setSecureCookie(c, "access", token, 12*3600)
	logger.Success(fmt.Sprintf("Signed in %s (%s)", principal.Name, principal.Role))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed in successfully",
		Token:   token,
		Data:    principal,
	})
}

// ResolveRole reports which kind of principal an email belongs to: the
// vendor table is probed first, then part-timers; absence from both implies
// an internal (admin-side) account.
func (ac *AuthController) ResolveRole(c *fiber.Ctx) error {
	var req types.ResolveRoleRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is required",
		})
	}

	res, err := authService.ResolveRoleByEmail(ac.DB, req.Email)
	if err != nil {
		logger.Error("Failed to resolve role", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role resolved",
		Data:    res,
	})
}

// Profile returns the authenticated principal from the session claims.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	name := middleware.ClaimString(c, "name")
	role := middleware.ClaimString(c, "role")
	sub := middleware.ClaimString(c, "sub")
	if sub == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid session",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile",
		Data: authService.Principal{
			ID:     sub,
			Name:   name,
			Role:   userModel.UserRole(role),
			Avatar: userModel.AvatarInitials(name),
		},
	})
}
