package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"catering-ops/constants"
	"catering-ops/middleware"
	userModel "catering-ops/models/user"
)

func TestPermissionsForRole(t *testing.T) {
	assert.Equal(t, []string{constants.PermAdminFull, constants.PermOperatorFull},
		PermissionsForRole(userModel.RoleAdmin))
	assert.Equal(t, []string{constants.PermOperatorFull},
		PermissionsForRole(userModel.RoleOperator))
	assert.Equal(t, []string{constants.PermVendorSelf},
		PermissionsForRole(userModel.RoleVendor))
	assert.Equal(t, []string{constants.PermPartTimerSelf},
		PermissionsForRole(userModel.RolePartTimer))
	assert.Nil(t, PermissionsForRole(userModel.UserRole("UNKNOWN")))
}

func TestIssueTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(Principal{
		ID:   "u-1",
		Name: "林經理",
		Role: userModel.RoleOperator,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := middleware.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims["sub"])
	assert.Equal(t, "林經理", claims["name"])
	assert.Equal(t, string(userModel.RoleOperator), claims["role"])

	perms, ok := claims["permissions"].([]interface{})
	require.True(t, ok)
	require.Len(t, perms, 1)
	assert.Equal(t, constants.PermOperatorFull, perms[0])
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := IssueToken(Principal{ID: "u-1"})
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(Principal{ID: "u-1", Role: userModel.RoleAdmin})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = middleware.VerifyJWT(token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret!")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
