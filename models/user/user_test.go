package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarInitials(t *testing.T) {
	assert.Equal(t, "AL", AvatarInitials("alice"))
	assert.Equal(t, "林經", AvatarInitials("林經理"))
	assert.Equal(t, "A", AvatarInitials("a"))
	assert.Equal(t, "??", AvatarInitials(""))
}

func TestUserRoleIsInternal(t *testing.T) {
	assert.True(t, RoleAdmin.IsInternal())
	assert.True(t, RoleOperator.IsInternal())
	assert.False(t, RoleVendor.IsInternal())
	assert.False(t, RolePartTimer.IsInternal())
}

func TestUserRoleIsValid(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleOperator, RoleVendor, RolePartTimer} {
		assert.True(t, r.IsValid(), r.String())
	}
	assert.False(t, UserRole("GUEST").IsValid())
}
