package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIsAdminCaseInsensitive(t *testing.T) {
	tests := []struct {
		role  string
		admin bool
	}{
		{"admin", true},
		{"Admin", true},
		{"ADMIN", true},
		{"user", false},
		{"", false},
	}

	for _, tt := range tests {
		u := &User{Role: tt.role}
		assert.Equal(t, tt.admin, u.IsAdmin(), "role %q", tt.role)
	}
}

func TestUserIsAdminNilSafe(t *testing.T) {
	var u *User
	assert.False(t, u.IsAdmin())
	assert.Equal(t, "/", u.HomePath())
}

func TestUserHomePath(t *testing.T) {
	assert.Equal(t, "/admin", (&User{Role: "Admin"}).HomePath())
	assert.Equal(t, "/", (&User{Role: "user"}).HomePath())
}

func TestUserUnmarshalRoleDrift(t *testing.T) {
	var fromRole User
	err := json.Unmarshal([]byte(`{"id":"u1","role":"admin"}`), &fromRole)
	require.NoError(t, err)
	assert.Equal(t, "admin", fromRole.Role)

	var fromUserRole User
	err = json.Unmarshal([]byte(`{"id":"u1","userRole":"admin"}`), &fromUserRole)
	require.NoError(t, err)
	assert.Equal(t, "admin", fromUserRole.Role)
}

func TestUserUnmarshalPhoneDrift(t *testing.T) {
	var camel User
	err := json.Unmarshal([]byte(`{"phoneNumber":"08123456789"}`), &camel)
	require.NoError(t, err)
	assert.Equal(t, "08123456789", camel.PhoneNumber)

	var snake User
	err = json.Unmarshal([]byte(`{"phone_number":"08123456789"}`), &snake)
	require.NoError(t, err)
	assert.Equal(t, "08123456789", snake.PhoneNumber)
}
