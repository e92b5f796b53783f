package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{Role(""), false},
		{Role("root"), false},
		{Role("User"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsValid())
		})
	}
}

func TestUser_MarshalJSON_OmitsPasswordHash(t *testing.T) {
	u := User{ID: "id-1", Name: "Ann", Email: "ann@x.com", Role: RoleUser, PasswordHash: "$2a$10$secret"}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2a$10$secret")
}

func TestUser_Response(t *testing.T) {
	u := User{ID: "id-1", Name: "Ann", Email: "ann@x.com", Role: RoleAdmin, PasswordHash: "hash"}

	assert.Equal(t, UserResponse{ID: "id-1", Name: "Ann", Email: "ann@x.com", Role: RoleAdmin}, u.Response())
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
