package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveActor(t *testing.T) {
	tests := []struct {
		name      string
		caller    string
		role      string
		requested string
		want      string
		wantErr   error
	}{
		{"self by default", "u1", RoleUser, "", "u1", nil},
		{"self explicitly", "u1", RoleUser, "u1", "u1", nil},
		{"user for another", "u1", RoleUser, "u2", "", ErrPermissionDenied},
		{"admin for another", "a1", RoleAdmin, "u2", "u2", nil},
		{"no caller", "", RoleAdmin, "u2", "", ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveActor(tt.caller, tt.role, tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanActFor(t *testing.T) {
	assert.True(t, CanActFor("u1", RoleUser, "u1"))
	assert.False(t, CanActFor("u1", RoleUser, "u2"))
	assert.True(t, CanActFor("a1", RoleAdmin, "u2"))
	assert.False(t, CanActFor("", RoleAdmin, "u2"))
	assert.False(t, IsAdmin("Admin"))
}
