//go:build unit

package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/user"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid email", input: "jane@example.com", want: "jane@example.com"},
		{name: "normalizes case and whitespace", input: "  Jane@Example.COM ", want: "jane@example.com"},
		{name: "missing domain", input: "jane@", wantErr: user.ErrInvalidEmail},
		{name: "empty", input: "", wantErr: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"customer", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.True(t, role.IsValid())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestIsAdmin(t *testing.T) {
	email, err := user.NewEmail("jane@example.com")
	require.NoError(t, err)

	admin := user.NewUser(email, "Jane Doe", "hash", user.RoleAdmin)
	customer := user.NewUser(email, "Jane Doe", "hash", user.RoleCustomer)

	assert.True(t, admin.IsAdmin())
	assert.False(t, customer.IsAdmin())
}
