package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_ValidateLogin(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{name: "valid login", login: "user_1", wantErr: false},
		{name: "with dot and dash", login: "user.name-1", wantErr: false},
		{name: "too short", login: "ab", wantErr: true},
		{name: "too long", login: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: true},
		{name: "illegal characters", login: "user name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(tt.login)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidatePassword(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidatePassword("longenough"))
	assert.Error(t, v.ValidatePassword("short"))
}

func TestCredentialsValidator_ValidateRegister(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidateRegister("user_1", "longenough"))
	assert.Error(t, v.ValidateRegister("ab", "longenough"))
	assert.Error(t, v.ValidateRegister("user_1", "short"))
}
