package forms

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "want *ValidationError, got %v", err)
	return ve.Fields
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
		want  map[string]string
	}{
		{name: "valid", creds: models.Credentials{Email: "a@b.com", Password: "secret"}},
		{name: "empty email", creds: models.Credentials{Password: "secret"},
			want: map[string]string{"email": "Email is required"}},
		{name: "blank email", creds: models.Credentials{Email: "   ", Password: "secret"},
			want: map[string]string{"email": "Email is required"}},
		{name: "bad email", creds: models.Credentials{Email: "not-an-email", Password: "secret"},
			want: map[string]string{"email": "Enter a valid email"}},
		{name: "short password", creds: models.Credentials{Email: "a@b.com", Password: "12345"},
			want: map[string]string{"password": "Password is required"}},
		{name: "everything wrong", creds: models.Credentials{},
			want: map[string]string{"email": "Email is required", "password": "Password is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.creds)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	err := ValidateSignUp(models.SignUpData{Name: "A", Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	err = ValidateSignUp(models.SignUpData{Email: "a@", Password: "123"})
	assert.Equal(t, map[string]string{
		"name":     "Name is required",
		"email":    "Enter a valid email",
		"password": "At least 6 characters",
	}, fieldErrors(t, err))
}

func TestMinLength_CountsRunes(t *testing.T) {
	rule := MinLength(6, "short")
	assert.Empty(t, rule("çãõéíú"))
	assert.Equal(t, "short", rule("çãõ"))
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"password": "p", "email": "e"}}
	assert.Equal(t, "validation error: email: e; password: p", err.Error())
}
