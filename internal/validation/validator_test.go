package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"user@sub.example.com", true},
		{"userexample.com", false},
		{"user@examplecom", false},
		{"", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("0123456789"))
	assert.True(t, IsValidPhoneNumber("01234567890"))
	assert.False(t, IsValidPhoneNumber("012345678"))    // 9 digits
	assert.False(t, IsValidPhoneNumber("012345678901")) // 12 digits
	assert.False(t, IsValidPhoneNumber("01234abcde"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestLengthRules(t *testing.T) {
	assert.True(t, IsValidPassword("secret"))
	assert.False(t, IsValidPassword("five5"[:5]))
	assert.True(t, IsValidUsername("grocer1"))
	assert.False(t, IsValidUsername("short"))
}

func TestValidatorCollectsFieldErrors(t *testing.T) {
	v := New()
	v.Email("email", "not-an-email")
	v.Password("password", "abc")
	v.Username("username", "ok")
	v.Phone("phone_number", "123")
	v.Positive("amount", -5)

	assert.False(t, v.Valid())
	assert.Len(t, v.Errors, 5)
	assert.Contains(t, v.Errors, "email")
	assert.Contains(t, v.Errors, "amount")

	clean := New()
	clean.Email("email", "user@example.com")
	assert.True(t, clean.Valid())
}
