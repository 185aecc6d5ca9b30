// Package validation collects field-level validation rules for request
// payloads. A Validator accumulates errors per field so a response can
// report everything wrong with a request at once.
package validation

import (
	"fmt"
	"strings"
)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(IsValidEmail(email), field, "must be a valid email address")
}

// Phone validates phone number format
func (v *Validator) Phone(field, phone string) {
	v.Check(IsValidPhoneNumber(phone), field, "must be 10 to 11 digits")
}

// Password validates password strength
func (v *Validator) Password(field, password string) {
	v.Check(IsValidPassword(password), field,
		fmt.Sprintf("must be at least %d characters long", MinPasswordLength))
}

// Username validates the display name
func (v *Validator) Username(field, username string) {
	v.Check(IsValidUsername(username), field,
		fmt.Sprintf("must be at least %d characters long", MinUsernameLength))
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Positive checks that a number is greater than zero
func (v *Validator) Positive(field string, value float64) {
	v.Check(value > 0, field, "must be greater than zero")
}

// NonNegative checks that a number is not below zero
func (v *Validator) NonNegative(field string, value float64) {
	v.Check(value >= 0, field, "must not be negative")
}
