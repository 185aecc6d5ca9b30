package validation

import "regexp"

const (
	MinPasswordLength = 6
	MinUsernameLength = 6
)

var (
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,11}$`)
)

// IsValidEmail reports whether email looks like an address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword reports whether password meets the minimum length.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// IsValidUsername reports whether username meets the minimum length.
func IsValidUsername(username string) bool {
	return len(username) >= MinUsernameLength
}

// IsValidPhoneNumber reports whether phone is 10 or 11 digits.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}
