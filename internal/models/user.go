package models

import (
	"time"
)

// User roles. The role set is closed; handlers never compare raw
// strings outside these constants.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
)

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCustomer, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	Password      string        `gorm:"not null" json:"-"`
	Username      string        `gorm:"index;not null" json:"username"`
	PhoneNumber   string        `gorm:"index;not null" json:"phone_number"`
	Role          string        `gorm:"index;not null;default:'CUSTOMER'" json:"role"`
	WalletBalance float64       `gorm:"not null;default:0" json:"wallet_balance"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Orders        []Order       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Transactions  []Transaction `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// CreateUserInput carries the fields accepted on registration.
type CreateUserInput struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Username    string  `json:"username"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	Balance     float64 `json:"wallet_balance"`
}

// UpdateUserInput uses pointers so that absent fields are left
// untouched instead of being overwritten with zero values.
type UpdateUserInput struct {
	Email         *string  `json:"email"`
	Password      *string  `json:"password"`
	Username      *string  `json:"username"`
	PhoneNumber   *string  `json:"phone_number"`
	WalletBalance *float64 `json:"wallet_balance"`
}
