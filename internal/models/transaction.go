package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeDeposit  = "DEPOSIT"
	TransactionTypeWithdraw = "WITHDRAW"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// Transaction is one entry of a user's wallet ledger. OldAmount is the
// balance before the entry was applied, NewAmount the amount moved and
// TotalAmount the resulting balance.
type Transaction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	OldAmount   float64   `gorm:"not null" json:"old_amount"`
	NewAmount   float64   `gorm:"not null" json:"new_amount"`
	TotalAmount float64   `json:"total_amount"`
	Type        string    `gorm:"column:transaction_type;not null" json:"transaction_type"`
	Reference   string    `gorm:"index" json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CardDetails is an optional card source for a deposit. The number is
// tokenized before the ledger is touched and never stored.
type CardDetails struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// CreateTransactionInput is the request body for creating a ledger entry.
type CreateTransactionInput struct {
	UserID uint         `json:"user_id"`
	Amount float64      `json:"new_amount"`
	Type   string       `json:"transaction_type"`
	Card   *CardDetails `json:"card,omitempty"`
}

// UpdateTransactionInput carries optional replacement values for an
// administrative correction of an existing ledger entry.
type UpdateTransactionInput struct {
	UserID *uint    `json:"user_id"`
	Amount *float64 `json:"new_amount"`
	Type   *string  `json:"transaction_type"`
}
