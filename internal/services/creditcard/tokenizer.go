// Package creditcard tokenizes card details used to fund wallet
// deposits. Card numbers never reach the database; only the issued
// token is kept as the deposit reference.
package creditcard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"minimart/internal/config"
	"minimart/internal/models"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrInvalidCard = errors.New("invalid card number")
	ErrCardExpired = errors.New("card has expired")
	ErrBadExpiry   = errors.New("invalid expiry date")
)

// TokenizedCard is the result of a successful tokenization.
type TokenizedCard struct {
	Token    string `json:"token"`
	CardType string `json:"card_type"`
	LastFour string `json:"last_four"`
}

// Tokenizer exchanges raw card details for an opaque token.
type Tokenizer interface {
	TokenizeCard(card models.CardDetails) (*TokenizedCard, error)
}

type stripeTokenizer struct {
	testCards map[string]struct {
		token    string
		cardType string
	}
}

// NewTokenizer creates a tokenizer backed by Stripe. Well-known test
// card numbers short-circuit to their fixed test tokens so the flow
// works without network access in development.
func NewTokenizer() Tokenizer {
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")
	return &stripeTokenizer{
		testCards: map[string]struct {
			token    string
			cardType string
		}{
			"4242424242424242": {"tok_visa", "Visa"},
			"4000056655665556": {"tok_visa_debit", "Visa Debit"},
			"5555555555554444": {"tok_mastercard", "Mastercard"},
			"378282246310005":  {"tok_amex", "American Express"},
			"6011111111111117": {"tok_discover", "Discover"},
		},
	}
}

func (t *stripeTokenizer) TokenizeCard(card models.CardDetails) (*TokenizedCard, error) {
	// Already a token, nothing to exchange.
	if strings.HasPrefix(card.CardNumber, "tok_") {
		return &TokenizedCard{Token: card.CardNumber, CardType: "Unknown", LastFour: ""}, nil
	}

	if err := validateCard(card); err != nil {
		return nil, err
	}

	if testCard, ok := t.testCards[card.CardNumber]; ok {
		return &TokenizedCard{
			Token:    testCard.token,
			CardType: testCard.cardType,
			LastFour: card.CardNumber[len(card.CardNumber)-4:],
		}, nil
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(card.CardNumber),
			ExpMonth: stripe.String(card.ExpiryMonth),
			ExpYear:  stripe.String(card.ExpiryYear),
			CVC:      stripe.String(card.CVV),
		},
	}
	tok, err := token.New(params)
	if err != nil {
		return nil, fmt.Errorf("card tokenization failed: %w", err)
	}

	return &TokenizedCard{
		Token:    tok.ID,
		CardType: string(tok.Card.Brand),
		LastFour: tok.Card.Last4,
	}, nil
}

func validateCard(card models.CardDetails) error {
	if !luhnValid(card.CardNumber) {
		return ErrInvalidCard
	}

	month, err := strconv.Atoi(card.ExpiryMonth)
	if err != nil || month < 1 || month > 12 {
		return ErrBadExpiry
	}
	year, err := strconv.Atoi(card.ExpiryYear)
	if err != nil {
		return ErrBadExpiry
	}
	if year < 100 {
		year += 2000
	}

	now := time.Now()
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return ErrCardExpired
	}
	return nil
}

// luhnValid checks a card number with the Luhn algorithm.
func luhnValid(number string) bool {
	if len(number) < 12 {
		return false
	}

	var sum int
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
