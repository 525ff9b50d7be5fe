package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Card-specific validation errors
var (
	// ErrNegativeErrorCount is returned when a card carries an error count below zero.
	ErrNegativeErrorCount = errors.New("card error count cannot be negative")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Card is a single flashcard: a term, the definition expected as its answer
// and the number of times the card has been answered incorrectly.
//
// Empty terms and definitions are legal; the store only enforces uniqueness.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	ErrorCount int    `json:"error_count" validate:"gte=0"`
}

// NewCard creates a card with a zero error count.
func NewCard(term, definition string) *Card {
	return &Card{
		Term:       term,
		Definition: definition,
	}
}

// Validate checks if the Card has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (c *Card) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "ErrorCount" {
					return fmt.Errorf("%w: %w", ErrValidation, ErrNegativeErrorCount)
				}
			}
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// RecordMistake increments the card's error count by one.
func (c *Card) RecordMistake() {
	c.ErrorCount++
}

// ResetStats sets the card's error count back to zero.
func (c *Card) ResetStats() {
	c.ErrorCount = 0
}

// IsCorrect reports whether answer matches the definition exactly.
// The comparison is case-sensitive and does not trim whitespace.
func (c *Card) IsCorrect(answer string) bool {
	return answer == c.Definition
}
