package jsonfile

import (
	"fmt"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/store"
)

var (
	// ErrFileNotFound is returned by Load when the deck file does not exist.
	ErrFileNotFound = fmt.Errorf("%w: deck file", store.ErrNotFound)

	// ErrMalformedDeck is returned when a deck file is not a term -> [definition, count] object.
	ErrMalformedDeck = fmt.Errorf("%w: deck file", domain.ErrInvalidFormat)
)
