package store

import (
	"fmt"

	"github.com/phrazzld/flashcards/internal/domain"
)

// Deck is the in-memory card store owned by a single study session.
//
// Terms are unique keys and definitions are unique across all cards when cards
// are added through Add. Merge bypasses the definition check so that imported
// decks can overwrite existing cards verbatim. Cards are kept in insertion
// order; overwriting a term keeps its original position.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards map[string]*domain.Card
	order []string
}

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{
		cards: make(map[string]*domain.Card),
	}
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.order)
}

// HasTerm reports whether a card with the given term exists.
func (d *Deck) HasTerm(term string) bool {
	_, ok := d.cards[term]
	return ok
}

// HasDefinition reports whether any card uses the given definition.
func (d *Deck) HasDefinition(definition string) bool {
	_, ok := d.TermFor(definition)
	return ok
}

// TermFor returns the term of the first card, in deck order, whose definition
// equals definition.
func (d *Deck) TermFor(definition string) (string, bool) {
	for _, term := range d.order {
		if d.cards[term].Definition == definition {
			return term, true
		}
	}
	return "", false
}

// Add inserts a new card.
// Returns ErrTermExists or ErrDefinitionExists if the card would break
// uniqueness, and ErrInvalidEntity if the card fails domain validation.
// The deck is left untouched on error.
func (d *Deck) Add(card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	if d.HasTerm(card.Term) {
		return ErrTermExists
	}
	if d.HasDefinition(card.Definition) {
		return ErrDefinitionExists
	}
	d.put(card)
	return nil
}

func (d *Deck) put(card *domain.Card) {
	c := *card
	if _, ok := d.cards[c.Term]; !ok {
		d.order = append(d.order, c.Term)
	}
	d.cards[c.Term] = &c
}

// Merge puts every card into the deck, later cards overwriting earlier ones
// with the same term. Cards are validated before any of them is stored.
func (d *Deck) Merge(cards []*domain.Card) error {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: card %q: %w", ErrInvalidEntity, card.Term, err)
		}
	}
	for _, card := range cards {
		d.put(card)
	}
	return nil
}

// Get returns a copy of the card stored under term.
// Returns ErrCardNotFound if there is no such card.
func (d *Deck) Get(term string) (domain.Card, error) {
	card, ok := d.cards[term]
	if !ok {
		return domain.Card{}, ErrCardNotFound
	}
	return *card, nil
}

// At returns a copy of the i-th card in deck order. It panics if i is out of range.
func (d *Deck) At(i int) domain.Card {
	return *d.cards[d.order[i]]
}

// Remove deletes the card stored under term.
// Returns ErrCardNotFound if there is no such card.
func (d *Deck) Remove(term string) error {
	if _, ok := d.cards[term]; !ok {
		return ErrCardNotFound
	}
	delete(d.cards, term)
	for i, t := range d.order {
		if t == term {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// RecordMistake increments the error count of the card stored under term.
// Returns ErrCardNotFound if there is no such card.
func (d *Deck) RecordMistake(term string) error {
	card, ok := d.cards[term]
	if !ok {
		return ErrCardNotFound
	}
	card.RecordMistake()
	return nil
}

// ResetStats sets the error count of every card to zero.
func (d *Deck) ResetStats() {
	for _, card := range d.cards {
		card.ResetStats()
	}
}

// Hardest returns the terms of every card tied at the highest error count,
// in deck order, together with that count. It returns no terms and a zero
// count when no card has an error count above zero.
func (d *Deck) Hardest() ([]string, int) {
	var (
		terms   []string
		highest int
	)
	for _, term := range d.order {
		count := d.cards[term].ErrorCount
		switch {
		case count > highest:
			highest = count
			terms = []string{term}
		case count == highest && highest > 0:
			terms = append(terms, term)
		}
	}
	return terms, highest
}

// Cards returns copies of all cards in deck order.
func (d *Deck) Cards() []domain.Card {
	cards := make([]domain.Card, 0, len(d.order))
	for _, term := range d.order {
		cards = append(cards, *d.cards[term])
	}
	return cards
}
