package jsonfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/store"
)

// Encode writes cards to w as a single JSON object, one member per card.
func Encode(w io.Writer, cards []domain.Card) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, card := range cards {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := marshalTo(&buf, card.Term); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := marshalTo(&buf, []any{card.Definition, card.ErrorCount}); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	_, err := w.Write(buf.Bytes())
	return err
}

// marshalTo appends the JSON encoding of v to buf without HTML escaping.
func marshalTo(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Decode reads a deck object from r. Cards are returned in the order their
// members first appear. A repeated term yields one card holding the last value.
func Decode(r io.Reader) ([]*domain.Card, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrMalformedDeck, tok)
	}

	var cards []*domain.Card
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
		}
		term, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected term, got %v", ErrMalformedDeck, tok)
		}

		var value []json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: term %q: %v", ErrMalformedDeck, term, err)
		}
		card, err := decodeValue(term, value)
		if err != nil {
			return nil, err
		}
		if i, ok := seen[term]; ok {
			cards[i] = card
			continue
		}
		seen[term] = len(cards)
		cards = append(cards, card)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after deck object", ErrMalformedDeck)
	}
	return cards, nil
}

func decodeValue(term string, value []json.RawMessage) (*domain.Card, error) {
	if len(value) != 2 {
		return nil, fmt.Errorf("%w: term %q: expected [definition, count], got %d elements",
			ErrMalformedDeck, term, len(value))
	}

	card := &domain.Card{Term: term}
	if err := json.Unmarshal(value[0], &card.Definition); err != nil {
		return nil, fmt.Errorf("%w: term %q: definition: %v", ErrMalformedDeck, term, err)
	}
	if err := json.Unmarshal(value[1], &card.ErrorCount); err != nil {
		return nil, fmt.Errorf("%w: term %q: error count: %v", ErrMalformedDeck, term, err)
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: term %q: %w", ErrMalformedDeck, term, err)
	}
	return card, nil
}

// Save writes cards to path, replacing any existing file.
func Save(path string, cards []domain.Card) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return store.NewStoreError("deck", "save", "cannot create file", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = store.NewStoreError("deck", "save", "cannot close file", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, cards); err != nil {
		return store.NewStoreError("deck", "save", "cannot encode deck", err)
	}
	if err := w.Flush(); err != nil {
		return store.NewStoreError("deck", "save", "cannot write file", err)
	}
	return nil
}

// Load reads the deck stored at path.
// Returns an error wrapping ErrFileNotFound if path does not exist and
// ErrMalformedDeck if the content is not a valid deck object.
func Load(path string) ([]*domain.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.NewStoreError("deck", "load", path, ErrFileNotFound)
		}
		return nil, store.NewStoreError("deck", "load", "cannot open file", err)
	}
	defer f.Close()

	cards, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, store.NewStoreError("deck", "load", path, err)
	}
	return cards, nil
}

// FileStore exposes Save and Load as methods so the deck file format can be
// injected where a persistence interface is expected.
type FileStore struct{}

// Save implements persistence by delegating to the package-level Save.
func (FileStore) Save(path string, cards []domain.Card) error {
	return Save(path, cards)
}

// Load implements persistence by delegating to the package-level Load.
func (FileStore) Load(path string) ([]*domain.Card, error) {
	return Load(path)
}
