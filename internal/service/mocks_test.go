package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/flashcards/internal/domain"
)

// MockDeckFileStore mocks the DeckFileStore interface
type MockDeckFileStore struct {
	mock.Mock
}

func (m *MockDeckFileStore) Save(path string, cards []domain.Card) error {
	args := m.Called(path, cards)
	return args.Error(0)
}

func (m *MockDeckFileStore) Load(path string) ([]*domain.Card, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

// sequencePicker returns the given indexes in order, repeating the last one.
type sequencePicker struct {
	picks []int
	calls int
}

func (p *sequencePicker) IntN(n int) int {
	i := p.calls
	if i >= len(p.picks) {
		i = len(p.picks) - 1
	}
	p.calls++
	return p.picks[i] % n
}
