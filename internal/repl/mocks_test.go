package repl

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/flashcards/internal/console"
)

// MockSession mocks the Session interface
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Add(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Remove(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Ask(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Hardest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) ResetStats(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Export(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockSession) Import(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockSession) SaveLog(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Farewell(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// scriptedPrompter answers prompts from a fixed list and records the prompts.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(text string) (string, error) {
	p.prompts = append(p.prompts, text)
	if len(p.answers) == 0 {
		return "", console.ErrInputClosed
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}
