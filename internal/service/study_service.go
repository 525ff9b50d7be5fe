package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/flashcards/internal/console"
	"github.com/phrazzld/flashcards/internal/domain"
	"github.com/phrazzld/flashcards/internal/store"
)

// CardRepository defines the deck operations the study service relies on.
// *store.Deck satisfies it.
type CardRepository interface {
	Len() int
	HasTerm(term string) bool
	HasDefinition(definition string) bool
	TermFor(definition string) (string, bool)
	Add(card *domain.Card) error
	Remove(term string) error
	At(i int) domain.Card
	RecordMistake(term string) error
	ResetStats()
	Hardest() ([]string, int)
	Cards() []domain.Card
	Merge(cards []*domain.Card) error
}

// DeckFileStore persists whole decks to files.
type DeckFileStore interface {
	Save(path string, cards []domain.Card) error
	// Load returns an error satisfying store.IsNotFoundError when path does not exist.
	Load(path string) ([]*domain.Card, error)
}

// Prompts and messages shown to the user.
const (
	promptTerm       = "The card:\n> "
	promptDefinition = "The definition of the card:\n> "
	promptRemove     = "Which card?\n> "
	promptAskCount   = "How many times to ask?\n> "
	promptDeckFile   = "File name:\n> "
	promptLogFile    = "Filename:\n> "
)

// StudyService implements the study session operations.
type StudyService struct {
	deck   CardRepository
	files  DeckFileStore
	con    *console.Console
	picker Picker
	logger *slog.Logger
}

// NewStudyService creates a new StudyService.
// It returns an error if any dependency is nil.
func NewStudyService(
	deck CardRepository,
	files DeckFileStore,
	con *console.Console,
	picker Picker,
	logger *slog.Logger,
) (*StudyService, error) {
	if deck == nil {
		return nil, NewServiceError("init", "deck cannot be nil", nil)
	}
	if files == nil {
		return nil, NewServiceError("init", "deck file store cannot be nil", nil)
	}
	if con == nil {
		return nil, NewServiceError("init", "console cannot be nil", nil)
	}
	if picker == nil {
		return nil, NewServiceError("init", "picker cannot be nil", nil)
	}
	if logger == nil {
		return nil, NewServiceError("init", "logger cannot be nil", nil)
	}

	return &StudyService{
		deck:   deck,
		files:  files,
		con:    con,
		picker: picker,
		logger: logger.With(slog.String("component", "study_service")),
	}, nil
}

// Add asks for a new term and definition, re-prompting until each one is
// unused, and inserts the card.
func (s *StudyService) Add(ctx context.Context) error {
	var term string
	for {
		var err error
		if term, err = s.con.Prompt(promptTerm); err != nil {
			return NewServiceError("add", "failed to read term", err)
		}
		if !s.deck.HasTerm(term) {
			break
		}
		if err := s.con.Sayf("The term \"%s\" already exists. Try again:", term); err != nil {
			return NewServiceError("add", "failed to report duplicate term", err)
		}
	}

	var definition string
	for {
		var err error
		if definition, err = s.con.Prompt(promptDefinition); err != nil {
			return NewServiceError("add", "failed to read definition", err)
		}
		if !s.deck.HasDefinition(definition) {
			break
		}
		if err := s.con.Sayf("The definition \"%s\" already exists. Try again:", definition); err != nil {
			return NewServiceError("add", "failed to report duplicate definition", err)
		}
	}

	if err := s.deck.Add(domain.NewCard(term, definition)); err != nil {
		return NewServiceError("add", "failed to store card", err)
	}
	s.logger.DebugContext(ctx, "card added", slog.Int("deck_size", s.deck.Len()))

	if err := s.con.Sayf("The pair (\"%s\":\"%s\") has been added.", term, definition); err != nil {
		return NewServiceError("add", "failed to confirm card", err)
	}
	return nil
}

// Remove asks for a term and deletes its card, or reports that there is no
// such card.
func (s *StudyService) Remove(ctx context.Context) error {
	term, err := s.con.Prompt(promptRemove)
	if err != nil {
		return NewServiceError("remove", "failed to read term", err)
	}

	msg := "The card has been removed."
	if err := s.deck.Remove(term); err != nil {
		if !store.IsNotFoundError(err) {
			return NewServiceError("remove", "failed to remove card", err)
		}
		msg = fmt.Sprintf("Can't remove \"%s\": there is no such card.", term)
	} else {
		s.logger.DebugContext(ctx, "card removed", slog.Int("deck_size", s.deck.Len()))
	}

	if err := s.con.Say(msg); err != nil {
		return NewServiceError("remove", "failed to report result", err)
	}
	return nil
}

// Ask reads how many questions to ask and runs the quiz.
// A count that is not an integer is returned as ErrInvalidCount.
func (s *StudyService) Ask(ctx context.Context) error {
	input, err := s.con.Prompt(promptAskCount)
	if err != nil {
		return NewServiceError("ask", "failed to read question count", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return NewServiceError("ask", fmt.Sprintf("%q is not a number", input), ErrInvalidCount)
	}
	return s.Quiz(ctx, count)
}

// Quiz asks count questions. Each question picks a card uniformly at random,
// so a card may come up more than once. A wrong answer increments the asked
// card's error count. Non-positive counts ask nothing.
func (s *StudyService) Quiz(ctx context.Context, count int) error {
	if count > 0 && s.deck.Len() == 0 {
		return NewServiceError("ask", "cannot quiz", ErrEmptyDeck)
	}

	wrong := 0
	for i := 0; i < count; i++ {
		card := s.deck.At(s.picker.IntN(s.deck.Len()))

		answer, err := s.con.Prompt(fmt.Sprintf("Print the definition of \"%s\":\n> ", card.Term))
		if err != nil {
			return NewServiceError("ask", "failed to read answer", err)
		}

		var msg string
		switch {
		case card.IsCorrect(answer):
			msg = "Correct!"
		default:
			wrong++
			if err := s.deck.RecordMistake(card.Term); err != nil {
				return NewServiceError("ask", "failed to record mistake", err)
			}
			if other, ok := s.deck.TermFor(answer); ok {
				msg = fmt.Sprintf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".",
					card.Definition, other)
			} else {
				msg = fmt.Sprintf("Wrong. The right answer is \"%s\".", card.Definition)
			}
		}

		if err := s.con.Say(msg); err != nil {
			return NewServiceError("ask", "failed to report answer", err)
		}
	}

	s.logger.DebugContext(ctx, "quiz finished",
		slog.Int("questions", max(count, 0)),
		slog.Int("wrong", wrong))
	return nil
}

// Hardest reports the card or cards with the highest non-zero error count.
func (s *StudyService) Hardest(ctx context.Context) error {
	terms, count := s.deck.Hardest()

	var msg string
	switch len(terms) {
	case 0:
		msg = "There are no cards with errors."
	case 1:
		msg = fmt.Sprintf("The hardest card is %s. You have %d errors answering it.", quoteJoin(terms), count)
	default:
		msg = fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.", quoteJoin(terms), count)
	}

	if err := s.con.Say(msg); err != nil {
		return NewServiceError("hardest card", "failed to report result", err)
	}
	return nil
}

// ResetStats sets every error count back to zero.
func (s *StudyService) ResetStats(ctx context.Context) error {
	s.deck.ResetStats()
	s.logger.DebugContext(ctx, "statistics reset", slog.Int("deck_size", s.deck.Len()))

	if err := s.con.Say("Card statistics has been reset."); err != nil {
		return NewServiceError("reset stats", "failed to report result", err)
	}
	return nil
}

// Export writes the whole deck to path, prompting for a file name when path
// is empty. Write failures are returned to the caller.
func (s *StudyService) Export(ctx context.Context, path string) error {
	if path == "" {
		var err error
		if path, err = s.con.Prompt(promptDeckFile); err != nil {
			return NewServiceError("export", "failed to read file name", err)
		}
	}

	cards := s.deck.Cards()
	if err := s.files.Save(path, cards); err != nil {
		return NewServiceError("export", "failed to save deck", err)
	}
	s.logger.InfoContext(ctx, "deck exported", slog.String("path", path), slog.Int("cards", len(cards)))

	msg := fmt.Sprintf("%d cards have been saved.", len(cards))
	if len(cards) == 1 {
		msg = "One card has been saved."
	}
	if err := s.con.Say(msg); err != nil {
		return NewServiceError("export", "failed to report result", err)
	}
	return nil
}

// Import merges the deck stored at path into the session deck, prompting for
// a file name when path is empty. Imported cards overwrite cards with the same
// term. It reports false, with a nil error, when the file does not exist;
// any other failure is returned to the caller.
func (s *StudyService) Import(ctx context.Context, path string) (bool, error) {
	if path == "" {
		var err error
		if path, err = s.con.Prompt(promptDeckFile); err != nil {
			return false, NewServiceError("import", "failed to read file name", err)
		}
	}

	cards, err := s.files.Load(path)
	if err != nil {
		if !store.IsNotFoundError(err) {
			return false, NewServiceError("import", "failed to load deck", err)
		}
		s.logger.WarnContext(ctx, "deck file not found", slog.String("path", path))
		if err := s.con.Say("File not found."); err != nil {
			return false, NewServiceError("import", "failed to report result", err)
		}
		return false, nil
	}

	if err := s.con.Sayf("%d cards have been loaded.", len(cards)); err != nil {
		return false, NewServiceError("import", "failed to report result", err)
	}
	if err := s.deck.Merge(cards); err != nil {
		return false, NewServiceError("import", "failed to merge deck", err)
	}
	s.logger.DebugContext(ctx, "deck imported",
		slog.String("path", path),
		slog.Int("cards", len(cards)),
		slog.Int("deck_size", s.deck.Len()))
	return true, nil
}

// SaveLog asks for a file name and writes the session transcript to it.
// The confirmation is recorded before writing so that it is part of the file.
func (s *StudyService) SaveLog(ctx context.Context) error {
	path, err := s.con.Prompt(promptLogFile)
	if err != nil {
		return NewServiceError("log", "failed to read file name", err)
	}
	if err := s.con.Say("The log has been saved."); err != nil {
		return NewServiceError("log", "failed to report result", err)
	}

	transcript := s.con.Transcript()
	if err := transcript.Save(path); err != nil {
		return NewServiceError("log", "failed to save transcript", err)
	}
	s.logger.InfoContext(ctx, "transcript saved", slog.String("path", path), slog.Int("entries", transcript.Len()))
	return nil
}

// Farewell says goodbye.
func (s *StudyService) Farewell(ctx context.Context) error {
	if err := s.con.Say("Bye bye!"); err != nil {
		return NewServiceError("exit", "failed to say goodbye", err)
	}
	return nil
}

func quoteJoin(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + t + `"`
	}
	return strings.Join(quoted, ", ")
}
