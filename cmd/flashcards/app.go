package main

import (
	"context"
	"fmt"
	"io"

	"github.com/phrazzld/flashcards/internal/config"
	"github.com/phrazzld/flashcards/internal/console"
	"github.com/phrazzld/flashcards/internal/platform/jsonfile"
	"github.com/phrazzld/flashcards/internal/platform/logger"
	"github.com/phrazzld/flashcards/internal/repl"
	"github.com/phrazzld/flashcards/internal/service"
	"github.com/phrazzld/flashcards/internal/store"
)

// runSession wires a fresh deck, console and study service together, performs
// the startup import if one is configured and runs the command loop until exit.
func runSession(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	l := logger.FromContext(ctx)
	con := console.New(in, out)

	svc, err := service.NewStudyService(
		store.NewDeck(),
		jsonfile.FileStore{},
		con,
		service.NewRandomPicker(cfg.Quiz.Seed),
		l,
	)
	if err != nil {
		return fmt.Errorf("failed to create study service: %w", err)
	}

	if cfg.Session.ImportFrom != "" {
		if _, err := svc.Import(ctx, cfg.Session.ImportFrom); err != nil {
			return fmt.Errorf("startup import: %w", err)
		}
	}

	return repl.NewDispatcher(svc, con, cfg.Session.ExportTo, l).Run(ctx)
}
