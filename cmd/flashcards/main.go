// Package main implements the entry point for the flashcards study tool,
// an interactive console session for creating term/definition cards,
// quizzing yourself and keeping decks in JSON files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/flashcards/internal/config"
	"github.com/phrazzld/flashcards/internal/platform/logger"
)

// newRootCmd creates the flashcards command. It runs a single study session.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Study term/definition flashcards in the console",
		Long: `flashcards runs an interactive study session.

At the prompt type one of the actions:
  add, remove, import, export, ask, exit, log, hardest card, reset stats

Decks are stored as JSON objects mapping each term to [definition, errors].
Use --import_from to load a deck before the first prompt and --export_to to
save the deck automatically on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			l, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			l.Debug("configuration loaded",
				slog.String("import_from", cfg.Session.ImportFrom),
				slog.String("export_to", cfg.Session.ExportTo),
				slog.String("log_level", cfg.Log.Level),
				slog.Bool("seeded", cfg.Quiz.Seed != 0))

			ctx := logger.WithLogger(cmd.Context(), l)
			if err := runSession(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				l.Error("session ended with an error", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
