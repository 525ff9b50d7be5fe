package repl

import (
	"context"
	"fmt"
	"log/slog"
)

// ActionPrompt is shown before every command.
const ActionPrompt = "\nInput the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):\n> "

// Verbs recognised by the dispatcher. Matching is exact and case-sensitive.
const (
	VerbAdd        = "add"
	VerbRemove     = "remove"
	VerbImport     = "import"
	VerbExport     = "export"
	VerbAsk        = "ask"
	VerbExit       = "exit"
	VerbLog        = "log"
	VerbHardest    = "hardest card"
	VerbResetStats = "reset stats"
)

// Session is the set of study operations the dispatcher drives.
// *service.StudyService satisfies it.
type Session interface {
	Add(ctx context.Context) error
	Remove(ctx context.Context) error
	Ask(ctx context.Context) error
	Hardest(ctx context.Context) error
	ResetStats(ctx context.Context) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) (bool, error)
	SaveLog(ctx context.Context) error
	Farewell(ctx context.Context) error
}

// Prompter reads one response to a prompt.
type Prompter interface {
	Prompt(text string) (string, error)
}

// Dispatcher reads actions and invokes the matching session operation.
type Dispatcher struct {
	session  Session
	prompter Prompter
	exportTo string
	logger   *slog.Logger
	handlers map[string]func(context.Context) error
}

// NewDispatcher creates a dispatcher. When exportTo is not empty the deck is
// exported there after the farewell message on exit.
func NewDispatcher(session Session, prompter Prompter, exportTo string, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		session:  session,
		prompter: prompter,
		exportTo: exportTo,
		logger:   logger,
	}
	d.handlers = map[string]func(context.Context) error{
		VerbAdd:    session.Add,
		VerbRemove: session.Remove,
		VerbImport: func(ctx context.Context) error {
			_, err := session.Import(ctx, "")
			return err
		},
		VerbExport: func(ctx context.Context) error {
			return session.Export(ctx, "")
		},
		VerbAsk:        session.Ask,
		VerbLog:        session.SaveLog,
		VerbHardest:    session.Hardest,
		VerbResetStats: session.ResetStats,
	}
	return d
}

// Run loops until the user types exit, an operation fails, or ctx is done.
// Unrecognised actions are ignored and the prompt is shown again. It returns
// nil only after a normal exit.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := d.prompter.Prompt(ActionPrompt)
		if err != nil {
			return fmt.Errorf("failed to read action: %w", err)
		}

		if action == VerbExit {
			return d.exit(ctx)
		}

		handler, ok := d.handlers[action]
		if !ok {
			d.logger.DebugContext(ctx, "ignoring unrecognised action", slog.String("action", action))
			continue
		}

		d.logger.DebugContext(ctx, "dispatching action", slog.String("action", action))
		if err := handler(ctx); err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
	}
}

func (d *Dispatcher) exit(ctx context.Context) error {
	if err := d.session.Farewell(ctx); err != nil {
		return err
	}
	if d.exportTo == "" {
		return nil
	}
	if err := d.session.Export(ctx, d.exportTo); err != nil {
		return fmt.Errorf("%s: %w", VerbExit, err)
	}
	return nil
}
