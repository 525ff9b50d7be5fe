package console

import (
	"bufio"
	"fmt"
	"os"
)

// Transcript is the append-only session log. Each entry is either a line
// printed to the user or a prompt concatenated with the user's response.
type Transcript struct {
	entries []string
}

// Append adds an entry to the end of the transcript.
func (t *Transcript) Append(entry string) {
	t.entries = append(t.entries, entry)
}

// Entries returns a copy of the transcript entries in chronological order.
func (t *Transcript) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Save writes every entry followed by a newline to path, replacing any
// existing file.
func (t *Transcript) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, entry := range t.entries {
		if _, err := w.WriteString(entry + "\n"); err != nil {
			return fmt.Errorf("failed to write log file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}
