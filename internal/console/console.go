package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned by Prompt when the input stream ends before a
// full line could be read.
var ErrInputClosed = errors.New("input closed")

// Console reads responses line by line and prints messages, recording both in
// a Transcript.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log *Transcript
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		log: &Transcript{},
	}
}

// Transcript returns the session log kept by the console.
func (c *Console) Transcript() *Transcript {
	return c.log
}

// Say prints msg followed by a newline and records it.
func (c *Console) Say(msg string) error {
	c.log.Append(msg)
	if _, err := fmt.Fprintln(c.out, msg); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Sayf formats a message and prints it with Say.
func (c *Console) Sayf(format string, args ...any) error {
	return c.Say(fmt.Sprintf(format, args...))
}

// Prompt prints text without a trailing newline, reads one line of input and
// records text+response. The line terminator is stripped; nothing else is
// trimmed. A final line without a terminator is accepted; reading at end of
// input returns ErrInputClosed.
func (c *Console) Prompt(text string) (string, error) {
	if _, err := io.WriteString(c.out, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	c.log.Append(text + line)
	return line, nil
}
