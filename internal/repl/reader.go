// Package repl runs the interactive prompt: it reads one line at a time, dispatches it
// and prints the result until the user quits or input ends.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned by a LineReader when the user pressed Ctrl-C at the prompt.
var ErrInterrupted = errors.New("interrupted")

// LineReader supplies input lines without their trailing newline.
type LineReader interface {
	// ReadLine blocks for the next line. It returns io.EOF when input ends and
	// ErrInterrupted when the current line was abandoned.
	ReadLine() (string, error)
	Close() error
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalReader reads through readline, with history and keyword completion.
type terminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a readline-backed reader. An empty historyFile disables
// history; its directory is created when missing.
//
// Precondition: stdin and stdout must be terminals.
// Postcondition: Returns a reader or a non-nil error.
func NewTerminalReader(prompt, historyFile string, completer readline.AutoCompleter) (LineReader, error) {
	if historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(historyFile), 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("starting line editor: %w", err)
	}
	return &terminalReader{rl: rl}, nil
}

func (r *terminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

// pipeReader reads newline-separated input that does not come from a terminal.
// Lines have no length limit.
type pipeReader struct {
	prompt string
	out    io.Writer
	br     *bufio.Reader
}

// NewPipeReader reads lines from in, writing prompt to out before each one.
func NewPipeReader(in io.Reader, out io.Writer, prompt string) LineReader {
	return &pipeReader{prompt: prompt, out: out, br: bufio.NewReader(in)}
}

func (r *pipeReader) ReadLine() (string, error) {
	if r.prompt != "" {
		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return "", err
		}
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (r *pipeReader) Close() error {
	return nil
}
