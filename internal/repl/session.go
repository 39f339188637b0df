package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/almanac/internal/command"
	"github.com/cory-johannsen/almanac/internal/render"
)

// InterruptHint is printed when the user presses Ctrl-C at the prompt.
const InterruptHint = `Type "quit" to exit.`

// Session is one run of the prompt loop. Commands execute strictly one after another.
type Session struct {
	id         string
	reader     LineReader
	dispatcher *command.Dispatcher
	printer    *render.Printer
	logger     *zap.Logger
	stopped    atomic.Bool
}

// NewSession creates a Session with a fresh id attached to every log line.
//
// Precondition: all arguments must be non-nil.
func NewSession(reader LineReader, dispatcher *command.Dispatcher, printer *render.Printer, logger *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:         id,
		reader:     reader,
		dispatcher: dispatcher,
		printer:    printer,
		logger:     logger.With(zap.String("session", id)),
	}
}

// ID returns the session's correlation id.
func (s *Session) ID() string {
	return s.id
}

// Run reads and dispatches lines until quit, end of input, Stop, or ctx cancellation.
//
// Postcondition: Returns nil on any of those endings; a non-nil error only when
// reading input or writing output fails.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started")
	lines := 0
	defer func() {
		s.logger.Debug("session ended", zap.Int("lines", lines))
	}()

	for ctx.Err() == nil {
		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, ErrInterrupted):
			if err := s.printer.Line(InterruptHint); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			if s.stopped.Load() {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		lines++

		res := s.dispatcher.Dispatch(ctx, line)
		if err := s.printer.Result(res); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if res.Quit {
			return nil
		}
	}
	return nil
}

// Start runs the session as a lifecycle service.
func (s *Session) Start(ctx context.Context) error {
	return s.Run(ctx)
}

// Stop closes the reader, unblocking a pending ReadLine where the reader supports it.
func (s *Session) Stop() {
	if s.stopped.Swap(true) {
		return
	}
	if err := s.reader.Close(); err != nil {
		s.logger.Debug("closing reader", zap.Error(err))
	}
}
