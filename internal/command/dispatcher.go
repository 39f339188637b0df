package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/almanac/internal/character"
)

// Outcome classifies how a command ended.
type Outcome int

// Command outcomes. Only OutcomeFailed reflects a store error; every outcome returns
// control to the prompt.
const (
	OutcomeOK Outcome = iota
	OutcomeUsage
	OutcomeInvalid
	OutcomeNotFound
	OutcomeFailed
	OutcomeUnrecognized
	OutcomeSkipped
)

// Messages shown for commands that have no other output.
const (
	MessageQuit         = "Quitting the program."
	MessageUnrecognized = "❓ Command does not exist."
	MessageEmpty        = "No characters have been added yet."
)

// Result is what one input line produced, ready to be rendered.
type Result struct {
	Outcome Outcome
	// Message is a framed notice; empty when only Characters are shown.
	Message string
	// Characters are records to print, in store order.
	Characters []*character.Character
	// Quit is set when the prompt loop must stop after this line.
	Quit bool
	// Err is the classified cause for non-OK outcomes.
	Err error
}

// handlerFunc turns the arguments of one command kind into an operation.
type handlerFunc func(args []string) (Operation, error)

// Dispatcher runs parsed lines through their handlers and executes the resulting
// operations against the gateway, one at a time.
type Dispatcher struct {
	registry *Registry
	gateway  Gateway
	logger   *zap.Logger
	handlers map[Kind]handlerFunc
}

// NewDispatcher creates a Dispatcher.
//
// Precondition: registry, gateway and logger must be non-nil.
func NewDispatcher(registry *Registry, gateway Gateway, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		gateway:  gateway,
		logger:   logger,
		handlers: map[Kind]handlerFunc{
			KindAdd:    BuildAdd,
			KindRead:   BuildRead,
			KindChange: BuildChange,
			KindQuit:   BuildQuit,
			KindHelp:   BuildHelp,
		},
	}
}

// Registry returns the command registry used for parsing.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch parses and runs a single input line.
//
// Postcondition: Never panics on user input; every failure is reported in the Result.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) Result {
	return d.Run(ctx, d.registry.Parse(line))
}

// Run validates pc into an operation and executes it.
func (d *Dispatcher) Run(ctx context.Context, pc ParsedCommand) Result {
	switch pc.Kind {
	case KindNone:
		return Result{Outcome: OutcomeSkipped}
	case KindUnrecognized:
		d.logger.Debug("unrecognized command", zap.String("command", pc.Name))
		return Result{Outcome: OutcomeUnrecognized, Message: MessageUnrecognized}
	}

	build, ok := d.handlers[pc.Kind]
	if !ok {
		return Result{Outcome: OutcomeUnrecognized, Message: MessageUnrecognized}
	}

	d.logger.Debug("dispatching command",
		zap.Stringer("kind", pc.Kind),
		zap.Int("args", len(pc.Args)),
	)

	op, err := build(pc.Args)
	if err != nil {
		return rejected(err)
	}
	return d.Execute(ctx, op)
}

// rejected converts a handler error into a Result without touching the store.
func rejected(err error) Result {
	var usage *UsageError
	if errors.As(err, &usage) {
		return Result{Outcome: OutcomeUsage, Message: usage.Error(), Err: err}
	}
	return Result{Outcome: OutcomeInvalid, Message: err.Error(), Err: err}
}

// Execute applies op to the gateway.
//
// Precondition: op must come from one of the Build* handlers.
func (d *Dispatcher) Execute(ctx context.Context, op Operation) Result {
	switch op := op.(type) {
	case InsertOperation:
		return d.insert(ctx, op)
	case SelectAllOperation:
		return d.selectAll(ctx)
	case SelectOperation:
		return d.selectOne(ctx, op)
	case UpdateOperation:
		return d.update(ctx, op)
	case QuitOperation:
		return Result{Outcome: OutcomeOK, Message: MessageQuit, Quit: true}
	case HelpOperation:
		return d.help(op)
	default:
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("unknown operation %T", op)}
	}
}

func (d *Dispatcher) insert(ctx context.Context, op InsertOperation) Result {
	name := op.Character.Name
	if err := d.gateway.Insert(ctx, op.Character); err != nil {
		d.logger.Warn("adding character failed", zap.String("name", name), zap.Error(err))
		return Result{
			Outcome: OutcomeFailed,
			Message: fmt.Sprintf("An error occurred when adding character %s! %v", name, err),
			Err:     err,
		}
	}
	d.logger.Info("character added", zap.String("name", name))
	return Result{
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("%s was successfully added to the database! :)", name),
	}
}

func (d *Dispatcher) selectAll(ctx context.Context) Result {
	chars, err := d.gateway.List(ctx)
	if err != nil {
		d.logger.Warn("listing characters failed", zap.Error(err))
		return Result{
			Outcome: OutcomeFailed,
			Message: fmt.Sprintf("An error occurred when reading characters! %v", err),
			Err:     err,
		}
	}
	if len(chars) == 0 {
		return Result{Outcome: OutcomeOK, Message: MessageEmpty}
	}
	return Result{Outcome: OutcomeOK, Characters: chars}
}

func (d *Dispatcher) selectOne(ctx context.Context, op SelectOperation) Result {
	c, err := d.gateway.GetByName(ctx, op.Name)
	if err != nil {
		if errors.Is(err, character.ErrCharacterNotFound) {
			return notFound(op.Name, err)
		}
		d.logger.Warn("reading character failed", zap.String("name", op.Name), zap.Error(err))
		return Result{
			Outcome: OutcomeFailed,
			Message: fmt.Sprintf("An error occurred when reading character %s! %v", op.Name, err),
			Err:     err,
		}
	}
	return Result{Outcome: OutcomeOK, Characters: []*character.Character{c}}
}

func (d *Dispatcher) update(ctx context.Context, op UpdateOperation) Result {
	rows, err := d.gateway.UpdateField(ctx, op.Target, op.Field, op.Value)
	if err != nil {
		d.logger.Warn("changing character failed",
			zap.String("name", op.Target),
			zap.Stringer("field", op.Field),
			zap.Error(err),
		)
		return Result{
			Outcome: OutcomeFailed,
			Message: fmt.Sprintf("An error occurred when changing character %s! %v", op.Target, err),
			Err:     err,
		}
	}
	if rows == 0 {
		return notFound(op.Target, character.ErrCharacterNotFound)
	}
	d.logger.Info("character changed",
		zap.String("name", op.Target),
		zap.Stringer("field", op.Field),
	)
	return Result{
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("%s's %s was changed to %s.", op.Target, op.Field, op.Value),
	}
}

func notFound(name string, err error) Result {
	return Result{
		Outcome: OutcomeNotFound,
		Message: fmt.Sprintf("No character named %q was found.", name),
		Err:     err,
	}
}

func (d *Dispatcher) help(op HelpOperation) Result {
	if op.Topic != "" {
		cmd, ok := d.registry.Resolve(op.Topic)
		if !ok {
			return Result{
				Outcome: OutcomeUnrecognized,
				Message: fmt.Sprintf("Unknown command %q.", op.Topic),
			}
		}
		msg := fmt.Sprintf("%s - %s\nusage: %s", cmd.Name, cmd.Help, cmd.Usage)
		if cmd.Kind == KindChange {
			msg += "\nfields: " + strings.Join(character.FieldNames(), ", ")
		}
		return Result{Outcome: OutcomeOK, Message: msg}
	}

	lines := make([]string, 0, len(d.registry.order)+1)
	lines = append(lines, "Available commands:")
	for _, cmd := range d.registry.Commands() {
		lines = append(lines, fmt.Sprintf("  %-8s %s", cmd.Name, cmd.Usage))
	}
	return Result{Outcome: OutcomeOK, Message: strings.Join(lines, "\n")}
}
