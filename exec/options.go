package exec

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/accept"
	"github.com/jonwraymond/lcdebug/backend"
	"github.com/jonwraymond/lcdebug/printer"
	"github.com/jonwraymond/lcdebug/run"
)

// Errors returned by Options validation.
var (
	ErrTargetRequired = errors.New("exec: Target needs an instance, candidates, or a design")
	ErrInputRequired  = errors.New("exec: Input is required")
	ErrOutputRequired = errors.New("exec: Output is required")
)

// Options configures an Exec instance.
type Options struct {
	// Target is the code under test.
	// Required.
	Target run.Target

	// Input supplies argument lines. Required by Run, unused by RunLine.
	Input backend.InputProvider

	// Output receives result lines. Required by Run, unused by RunLine.
	Output backend.OutputConsumer

	// AcceptStrategies are registered after the built-in acceptance
	// strategies.
	AcceptStrategies []accept.Strategy

	// PrintStrategies are registered after the built-in printers.
	PrintStrategies []printer.Strategy

	// Logger receives session logs.
	// Default: zap.NewNop()
	Logger *zap.Logger

	// ContinueOnError writes "error: ..." for a failing line and keeps
	// reading instead of ending the session.
	// Default: false
	ContinueOnError bool

	// SessionID tags every log entry of the session.
	// Default: a random UUID
	SessionID string
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	t := o.Target
	if t.Instance == nil && len(t.Candidates) == 0 && t.Design == nil {
		return ErrTargetRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.SessionID == "" {
		o.SessionID = uuid.NewString()
	}
}
