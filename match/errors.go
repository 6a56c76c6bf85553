package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonwraymond/lcdebug/accept"
	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

// Matching errors.
var (
	// ErrNoCandidates is returned when the candidate set is empty.
	ErrNoCandidates = errors.New("no candidate callables")

	// ErrNoMatch is matched by every NoMatchError.
	ErrNoMatch = errors.New("no candidate matched")
)

// Trace records why one candidate was not chosen.
type Trace struct {
	// Callable is the attempted candidate.
	Callable *callable.Descriptor

	// Skipped is true when the parameter count did not fit the arguments.
	Skipped bool

	// Index is the first rejected parameter; meaningless when Skipped.
	Index int

	// Errors are the strategy rejections for that parameter, in the order tried.
	Errors []*accept.AcceptanceError
}

// NoMatchError reports that no candidate accepted the arguments.
type NoMatchError struct {
	// Args are the parsed arguments.
	Args []value.Value

	// Traces holds one entry per candidate, in candidate order.
	Traces []Trace
}

// Error summarizes the failure; Report holds the full trace.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v for input %s (%d candidates)", ErrNoMatch, value.Format(e.Args), len(e.Traces))
}

// Is reports whether this error matches the target.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// Unwrap exposes every recorded strategy rejection.
func (e *NoMatchError) Unwrap() []error {
	var out []error
	for _, t := range e.Traces {
		for _, ae := range t.Errors {
			out = append(out, ae)
		}
	}
	return out
}

// Report renders every candidate with its rejection trace.
func (e *NoMatchError) Report() string {
	var sb strings.Builder
	sb.WriteString("[Match Trace Report Start]\n")
	fmt.Fprintf(&sb, "Candidates: %d,  Inputs: %d\n", len(e.Traces), len(e.Args))
	for i, t := range e.Traces {
		fmt.Fprintf(&sb, "<Candidate-%d> %s\n", i, t.Callable)
		if t.Skipped {
			fmt.Fprintf(&sb, "  skipped: takes %d arguments, got %d\n", t.Callable.ParamCount(), len(e.Args))
			continue
		}
		p := t.Callable.Params()[t.Index]
		in := e.Args[t.Index]
		kind := "null"
		if in != nil {
			kind = in.Kind().String()
		}
		fmt.Fprintf(&sb, "  - Index: %d,  Parameter: %s,  Type: %s,  Input(%s): %s\n",
			t.Index, p.Name, p.Type, kind, literal(in))
		for _, ae := range t.Errors {
			fmt.Fprintf(&sb, "    %s: %v\n", ae.Strategy, ae.Err)
		}
	}
	sb.WriteString("[Match Trace Report End]\n")
	return sb.String()
}

func literal(v value.Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}
