// Package local provides in-memory line backends for tests and embedding.
package local

import (
	"io"
	"strings"
	"sync"

	"github.com/jonwraymond/lcdebug/backend"
)

// Kind is the registry kind for in-memory backends.
const Kind = "local"

// Input serves a fixed slice of lines.
type Input struct {
	mu     sync.Mutex
	lines  []string
	next   int
	closed bool
	isEnd  func(string) bool
}

// NewInput creates an input over lines.
func NewInput(lines ...string) *Input {
	return &Input{lines: lines, isEnd: backend.IsBlank}
}

// FromText splits text on newlines. A single trailing newline does not
// produce an extra empty line.
func FromText(text string) *Input {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return NewInput()
	}
	return NewInput(strings.Split(text, "\n")...)
}

// NextLine implements backend.InputProvider.
func (in *Input) NextLine() (string, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return "", backend.ErrClosed
	}
	if in.next >= len(in.lines) {
		return "", io.EOF
	}
	line := in.lines[in.next]
	in.next++
	return line, nil
}

// IsEnd implements backend.InputProvider.
func (in *Input) IsEnd(line string) bool {
	return in.isEnd(line)
}

// Close implements backend.InputProvider.
func (in *Input) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.closed = true
	return nil
}

// Closed reports whether Close was called.
func (in *Input) Closed() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.closed
}

// Output collects lines in memory.
type Output struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

// NewOutput creates an empty output.
func NewOutput() *Output {
	return &Output{}
}

// ConsumeLine implements backend.OutputConsumer.
func (o *Output) ConsumeLine(line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return backend.ErrClosed
	}
	o.lines = append(o.lines, line)
	return nil
}

// Close implements backend.OutputConsumer.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	return nil
}

// Lines returns a copy of the collected lines.
func (o *Output) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.lines...)
}

// Closed reports whether Close was called.
func (o *Output) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Register adds the local kind to reg. The input target is the text itself
// with "\n" escapes for line breaks; outputs are discarded after Close.
func Register(reg *backend.Registry) error {
	if err := reg.RegisterInput(Kind, "in-memory lines", func(target string) (backend.InputProvider, error) {
		return FromText(strings.ReplaceAll(target, `\n`, "\n")), nil
	}); err != nil {
		return err
	}
	return reg.RegisterOutput(Kind, "in-memory collector", func(string) (backend.OutputConsumer, error) {
		return NewOutput(), nil
	})
}

var (
	_ backend.InputProvider  = (*Input)(nil)
	_ backend.OutputConsumer = (*Output)(nil)
)
