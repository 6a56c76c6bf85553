package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// maxLineSize bounds a single input line; large test inputs exceed the
// default scanner buffer.
const maxLineSize = 16 << 20

// ReaderOption configures a ReaderInput.
type ReaderOption func(*ReaderInput)

// WithNormalize applies fn to every line before it is returned.
func WithNormalize(fn func(string) string) ReaderOption {
	return func(r *ReaderInput) {
		r.normalize = fn
	}
}

// WithPrompt writes prompt to w before each read.
func WithPrompt(w io.Writer, prompt string) ReaderOption {
	return func(r *ReaderInput) {
		r.promptTo = w
		r.prompt = prompt
	}
}

// WithEnd replaces the end-of-session test.
func WithEnd(fn func(string) bool) ReaderOption {
	return func(r *ReaderInput) {
		if fn != nil {
			r.isEnd = fn
		}
	}
}

// ReaderInput reads lines from an io.Reader.
type ReaderInput struct {
	mu        sync.Mutex
	scanner   *bufio.Scanner
	closer    io.Closer
	normalize func(string) string
	isEnd     func(string) bool
	promptTo  io.Writer
	prompt    string
	closed    bool
}

// NewReaderInput wraps r. If r is an io.Closer it is closed by Close.
func NewReaderInput(r io.Reader, opts ...ReaderOption) *ReaderInput {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	in := &ReaderInput{
		scanner: sc,
		isEnd:   IsBlank,
	}
	if c, ok := r.(io.Closer); ok {
		in.closer = c
	}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

// NextLine implements InputProvider.
func (r *ReaderInput) NextLine() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return "", ErrClosed
	}
	if r.promptTo != nil && r.prompt != "" {
		_, _ = io.WriteString(r.promptTo, r.prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
		return "", io.EOF
	}
	line := strings.TrimSuffix(r.scanner.Text(), "\r")
	if r.normalize != nil {
		line = r.normalize(line)
	}
	return line, nil
}

// IsEnd implements InputProvider.
func (r *ReaderInput) IsEnd(line string) bool {
	return r.isEnd(line)
}

// Close implements InputProvider.
func (r *ReaderInput) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// WriterOutput writes lines to an io.Writer, flushing after each line.
type WriterOutput struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	closed bool
}

// NewWriterOutput wraps w. If w is an io.Closer it is closed by Close.
func NewWriterOutput(w io.Writer) *WriterOutput {
	out := &WriterOutput{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		out.closer = c
	}
	return out
}

// ConsumeLine implements OutputConsumer.
func (o *WriterOutput) ConsumeLine(line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrClosed
	}
	if _, err := o.w.WriteString(line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := o.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return o.w.Flush()
}

// Close implements OutputConsumer.
func (o *WriterOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	err := o.w.Flush()
	if o.closer != nil {
		if cerr := o.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var (
	_ InputProvider  = (*ReaderInput)(nil)
	_ OutputConsumer = (*WriterOutput)(nil)
)
