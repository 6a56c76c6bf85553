package backend

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ConsolePrompt is printed before each read when stdin is a terminal.
const ConsolePrompt = "> "

// NewConsoleInput reads from standard input. Closing it does not close stdin.
func NewConsoleInput(opts ...ReaderOption) *ReaderInput {
	base := []ReaderOption{}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		base = append(base, WithPrompt(os.Stderr, ConsolePrompt))
	}
	return NewReaderInput(io.NopCloser(os.Stdin), append(base, opts...)...)
}

// NewConsoleOutput writes to standard output. Closing it flushes but does not
// close stdout.
func NewConsoleOutput() *WriterOutput {
	return NewWriterOutput(nopWriteCloser{os.Stdout})
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
