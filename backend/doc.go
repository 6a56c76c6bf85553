// Package backend provides the line I/O collaborators of a debugging session
// and a registry that opens them by kind.
//
// A session reads lines from an [InputProvider] and writes one line per input
// line to an [OutputConsumer]. Built-in kinds:
//
//   - console: standard input and output; prints a prompt when stdin is a terminal
//   - file: reads or writes a file path
//
// The in-memory kind lives in package [github.com/jonwraymond/lcdebug/backend/local].
//
// # Registry
//
// The Registry maps kinds to factories. Backends are addressed by locator
// strings of the form "kind" or "kind:target":
//
//	reg := backend.Default()
//	in, err := reg.OpenInput("file:testdata/cases.txt")
//	out, err := reg.OpenOutput("console")
//
// # Input normalization
//
// Exercise sites sometimes render punctuation in full width. [NormalizeWidth]
// folds such characters to their ASCII forms before the line is parsed.
package backend
