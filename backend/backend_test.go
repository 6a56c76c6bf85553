package backend

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestReaderInput_NextLine(t *testing.T) {
	in := NewReaderInput(strings.NewReader("[2,7,11,15]\r\n9\n"))

	for _, want := range []string{"[2,7,11,15]", "9"} {
		got, err := in.NextLine()
		if err != nil {
			t.Fatalf("NextLine() error = %v", err)
		}
		if got != want {
			t.Errorf("NextLine() = %q, want %q", got, want)
		}
	}
	if _, err := in.NextLine(); !errors.Is(err, io.EOF) {
		t.Errorf("NextLine() error = %v, want io.EOF", err)
	}
}

func TestReaderInput_Options(t *testing.T) {
	var prompt bytes.Buffer
	in := NewReaderInput(strings.NewReader("［１，２］\n"),
		WithNormalize(NormalizeWidth),
		WithPrompt(&prompt, "> "),
		WithEnd(func(line string) bool { return line == "END" }),
	)

	got, err := in.NextLine()
	if err != nil {
		t.Fatalf("NextLine() error = %v", err)
	}
	if got != "[1,2]" {
		t.Errorf("NextLine() = %q, want %q", got, "[1,2]")
	}
	if prompt.String() != "> " {
		t.Errorf("prompt = %q, want %q", prompt.String(), "> ")
	}
	if !in.IsEnd("END") || in.IsEnd("") {
		t.Error("WithEnd() not applied")
	}
}

func TestReaderInput_Close(t *testing.T) {
	r := &closeRecorder{Reader: strings.NewReader("1")}
	in := NewReaderInput(r)

	if err := in.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close the underlying reader")
	}
	if err := in.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := in.NextLine(); !errors.Is(err, ErrClosed) {
		t.Errorf("NextLine() after Close error = %v, want ErrClosed", err)
	}
}

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriterOutput(&buf)

	if err := out.ConsumeLine("[0,1]"); err != nil {
		t.Fatalf("ConsumeLine() error = %v", err)
	}
	if buf.String() != "[0,1]\n" {
		t.Errorf("after ConsumeLine buffer = %q, want flushed line", buf.String())
	}

	_ = out.Close()
	if err := out.ConsumeLine("x"); !errors.Is(err, ErrClosed) {
		t.Errorf("ConsumeLine() after Close error = %v, want ErrClosed", err)
	}
}

func TestIsBlank(t *testing.T) {
	for _, line := range []string{"", " ", "\t"} {
		if !IsBlank(line) {
			t.Errorf("IsBlank(%q) = false", line)
		}
	}
	if IsBlank("0") {
		t.Error("IsBlank(\"0\") = true")
	}
}

func TestParseLocator(t *testing.T) {
	tests := []struct {
		in        string
		kind, tgt string
		wantErr   bool
	}{
		{in: "console", kind: "console"},
		{in: "file:cases.txt", kind: "file", tgt: "cases.txt"},
		{in: "file:dir/a:b.txt", kind: "file", tgt: "dir/a:b.txt"},
		{in: "  local:1  ", kind: "local", tgt: "1"},
		{in: "", wantErr: true},
		{in: ":x", wantErr: true},
	}
	for _, tt := range tests {
		kind, tgt, err := ParseLocator(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLocator) {
				t.Errorf("ParseLocator(%q) error = %v, want ErrInvalidLocator", tt.in, err)
			}
			continue
		}
		if err != nil || kind != tt.kind || tgt != tt.tgt {
			t.Errorf("ParseLocator(%q) = %q, %q, %v", tt.in, kind, tgt, err)
		}
	}
}

func TestFormatLocator(t *testing.T) {
	if got := FormatLocator("console", ""); got != "console" {
		t.Errorf("FormatLocator() = %q", got)
	}
	if got := FormatLocator("file", "a.txt"); got != "file:a.txt" {
		t.Errorf("FormatLocator() = %q", got)
	}
}

func TestMapInput(t *testing.T) {
	in := MapInput(NewReaderInput(strings.NewReader("［１，２］\n")), NormalizeWidth)

	got, err := in.NextLine()
	if err != nil {
		t.Fatalf("NextLine() error = %v", err)
	}
	if got != "[1,2]" {
		t.Errorf("NextLine() = %q, want %q", got, "[1,2]")
	}
	if _, err := in.NextLine(); !errors.Is(err, io.EOF) {
		t.Errorf("NextLine() error = %v, want io.EOF", err)
	}
	if err := in.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
