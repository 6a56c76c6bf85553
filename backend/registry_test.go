package backend

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistry_RegisterInput(t *testing.T) {
	registry := NewRegistry()
	f := func(string) (InputProvider, error) { return NewReaderInput(strings.NewReader("")), nil }

	if err := registry.RegisterInput("mem", "memory", f); err != nil {
		t.Fatalf("RegisterInput() error = %v", err)
	}
	if err := registry.RegisterInput("mem", "memory", f); !errors.Is(err, ErrBackendExists) {
		t.Errorf("RegisterInput() duplicate error = %v, want ErrBackendExists", err)
	}
	if err := registry.RegisterInput("", "memory", f); err == nil {
		t.Error("RegisterInput() should reject an empty kind")
	}
}

func TestRegistry_Info(t *testing.T) {
	registry := Default()

	info, ok := registry.Info("file")
	if !ok {
		t.Fatal("Info(file) returned false")
	}
	if !info.Input || !info.Output {
		t.Errorf("Info(file) = %+v, want input and output", info)
	}
	if _, ok := registry.Info("nonexistent"); ok {
		t.Error("Info() should return false for an unknown kind")
	}
}

func TestRegistry_Kinds(t *testing.T) {
	kinds := Default().Kinds()
	if len(kinds) != 2 || kinds[0] != "console" || kinds[1] != "file" {
		t.Errorf("Kinds() = %v, want [console file]", kinds)
	}
}

func TestRegistry_OpenNotFound(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.OpenInput("nope"); !errors.Is(err, ErrBackendNotFound) {
		t.Errorf("OpenInput() error = %v, want ErrBackendNotFound", err)
	}
	if _, err := registry.OpenOutput("nope:x"); !errors.Is(err, ErrBackendNotFound) {
		t.Errorf("OpenOutput() error = %v, want ErrBackendNotFound", err)
	}
	if _, err := registry.OpenInput(""); !errors.Is(err, ErrInvalidLocator) {
		t.Errorf("OpenInput(\"\") error = %v, want ErrInvalidLocator", err)
	}
}

func TestRegistry_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "result.txt")
	registry := Default()

	out, err := registry.OpenOutput(FormatLocator("file", path))
	if err != nil {
		t.Fatalf("OpenOutput() error = %v", err)
	}
	for _, line := range []string{"[0,1]", "true"} {
		if err := out.ConsumeLine(line); err != nil {
			t.Fatalf("ConsumeLine() error = %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "[0,1]\ntrue\n" {
		t.Errorf("file content = %q", data)
	}

	in, err := registry.OpenInput("file:" + path)
	if err != nil {
		t.Fatalf("OpenInput() error = %v", err)
	}
	defer in.Close()
	line, err := in.NextLine()
	if err != nil || line != "[0,1]" {
		t.Errorf("NextLine() = %q, %v", line, err)
	}
}

func TestRegistry_FileMissing(t *testing.T) {
	registry := Default()
	if _, err := registry.OpenInput("file:" + filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("OpenInput() should fail for a missing file")
	}
	if _, err := registry.OpenInput("file"); !errors.Is(err, ErrInvalidLocator) {
		t.Errorf("OpenInput(file) error = %v, want ErrInvalidLocator", err)
	}
}
