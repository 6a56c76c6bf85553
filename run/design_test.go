package run

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jonwraymond/lcdebug/match"
	"github.com/jonwraymond/lcdebug/value"
)

type stack struct{ items []int }

func newStack() *stack { return &stack{} }

func (s *stack) Push(x int) { s.items = append(s.items, x) }

func (s *stack) Pop() int {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

func (s *stack) Top() int { return s.items[len(s.items)-1] }

type minStack struct {
	items []int
	mins  []int
}

// Constructor returns a value, as exercise templates do.
func Constructor() minStack { return minStack{} }

func (m *minStack) Push(val int) {
	m.items = append(m.items, val)
	if len(m.mins) == 0 || val <= m.mins[len(m.mins)-1] {
		m.mins = append(m.mins, val)
	}
}

func (m *minStack) Pop() {
	if m.items[len(m.items)-1] == m.mins[len(m.mins)-1] {
		m.mins = m.mins[:len(m.mins)-1]
	}
	m.items = m.items[:len(m.items)-1]
}

func (m *minStack) GetMin() int { return m.mins[len(m.mins)-1] }

func stackTarget(t *testing.T) Target {
	t.Helper()
	d, err := NewDesign("Stack", reflect.TypeOf(&stack{}), newStack)
	if err != nil {
		t.Fatalf("NewDesign() error = %v", err)
	}
	return Target{Design: d}
}

func TestDesign_SuppressesConstructorResult(t *testing.T) {
	r := NewRunner()
	out, err := r.RunLine(context.Background(), stackTarget(t), `["Init","push","pop"], [[],[5],[]]`)
	if err != nil {
		t.Fatalf("RunLine() error = %v", err)
	}
	if out.Text != "[null,null,5]" {
		t.Errorf("RunLine() = %q, want %q", out.Text, "[null,null,5]")
	}
	if len(out.Steps) != 3 {
		t.Fatalf("Steps = %d, want 3", len(out.Steps))
	}
	if out.Steps[1].Callable.Name() != "Push" || out.Steps[2].Value != 5 {
		t.Errorf("unexpected steps: %+v", out.Steps)
	}
}

func TestDesign_ValueConstructorSharesState(t *testing.T) {
	d, err := NewDesign("MinStack", reflect.TypeOf(minStack{}), Constructor)
	if err != nil {
		t.Fatalf("NewDesign() error = %v", err)
	}
	r := NewRunner()
	line := `["MinStack","push","push","push","getMin","pop","getMin"]` +
		` [[],[-2],[0],[-3],[],[],[]]`
	out, err := r.RunLine(context.Background(), Target{Design: d}, line)
	if err != nil {
		t.Fatalf("RunLine() error = %v", err)
	}
	if want := "[null,null,null,null,-3,null,-2]"; out.Text != want {
		t.Errorf("RunLine() = %q, want %q", out.Text, want)
	}
}

func TestDesign_Operations(t *testing.T) {
	d, err := NewDesign("MinStack", reflect.TypeOf(minStack{}), Constructor)
	if err != nil {
		t.Fatalf("NewDesign() error = %v", err)
	}
	want := []string{"Constructor", "GetMin", "MinStack", "Pop", "Push"}
	if got := d.OperationNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("OperationNames() = %v, want %v", got, want)
	}
	if got := d.methods("getMin"); len(got) != 1 || got[0].Name() != "GetMin" {
		t.Errorf("methods(getMin) = %v", got)
	}
	if got := d.methods("MinStack"); len(got) != 0 {
		t.Errorf("constructor resolved as a method: %v", got)
	}
}

func TestDesign_Errors(t *testing.T) {
	r := NewRunner()
	ctx := context.Background()
	target := stackTarget(t)

	tests := []struct {
		name string
		line string
		want error
	}{
		{"length mismatch", `["Init","push"], [[]]`, ErrDesign},
		{"unknown operation", `["Init","peek"], [[],[]]`, ErrUnknownOperation},
		{"bad arguments", `["Init","push"], [[],["x"]]`, match.ErrNoMatch},
		{"row not a list", `["Init","push"], [[],5]`, ErrDesign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RunLine(ctx, target, tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("RunLine() error = %v, want %v", err, tt.want)
			}
			if tt.want == ErrUnknownOperation {
				last := out.Steps[len(out.Steps)-1]
				if last.OK() || last.Operation != "peek" {
					t.Errorf("last step = %+v, want failed peek", last)
				}
			}
		})
	}
}

func TestRunDesign(t *testing.T) {
	r := NewRunner()
	target := stackTarget(t)
	data := []value.Value{value.List{}, value.List{value.Int(1)}, value.List{value.Int(2)}, value.List{}}

	results, steps, err := r.RunDesign(context.Background(), target.Design, []string{"Stack", "push", "push", "top"}, data)
	if err != nil {
		t.Fatalf("RunDesign() error = %v", err)
	}
	if !reflect.DeepEqual(results, []any{nil, nil, nil, 2}) {
		t.Errorf("RunDesign() = %v, want [<nil> <nil> <nil> 2]", results)
	}
	if len(steps) != 4 {
		t.Errorf("steps = %d, want 4", len(steps))
	}
}

func TestDesign_PanicInStep(t *testing.T) {
	r := NewRunner()
	_, err := r.RunLine(context.Background(), stackTarget(t), `["Init","pop"], [[],[]]`)
	if err == nil {
		t.Fatal("RunLine() expected error from popping an empty stack")
	}
	var tie interface{ Panicked() bool }
	if !errors.As(err, &tie) || !tie.Panicked() {
		t.Errorf("RunLine() error = %v, want a recovered panic", err)
	}
}
