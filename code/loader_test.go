package code

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/run"
)

// mapSymbols serves compiled stand-ins for the generated wrappers.
type mapSymbols map[string]any

func (m mapSymbols) Lookup(name string) (reflect.Value, error) {
	v, ok := m[name]
	if !ok {
		return reflect.Value{}, fmt.Errorf("undefined: %s", name)
	}
	return reflect.ValueOf(v), nil
}

type fakeEngine struct {
	syms mapSymbols
	err  error
	got  Source
}

func (e *fakeEngine) Evaluate(ctx context.Context, src Source) (Symbols, error) {
	e.got = src
	if e.err != nil {
		return nil, e.err
	}
	return e.syms, nil
}

type goStack struct{ data []int }

func TestLoad_BindsWrappers(t *testing.T) {
	engine := &fakeEngine{syms: mapSymbols{
		"LcdebugFunc_helper": func(a, b int) (int, int) { return a + b, a - b },
		"LcdebugCtor_MinStack_Constructor": func() *goStack {
			return &goStack{}
		},
		"LcdebugMethod_MinStack_Push": func(s *goStack, v int) { s.data = append(s.data, v) },
		"LcdebugMethod_MinStack_Top":  func(s *goStack) int { return s.data[len(s.data)-1] },
	}}

	prog, err := Load(context.Background(), Config{Source: designSolution, Engine: engine})
	require.NoError(t, err)

	assert.Equal(t, DefaultFilename, prog.Path)
	assert.Equal(t, engine.got.Text, prog.Source)
	require.Len(t, prog.Target.Candidates, 1)
	assert.Equal(t, "helper(a int, b int) []interface {}", prog.Target.Candidates[0].String())

	require.Len(t, prog.Designs, 1)
	d := prog.Target.Design
	require.NotNil(t, d)
	assert.Equal(t, "MinStack", d.Name)
	require.Len(t, d.Methods, 2)
	assert.Equal(t, callable.KindReceiver, d.Methods[0].Kind())
	assert.Equal(t, "val", d.Methods[0].Params()[0].Name)

	runner := run.NewRunner()
	out, err := runner.RunLine(context.Background(), prog.Target, `["MinStack","push","push","top"], [[],[1],[7],[]]`)
	require.NoError(t, err)
	assert.Equal(t, "[null,null,null,7]", out.Text)

	out, err = runner.RunLine(context.Background(), prog.Target, "5, 3")
	require.NoError(t, err)
	assert.Equal(t, "[8,2]", out.Text)
}

func TestLoad_MissingWrapper(t *testing.T) {
	engine := &fakeEngine{syms: mapSymbols{}}
	_, err := Load(context.Background(), Config{Source: "package main\n\nfunc f() int { return 1 }\n", Engine: engine})

	var ce *CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Line)
	assert.Contains(t, ce.Error(), "resolve f")
}

func TestLoad_EvaluationError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("_.go:3:22: undefined: missing")}
	_, err := Load(context.Background(), Config{Source: "package main\n\nfunc f() int { return missing }\n", Engine: engine})

	require.ErrorIs(t, err, ErrCodeExecution)
	var ce *CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Line)
	assert.Equal(t, 22, ce.Column)
	assert.Equal(t, "undefined: missing", ce.Message)
}

func TestLoad_Interpreted(t *testing.T) {
	src := `package solution

import "strings"

func twoSum(nums []int, target int) []int {
	seen := map[int]int{}
	for i, n := range nums {
		if j, ok := seen[target-n]; ok {
			return []int{j, i}
		}
		seen[n] = i
	}
	return nil
}

func shout(s string) string {
	return strings.ToUpper(s) + "!"
}
`
	path := filepath.Join(t.TempDir(), "two_sum.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	prog, err := Load(context.Background(), Config{Path: path})
	require.NoError(t, err)
	require.Len(t, prog.Target.Candidates, 2)
	assert.Equal(t, "two_sum.go", prog.Path)
	assert.Nil(t, prog.Target.Design)

	runner := run.NewRunner()
	tests := []struct {
		line string
		want string
	}{
		{"[2,7,11,15], 9", "[0,1]"},
		{"[3,2,4], 6", "[1,2]"},
		{`"hey"`, `"HEY!"`},
	}
	for _, tt := range tests {
		out, err := runner.RunLine(context.Background(), prog.Target, tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, out.Text, tt.line)
	}
}

func TestLoad_InterpretedTree(t *testing.T) {
	src := `package main

func maxDepth(root *TreeNode) int {
	if root == nil {
		return 0
	}
	l, r := maxDepth(root.Left), maxDepth(root.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}
`
	prog, err := Load(context.Background(), Config{Source: src})
	require.NoError(t, err)
	assert.True(t, strings.Contains(prog.Source, "type TreeNode = lcds.TreeNode"))

	out, err := run.NewRunner().RunLine(context.Background(), prog.Target, "[3,9,20,null,null,15,7]")
	require.NoError(t, err)
	assert.Equal(t, "3", out.Text)
}

func TestLoad_InterpretedCharGrid(t *testing.T) {
	src := `package main

func numIslands(grid [][]byte) int {
	var sink func(r, c int)
	sink = func(r, c int) {
		if r < 0 || c < 0 || r >= len(grid) || c >= len(grid[r]) || grid[r][c] != '1' {
			return
		}
		grid[r][c] = '0'
		sink(r+1, c)
		sink(r-1, c)
		sink(r, c+1)
		sink(r, c-1)
	}
	n := 0
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == '1' {
				n++
				sink(r, c)
			}
		}
	}
	return n
}

func markRow(board [][]byte, row int) [][]byte {
	for c := range board[row] {
		board[row][c] = 'X'
	}
	return board
}
`
	prog, err := Load(context.Background(), Config{Source: src})
	require.NoError(t, err)

	runner := run.NewRunner()
	tests := []struct {
		line string
		want string
	}{
		{`[["1","1","0"],["0","0","0"],["0","0","1"]]`, "2"},
		{`[["1","0"],["0","1"]], 1`, `[["1","0"],["X","X"]]`},
	}
	for _, tt := range tests {
		out, err := runner.RunLine(context.Background(), prog.Target, tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, out.Text, tt.line)
	}
}

func TestLoad_InterpretedUndefined(t *testing.T) {
	src := "package main\n\nfunc f() int {\n\treturn missing\n}\n"
	_, err := Load(context.Background(), Config{Source: src})

	require.ErrorIs(t, err, ErrCodeExecution)
	var ce *CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 4, ce.Line)
}
