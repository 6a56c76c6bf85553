package code

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeSolution = `package solution

import "sort"

/**
 * Definition for a binary tree node.
 * type TreeNode struct {
 *     Val int
 *     Left *TreeNode
 *     Right *TreeNode
 * }
 */
func maxDepth(root *TreeNode) int {
	if root == nil {
		return 0
	}
	return 1 + max(maxDepth(root.Left), maxDepth(root.Right))
}

func sortedCopy(nums ...int) []int {
	out := append([]int(nil), nums...)
	sort.Ints(out)
	return out
}

func main() {
	println(maxDepth(nil))
}
`

const designSolution = `package main

type MinStack struct {
	data []int
}

func Constructor() MinStack {
	return MinStack{}
}

func (this *MinStack) Push(val int) {
	this.data = append(this.data, val)
}

func (this *MinStack) Top() int {
	return this.data[len(this.data)-1]
}

func helper(a, b int) (sum int, diff int) {
	return a + b, a - b
}
`

func TestAnalyze_Functions(t *testing.T) {
	u, err := analyze("tree.go", []byte(treeSolution))
	require.NoError(t, err)

	require.Len(t, u.functions, 2)
	assert.Equal(t, "maxDepth", u.functions[0].Name)
	assert.Equal(t, []string{"root"}, u.functions[0].Params)
	assert.Equal(t, []string{"*TreeNode"}, u.functions[0].Types)
	assert.Equal(t, []string{"int"}, u.functions[0].Results)
	assert.Equal(t, "sortedCopy", u.functions[1].Name)
	assert.True(t, u.functions[1].variadic)
	assert.Empty(t, u.designs)
	assert.Equal(t, []string{"TreeNode"}, u.aliases)
}

func TestAnalyze_RewriteKeepsLines(t *testing.T) {
	u, err := analyze("tree.go", []byte(treeSolution))
	require.NoError(t, err)

	orig := strings.Split(treeSolution, "\n")
	got := strings.Split(u.source, "\n")
	require.Greater(t, len(got), len(orig))

	assert.Equal(t, `package main; import lcds "github.com/jonwraymond/lcdebug/ds"`, got[0])
	for i := 1; i < len(orig); i++ {
		if strings.HasPrefix(orig[i], "func main") {
			assert.Equal(t, strings.Repeat(" ", len(orig[i])), got[i], "line %d", i+1)
			break
		}
		assert.Equal(t, orig[i], got[i], "line %d", i+1)
	}
	assert.Contains(t, u.source, "type TreeNode = lcds.TreeNode")
	assert.Contains(t, u.source, "func LcdebugFunc_maxDepth(p0 *TreeNode) int {\n\treturn maxDepth(p0)\n}")
	assert.Contains(t, u.source, "func LcdebugFunc_sortedCopy(p0 ...int) []int {\n\treturn sortedCopy(p0...)\n}")
	assert.NotContains(t, u.source, "LcdebugFunc_main")
}

func TestAnalyze_Design(t *testing.T) {
	u, err := analyze("min_stack.go", []byte(designSolution))
	require.NoError(t, err)

	require.Len(t, u.functions, 1)
	assert.Equal(t, "helper", u.functions[0].Name)
	assert.Equal(t, []string{"a", "b"}, u.functions[0].Params)
	assert.Equal(t, []string{"int", "int"}, u.functions[0].Results)

	require.Len(t, u.designs, 1)
	d := u.designs[0]
	assert.Equal(t, "MinStack", d.Type)
	require.Len(t, d.Constructors, 1)
	assert.Equal(t, "Constructor", d.Constructors[0].Name)
	assert.Equal(t, []bool{false}, d.pointerCtor)
	require.Len(t, d.Methods, 2)
	assert.Equal(t, "Push", d.Methods[0].Name)
	assert.Equal(t, "Top", d.Methods[1].Name)
	assert.Empty(t, u.aliases)

	assert.Contains(t, u.source, "func LcdebugCtor_MinStack_Constructor() *MinStack {\n\tv := Constructor()\n\treturn &v\n}")
	assert.Contains(t, u.source, "func LcdebugMethod_MinStack_Push(this *MinStack, p0 int) {\n\tthis.Push(p0)\n}")
	assert.Contains(t, u.source, "func LcdebugFunc_helper(p0 int, p1 int) (int, int) {\n\treturn helper(p0, p1)\n}")
}

func TestAnalyze_PointerConstructorPreferred(t *testing.T) {
	src := `package main

type Counter struct{ n int }
type LRU struct{}

func NewCounter() *Counter { return &Counter{} }
func (c *Counter) Add(k int) int { c.n += k; return c.n }

func Constructor(capacity int) LRU { return LRU{} }
func (l *LRU) Get(key int) int { return -1 }
`
	u, err := analyze("multi.go", []byte(src))
	require.NoError(t, err)

	assert.Empty(t, u.functions)
	require.Len(t, u.designs, 2)
	assert.Equal(t, "LRU", u.designs[0].Type)
	assert.Equal(t, "Counter", u.designs[1].Type)
	assert.Equal(t, []bool{true}, u.designs[1].pointerCtor)
	assert.Contains(t, u.source, "func LcdebugCtor_Counter_NewCounter() *Counter {\n\treturn NewCounter()\n}")
}

func TestAnalyze_PastedNodeReplaced(t *testing.T) {
	src := `package main

type ListNode struct {
	Val  int
	Next *ListNode
}

type Pair struct{ A, B int }

func reverseList(head *ListNode) *ListNode { return head }
`
	u, err := analyze("list.go", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"ListNode"}, u.aliases)
	assert.NotContains(t, u.source, "type ListNode struct")
	assert.Contains(t, u.source, "type ListNode = lcds.ListNode")
	assert.Contains(t, u.source, "type Pair struct{ A, B int }")
}

func TestAnalyze_CustomNodeKept(t *testing.T) {
	src := `package main

type TreeNode struct {
	Key   string
	Left  *TreeNode
	Right *TreeNode
}

func size(n *TreeNode) int { return 0 }
`
	u, err := analyze("custom.go", []byte(src))
	require.NoError(t, err)

	assert.Empty(t, u.aliases)
	assert.Contains(t, u.source, "type TreeNode struct")
	assert.NotContains(t, u.source, "lcds")
}

func TestAnalyze_SkipsGenericsAndInit(t *testing.T) {
	src := `package main

func init() {}

func Map[T any](xs []T) []T { return xs }

func _() {}

func ok() bool { return true }
`
	u, err := analyze("generic.go", []byte(src))
	require.NoError(t, err)

	require.Len(t, u.functions, 1)
	assert.Equal(t, "ok", u.functions[0].Name)
}

func TestAnalyze_SyntaxError(t *testing.T) {
	_, err := analyze("broken.go", []byte("package main\n\nfunc f( {\n"))
	require.Error(t, err)

	var ce *CodeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "broken.go", ce.Path)
	assert.Equal(t, 3, ce.Line)
	assert.True(t, errors.Is(err, ErrCodeExecution))
	assert.True(t, strings.HasPrefix(ce.Message, "syntax error: "))
}
