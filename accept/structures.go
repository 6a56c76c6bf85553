package accept

import (
	"fmt"
	"reflect"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/ds"
	"github.com/jonwraymond/lcdebug/value"
)

// StructureOrder is the order of the built-in structure builders.
const StructureOrder = 100

var (
	treeType = reflect.TypeOf((*ds.TreeNode)(nil))
	listType = reflect.TypeOf((*ds.ListNode)(nil))
	rawType  = reflect.TypeOf((*value.Value)(nil)).Elem()
)

// TreeStrategy builds a binary tree from its level-order encoding, where
// null marks a missing child. [1,null,2,3] is a root 1 with right child 2,
// whose left child is 3.
type TreeStrategy struct{}

func (TreeStrategy) Name() string       { return "tree" }
func (TreeStrategy) Type() reflect.Type { return treeType }
func (TreeStrategy) Order() int         { return StructureOrder }

// Accept rebuilds the tree breadth first: each dequeued node takes the next
// two entries as its children, skipping nulls, until the entries run out.
func (TreeStrategy) Accept(_ callable.Param, v value.Value) (reflect.Value, error) {
	items, err := nullableInts(v)
	if err != nil {
		return reflect.Value{}, err
	}
	if len(items) == 0 || items[0] == nil {
		return reflect.Zero(treeType), nil
	}

	root := &ds.TreeNode{Val: *items[0]}
	queue := []*ds.TreeNode{root}
	i := 1
	for len(queue) > 0 && i < len(items) {
		n := queue[0]
		queue = queue[1:]
		if items[i] != nil {
			n.Left = &ds.TreeNode{Val: *items[i]}
			queue = append(queue, n.Left)
		}
		i++
		if i < len(items) && items[i] != nil {
			n.Right = &ds.TreeNode{Val: *items[i]}
			queue = append(queue, n.Right)
		}
		i++
	}
	return reflect.ValueOf(root), nil
}

// ListStrategy builds a singly linked list in input order.
type ListStrategy struct{}

func (ListStrategy) Name() string       { return "linked-list" }
func (ListStrategy) Type() reflect.Type { return listType }
func (ListStrategy) Order() int         { return StructureOrder }

// Accept requires a list of ints; an empty list is a nil head.
func (ListStrategy) Accept(_ callable.Param, v value.Value) (reflect.Value, error) {
	items, err := nullableInts(v)
	if err != nil {
		return reflect.Value{}, err
	}
	var head *ds.ListNode
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == nil {
			return reflect.Value{}, fmt.Errorf("%w: null at index %d", ErrShape, i)
		}
		head = &ds.ListNode{Val: *items[i], Next: head}
	}
	return reflect.ValueOf(head), nil
}

// RawStrategy hands the input tree to parameters declared as value.Value.
type RawStrategy struct{}

func (RawStrategy) Name() string       { return "raw" }
func (RawStrategy) Type() reflect.Type { return rawType }
func (RawStrategy) Order() int         { return StructureOrder }

func (RawStrategy) Accept(_ callable.Param, v value.Value) (reflect.Value, error) {
	if v == nil {
		v = value.Null{}
	}
	out := reflect.New(rawType).Elem()
	out.Set(reflect.ValueOf(v))
	return out, nil
}

// nullableInts flattens a list of Int and Null entries.
func nullableInts(v value.Value) ([]*int, error) {
	list, ok := v.(value.List)
	if !ok {
		return nil, shapeError("list", v)
	}
	out := make([]*int, len(list))
	for i, e := range list {
		switch t := e.(type) {
		case nil, value.Null:
		case value.Int:
			n := int(t)
			if int64(n) != int64(t) {
				return nil, fmt.Errorf("%w: %d overflows int at index %d", ErrShape, t, i)
			}
			out[i] = &n
		default:
			return nil, fmt.Errorf("%w: index %d is %s, want int or null", ErrShape, i, e.Kind())
		}
	}
	return out, nil
}
