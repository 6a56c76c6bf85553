// Package ds defines the auxiliary structures exercise solutions take and
// return: a singly linked list and a binary tree of ints.
//
// Solutions loaded from source refer to these types as ListNode and TreeNode;
// the loader aliases them to this package when the source does not declare
// them itself.
package ds

// ListNode is a singly linked list node.
type ListNode struct {
	Val  int
	Next *ListNode
}

// TreeNode is a binary tree node.
type TreeNode struct {
	Val   int
	Left  *TreeNode
	Right *TreeNode
}

// Values returns the list values from head to tail.
func (l *ListNode) Values() []int {
	var out []int
	for n := l; n != nil; n = n.Next {
		out = append(out, n.Val)
	}
	return out
}

// LevelOrder returns the tree in breadth-first order with nil placeholders
// for missing children; trailing placeholders are trimmed.
func (t *TreeNode) LevelOrder() []*int {
	if t == nil {
		return nil
	}
	var out []*int
	queue := []*TreeNode{t}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, nil)
			continue
		}
		v := n.Val
		out = append(out, &v)
		queue = append(queue, n.Left, n.Right)
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}
	return out
}
