// SPDX-License-Identifier: MIT
// Package: treeshape/tree
//
// types.go — Node, Tree, sentinel errors and the New constructor.
//
// Contract:
//   - Nodes are assembled bottom-up with Leaf/Inner (or NewNode) and then frozen by New.
//   - After New the topology is immutable; every node carries a stable preorder ID.
//   - The only mutable state of a frozen Tree is its Memo side table.

package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Sentinel errors for tree construction and queries.
var (
	// ErrNilRoot indicates New was called with a nil root.
	ErrNilRoot = errors.New("tree: root is nil")

	// ErrNotATree indicates a node is reachable twice (shared subtree or cycle)
	// or already belongs to another frozen tree.
	ErrNotATree = errors.New("tree: structure is not a tree")

	// ErrForeignNode indicates a query received a node of a different tree.
	ErrForeignNode = errors.New("tree: node does not belong to this tree")
)

// Node is a vertex of a rooted, ordered tree.
//
// A node with no children is a leaf. Branch length is optional; an unset
// length reads as 0 for branch-length based statistics.
type Node struct {
	name      string
	length    float64
	hasLength bool

	parent   *Node
	children []*Node

	id    int   // preorder index, -1 until frozen
	rank  int   // position among the parent's children
	owner *Tree // set by New
}

// NodeOption configures a Node created by NewNode.
type NodeOption func(*Node)

// WithName sets the node label.
func WithName(name string) NodeOption {
	return func(n *Node) { n.name = name }
}

// WithLength sets the branch length leading into the node.
// Panics on negative or NaN lengths.
func WithLength(x float64) NodeOption {
	if x < 0 || math.IsNaN(x) {
		panic(fmt.Sprintf("tree: WithLength(%v)", x))
	}
	return func(n *Node) {
		n.length = x
		n.hasLength = true
	}
}

// WithChildren appends children in the given order.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) { n.children = append(n.children, children...) }
}

// NewNode creates an unfrozen node.
func NewNode(opts ...NodeOption) *Node {
	n := &Node{id: -1}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Leaf creates a leaf node with the given name.
func Leaf(name string, opts ...NodeOption) *Node {
	return NewNode(append([]NodeOption{WithName(name)}, opts...)...)
}

// Inner creates an internal node with the given ordered children.
func Inner(children ...*Node) *Node {
	return NewNode(WithChildren(children...))
}

// SetLength sets the branch length of an unfrozen node and returns it,
// so fixtures can be written inline. Panics on a frozen node.
func (n *Node) SetLength(x float64) *Node {
	if n.owner != nil {
		panic("tree: SetLength on a frozen node")
	}
	WithLength(x)(n)
	return n
}

// Tree is an immutable rooted tree with a per-tree memo side table.
type Tree struct {
	root   *Node
	nodes  []*Node // preorder
	post   []*Node // postorder
	leaves []*Node // preorder order
	memo   *Memo
}

// New freezes the structure below root into a Tree.
//
// Implementation:
//   - Stage 1: iterative preorder with a gods arraystack; reject shared or foreign nodes.
//   - Stage 2: assign IDs, parents and sibling ranks.
//   - Stage 3: derive postorder and leaf order.
//
// Errors: ErrNilRoot, ErrNotATree.
// Complexity: O(V) time and space.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	t := &Tree{root: root, memo: NewMemo()}
	seen := make(map[*Node]struct{})

	// 1. Preorder discovery; children pushed in reverse to pop them in order.
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		top, _ := stack.Pop()
		n := top.(*Node)
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("New: node %q reached twice: %w", n.name, ErrNotATree)
		}
		if n.owner != nil {
			return nil, fmt.Errorf("New: node %q already frozen: %w", n.name, ErrNotATree)
		}
		seen[n] = struct{}{}

		// 2. Identity and links.
		n.id = len(t.nodes)
		t.nodes = append(t.nodes, n)
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			if c == nil {
				return nil, fmt.Errorf("New: nil child %d of %q: %w", i, n.name, ErrNotATree)
			}
			c.parent = n
			c.rank = i
			stack.Push(c)
		}
		if len(n.children) == 0 {
			t.leaves = append(t.leaves, n)
		}
	}
	root.parent = nil
	root.rank = 0

	// 3. Postorder via the reversed (node, right-to-left children) order.
	t.post = make([]*Node, 0, len(t.nodes))
	stack.Push(root)
	for !stack.Empty() {
		top, _ := stack.Pop()
		n := top.(*Node)
		t.post = append(t.post, n)
		for _, c := range n.children {
			stack.Push(c)
		}
	}
	for i, j := 0, len(t.post)-1; i < j; i, j = i+1, j-1 {
		t.post[i], t.post[j] = t.post[j], t.post[i]
	}

	for _, n := range t.nodes {
		n.owner = t
	}

	return t, nil
}

// MustNew is New for fixtures; it panics on error.
func MustNew(root *Node) *Tree {
	t, err := New(root)
	if err != nil {
		panic(err)
	}
	return t
}
