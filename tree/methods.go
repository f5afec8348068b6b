// File: methods.go
// Role: read-only queries over a frozen Tree and its nodes.
// Determinism:
//   - Nodes() is preorder, Postorder() is postorder, Leaves() keeps preorder order.
//   - Returned slices are shared with the tree; callers must not modify them.

package tree

import "fmt"

// Name returns the node label (may be empty).
func (n *Node) Name() string { return n.name }

// ID returns the preorder index of a frozen node, or -1 before New.
func (n *Node) ID() int { return n.id }

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered children.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the arity of the node.
func (n *Node) NumChildren() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// BranchLength returns the length leading into the node; ok is false when unset,
// in which case the returned length is 0.
func (n *Node) BranchLength() (length float64, ok bool) { return n.length, n.hasLength }

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.leaves) }

// NumNodes returns the number of nodes, leaves included.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Nodes returns all nodes in preorder; Nodes()[i].ID() == i.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Postorder returns all nodes in postorder (children before parents).
func (t *Tree) Postorder() []*Node { return t.post }

// Leaves returns the leaves in preorder order.
func (t *Tree) Leaves() []*Node { return t.leaves }

// Node returns the node with the given preorder ID.
func (t *Tree) Node(id int) (*Node, error) {
	if id < 0 || id >= len(t.nodes) {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrForeignNode)
	}
	return t.nodes[id], nil
}

// Memo returns the tree's memo side table.
func (t *Tree) Memo() *Memo { return t.memo }

// Contains reports whether n belongs to t.
func (t *Tree) Contains(n *Node) bool { return n != nil && n.owner == t }

// LCA returns the lowest common ancestor of a and b.
//
// Implementation:
//   - Stage 1: mark every ancestor of a (a included).
//   - Stage 2: climb from b until a marked node is met.
//
// Complexity: O(depth(a) + depth(b)) time, O(depth(a)) space.
func (t *Tree) LCA(a, b *Node) (*Node, error) {
	if !t.Contains(a) || !t.Contains(b) {
		return nil, fmt.Errorf("LCA: %w", ErrForeignNode)
	}
	marked := make(map[int]struct{})
	for v := a; v != nil; v = v.parent {
		marked[v.id] = struct{}{}
	}
	for v := b; v != nil; v = v.parent {
		if _, ok := marked[v.id]; ok {
			return v, nil
		}
	}
	// unreachable for nodes of the same tree
	return t.root, nil
}
