// Package tree: walk.go implements hook-driven depth-first walks over a frozen Tree.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithOnVisit(fn)    pre-order hook; error aborts the walk.
//   - WithOnExit(fn)     post-order hook after all children; error aborts the walk.
//
// Errors:
//
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped with the node name.
package tree

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the hooks and context of a walk.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is entered (pre-order).
	OnVisit func(n *Node) error

	// OnExit, if non-nil, is invoked after all children were walked (post-order).
	OnExit func(n *Node) error
}

// DefaultWalkOptions returns a background context and no hooks.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{Ctx: context.Background()}
}

// WithContext sets the walk context. A nil context keeps Background.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(n *Node) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(n *Node) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// frame is one pending step of the iterative walk.
type frame struct {
	node *Node
	exit bool
}

// Walk traverses t depth-first from the root, calling OnVisit on entry and
// OnExit after the last child. The walk is iterative, so degenerate
// caterpillars with very deep paths do not grow the goroutine stack.
//
// Complexity: O(V) plus hook cost.
func (t *Tree) Walk(opts ...WalkOption) error {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stack := arraystack.New()
	stack.Push(frame{node: t.root})
	for !stack.Empty() {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		top, _ := stack.Pop()
		f := top.(frame)
		if f.exit {
			if o.OnExit != nil {
				if err := o.OnExit(f.node); err != nil {
					return fmt.Errorf("tree: OnExit hook for %q: %w", f.node.name, err)
				}
			}
			continue
		}

		if o.OnVisit != nil {
			if err := o.OnVisit(f.node); err != nil {
				return fmt.Errorf("tree: OnVisit hook for %q: %w", f.node.name, err)
			}
		}
		stack.Push(frame{node: f.node, exit: true})
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack.Push(frame{node: f.node.children[i]})
		}
	}

	return nil
}
