package tree

import (
	"strconv"
	"strings"
)

// String renders the tree in parenthesised form, e.g. "((a:1,b:1):1,c:1);".
// Inner node names and branch lengths are printed when set.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Walk(
		WithOnVisit(func(n *Node) error {
			if n.parent != nil && n.rank > 0 {
				sb.WriteByte(',')
			}
			if !n.IsLeaf() {
				sb.WriteByte('(')
			}
			return nil
		}),
		WithOnExit(func(n *Node) error {
			if !n.IsLeaf() {
				sb.WriteByte(')')
			}
			sb.WriteString(n.name)
			if n.hasLength {
				sb.WriteByte(':')
				sb.WriteString(strconv.FormatFloat(n.length, 'g', -1, 64))
			}
			return nil
		}),
	)
	sb.WriteByte(';')
	return sb.String()
}
