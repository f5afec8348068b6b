package tree_test

import (
	"fmt"

	"github.com/katalvlaran/treeshape/tree"
)

// ExampleNew assembles ((a,b),c) bottom-up and walks it in postorder.
func ExampleNew() {
	root := tree.Inner(
		tree.Inner(tree.Leaf("a"), tree.Leaf("b")),
		tree.Leaf("c"),
	)
	t, err := tree.New(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(t.Len(), t.NumNodes())
	fmt.Println(t)
	// Output:
	// 3 5
	// ((a,b),c);
}

// ExampleBalanced builds the most balanced shape on six leaves.
func ExampleBalanced() {
	t, _ := tree.Balanced(6)
	fmt.Println(t)
	// Output:
	// (((t0,t1),t2),((t3,t4),t5));
}

// ExampleLoad caches a derived attribute on the tree's memo.
func ExampleLoad() {
	t, _ := tree.Caterpillar(4)
	inner := func() int { return t.NumNodes() - t.Len() }

	fmt.Println(tree.Load(t.Memo(), "inner_nodes", inner))
	fmt.Println(t.Memo().Computations("inner_nodes"))
	// Output:
	// 3
	// 1
}
