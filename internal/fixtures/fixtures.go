// Package fixtures builds the six rooted binary shapes on six leaves used
// across the test suites, plus a few multifurcating trees.
//
// Every non-root branch has length 1; the root carries no length.
package fixtures

import "github.com/katalvlaran/treeshape/tree"

func l(name string) *tree.Node { return tree.Leaf(name, tree.WithLength(1)) }

func in(children ...*tree.Node) *tree.Node { return tree.Inner(children...).SetLength(1) }

func root(children ...*tree.Node) *tree.Tree { return tree.MustNew(tree.Inner(children...)) }

// Fischer1 is the caterpillar (a,(b,(c,(d,(e,f))))).
func Fischer1() *tree.Tree {
	return root(l("a"), in(l("b"), in(l("c"), in(l("d"), in(l("e"), l("f"))))))
}

// Fischer2 is ((((a,b),(c,d)),e),f).
func Fischer2() *tree.Tree {
	return root(in(in(in(l("a"), l("b")), in(l("c"), l("d"))), l("e")), l("f"))
}

// Fischer3 is ((((a,b),c),(d,e)),f).
func Fischer3() *tree.Tree {
	return root(in(in(in(l("a"), l("b")), l("c")), in(l("d"), l("e"))), l("f"))
}

// Fischer4 is ((((a,b),c),d),(e,f)).
func Fischer4() *tree.Tree {
	return root(in(in(in(l("a"), l("b")), l("c")), l("d")), in(l("e"), l("f")))
}

// Fischer5 is (((a,b),(c,d)),(e,f)).
func Fischer5() *tree.Tree {
	return root(in(in(l("a"), l("b")), in(l("c"), l("d"))), in(l("e"), l("f")))
}

// Fischer6 is (((a,b),c),((d,e),f)), the most balanced shape on six leaves.
func Fischer6() *tree.Tree {
	return root(in(in(l("a"), l("b")), l("c")), in(in(l("d"), l("e")), l("f")))
}

// Fischer returns the six shapes in order, Fischer1 first.
func Fischer() []*tree.Tree {
	return []*tree.Tree{Fischer1(), Fischer2(), Fischer3(), Fischer4(), Fischer5(), Fischer6()}
}

// Mirror6 is Fischer6 with the children of every internal node swapped.
func Mirror6() *tree.Tree {
	return root(in(l("f"), in(l("e"), l("d"))), in(l("c"), in(l("b"), l("a"))))
}

// Single is the one-leaf tree.
func Single() *tree.Tree { return tree.MustNew(tree.Leaf("a")) }

// Star4 is the multifurcating (a,b,c,d).
func Star4() *tree.Tree { return root(l("a"), l("b"), l("c"), l("d")) }

// Mixed is ((a,b,c),(d,e)), multifurcating below the root.
func Mixed() *tree.Tree {
	return root(in(l("a"), l("b"), l("c")), in(l("d"), l("e")))
}
