// Command treeshape evaluates tree-shape indices from the command line.
//
//	treeshape catalog
//	treeshape bounds --leaves 16
//	treeshape eval --shape yule --leaves 32 --seed 7 --kind relative
//	treeshape sweep --shape caterpillar --from 4 --to 64 --index sackin_index
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
