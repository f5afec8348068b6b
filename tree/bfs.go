package tree

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// queueItem pairs a node with its BFS distance from the source.
type queueItem struct {
	node *Node
	dist int
}

// Distances runs a breadth-first search over the undirected view of t
// (parent and children are neighbors) and returns the edge distance from
// `from` to every node, indexed by node ID.
//
// Complexity: O(V) time and space.
func (t *Tree) Distances(from *Node) ([]int, error) {
	if !t.Contains(from) {
		return nil, fmt.Errorf("Distances: %w", ErrForeignNode)
	}

	dist := make([]int, len(t.nodes))
	visited := make([]bool, len(t.nodes))
	queue := arrayqueue.New()

	visited[from.id] = true
	queue.Enqueue(queueItem{node: from})
	for !queue.Empty() {
		head, _ := queue.Dequeue()
		item := head.(queueItem)
		dist[item.node.id] = item.dist

		enqueue := func(nb *Node) {
			if nb == nil || visited[nb.id] {
				return
			}
			visited[nb.id] = true
			queue.Enqueue(queueItem{node: nb, dist: item.dist + 1})
		}
		enqueue(item.node.parent)
		for _, c := range item.node.children {
			enqueue(c)
		}
	}

	return dist, nil
}
