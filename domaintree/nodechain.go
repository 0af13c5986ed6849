package domaintree

import "github.com/joshuafuller/dnswire/name"

// NodeChain is a fixed-capacity stack of the nodes traversed across subtree
// boundaries during a Find, deepest last. It lets a caller reconstruct the
// absolute name of whatever node the search stopped at.
type NodeChain[T any] struct {
	tree *Tree[T]

	nodes [name.MaxLabels]NodeRef
	count int

	lastCompared NodeRef
	lastResult   name.ComparisonResult
}

// NewNodeChain returns an empty chain bound to t.
func NewNodeChain[T any](t *Tree[T]) *NodeChain[T] {
	return &NodeChain[T]{tree: t}
}

func (c *NodeChain[T]) push(n NodeRef) {
	c.nodes[c.count] = n
	c.count++
}

// Len reports how many levels the chain currently holds.
func (c *NodeChain[T]) Len() int { return c.count }

// Top returns the most recently pushed node.
func (c *NodeChain[T]) Top() NodeRef { return c.nodes[c.count-1] }

// Bottom returns the first node pushed (the top-level ancestor).
func (c *NodeChain[T]) Bottom() NodeRef { return c.nodes[0] }

// GetAbsoluteName concatenates child with the key of every node on the
// chain, deepest first, reconstructing the full name that child is a
// mid-tree key fragment of.
func (c *NodeChain[T]) GetAbsoluteName(child name.LabelSequence) (name.Name, error) {
	result := child.AsName()
	for i := c.count - 1; i >= 0; i-- {
		var err error
		result, err = result.Concat(c.tree.nodes[c.nodes[i]].name.AsName())
		if err != nil {
			return name.Name{}, err
		}
	}
	return result, nil
}
