package domaintree

import "github.com/joshuafuller/dnswire/name"

// FindResultFlag classifies the outcome of Find/FindNode.
type FindResultFlag int

const (
	// NotFound means no node on the search path matched or partially
	// matched the target name.
	NotFound FindResultFlag = iota
	// ExactMatch means a node's key equals the target name exactly.
	ExactMatch
	// PartialMatch means the target name itself was not found, and Node is
	// the deepest ancestor of it that holds a value (or the node at which a
	// callback stopped the descent).
	PartialMatch
)

// FindResult is the outcome of a Find/FindNode call.
type FindResult[T any] struct {
	tree *Tree[T]
	Node NodeRef
	Flag FindResultFlag
}

// Value returns the matched node's value, and whether it has one. A
// non-terminal node (created only to anchor children during fission) has
// no value even when Flag is ExactMatch.
func (r FindResult[T]) Value() (T, bool) {
	if r.Flag == NotFound {
		var zero T
		return zero, false
	}
	n := &r.tree.nodes[r.Node]
	return n.value, n.has
}

// Insert adds target to the tree with value v, or overwrites the value of
// an existing node whose key equals target. It returns the node, the
// previous value (if any), and whether a previous value existed.
//
// Descent compares target against each node's key with LabelSlice.Compare:
// an Equal match overwrites the value in place; a None match (no relation)
// continues the ordinary binary-search descent left or right; a SubDomain
// match (the current node is an ancestor of target) strips the matched
// labels and descends into the current node's down subtree; any other
// relation (the current node is a subdomain of target, or they share a
// common proper suffix) triggers node fission before the descent
// continues from the newly split-off ancestor.
func (t *Tree[T]) Insert(target name.Name, v T) (NodeRef, T, bool) {
	parent, up := NilRef, NilRef
	current := t.root
	order := -1
	targetSlice := target.Slice()

	for !t.isNull(current) {
		currentSlice := t.nodes[current].name.Slice()
		if !t.isNull(up) {
			// Keys below the top level are relative to their upper node:
			// their root terminator takes no part in the comparison.
			currentSlice.StripRight(1)
		}
		cmp := targetSlice.Compare(currentSlice, false)
		switch cmp.Relation {
		case name.RelationEqual:
			old := t.nodes[current].value
			hadOld := t.nodes[current].has
			t.nodes[current].value = v
			t.nodes[current].has = true
			return current, old, hadOld
		case name.RelationNone:
			parent = current
			order = cmp.Order
			if order < 0 {
				current = t.left(current)
			} else {
				current = t.right(current)
			}
		case name.RelationSubDomain:
			parent = NilRef
			up = current
			targetSlice.StripRight(cmp.CommonLabelCount)
			current = t.down(current)
		default: // RelationSuperDomain, RelationCommonAncestor
			common := cmp.CommonLabelCount
			if !t.isNull(up) {
				common++ // nodeFission's count includes the root terminator
			}
			current = t.nodeFission(current, common)
		}
	}

	root := rootSlot[T]{t: t, up: up}
	seq, err := extractLabelSequence(target, targetSlice.FirstLabel(), targetSlice.LastLabel())
	if err != nil {
		panic("domaintree: Insert: " + err.Error())
	}
	t.count++
	n := t.alloc(node[T]{name: seq, value: v, has: true, parent: parent})

	switch {
	case t.isNull(parent):
		root.set(n)
		t.setBlack(n, true)
		t.setSubtreeRoot(n, true)
		t.setParent(n, up)
	case order < 0:
		t.setSubtreeRoot(n, false)
		t.setLeft(parent, n)
		t.insertFixup(root, n)
	default:
		t.setSubtreeRoot(n, false)
		t.setRight(parent, n)
		t.insertFixup(root, n)
	}

	var zero T
	return n, zero, false
}

// nodeFission splits low's key at the common-label boundary (the trailing
// parentLabelCount labels), introducing a new parent node holding the
// shared suffix. low keeps its remaining labels and becomes the down
// subtree root beneath the new parent, inheriting low's old tree position
// (color, parent link, children, subtree-root-ness). Returns the new
// parent node.
func (t *Tree[T]) nodeFission(low NodeRef, parentLabelCount int) NodeRef {
	up := t.splitToParent(low, parentLabelCount)
	t.setParent(up, t.parent(low))
	connectChild(t, rootSlot[T]{t: t}, low, low, up)

	t.setDown(up, low)
	t.setParent(low, up)

	t.setLeft(up, t.left(low))
	if !t.isNull(t.left(low)) {
		t.setParent(t.left(low), up)
	}
	t.setRight(up, t.right(low))
	if !t.isNull(t.right(low)) {
		t.setParent(t.right(low), up)
	}
	t.setLeft(low, NilRef)
	t.setRight(low, NilRef)

	t.setBlack(up, t.isBlack(low))
	t.setBlack(low, true)
	t.setSubtreeRoot(up, t.isSubtreeRoot(low))
	t.setSubtreeRoot(low, true)

	t.count++
	return up
}

func (t *Tree[T]) insertFixup(root rootSlot[T], n NodeRef) {
	node := n
	for node != root.get() {
		parent := t.parent(node)
		if t.isBlack(parent) {
			break
		}
		uncle := t.uncle(node)
		grandParent := t.grandParent(node)
		if !t.isNull(uncle) && t.isRed(uncle) {
			t.setBlack(parent, true)
			t.setBlack(uncle, true)
			t.setBlack(grandParent, false)
			node = grandParent
			continue
		}
		if node == t.right(parent) && parent == t.left(grandParent) {
			node = parent
			t.leftRotate(root, parent)
		} else if node == t.left(parent) && parent == t.right(grandParent) {
			node = parent
			t.rightRotate(root, parent)
		}
		parent = t.parent(node)
		t.setBlack(parent, true)
		t.setBlack(grandParent, false)
		if node == t.left(parent) {
			t.rightRotate(root, grandParent)
		} else {
			t.leftRotate(root, grandParent)
		}
		break
	}
	t.setBlack(root.get(), true)
}

// Find walks the tree looking for target, with no callback hook.
func (t *Tree[T]) Find(target name.Name) FindResult[T] {
	chain := NewNodeChain(t)
	return t.FindNode(target, chain)
}

// FindNode is Find, threading an explicit NodeChain so callers can
// reconstruct the absolute name of the matched node afterward.
func (t *Tree[T]) FindNode(target name.Name, chain *NodeChain[T]) FindResult[T] {
	return FindNodeExt[T, struct{}](t, target, chain, nil, nil)
}

// FindNodeExt is FindNode with a callback hook: when the descent enters a
// subtree whose root node has its callback bit set, callback is invoked
// with the node, the reconstructed absolute name at that point, and param.
// If callback returns true, the descent stops immediately and a
// PartialMatch is reported at that node. Go methods cannot carry their own
// type parameters, so this variant is a free function parameterized over
// both the tree's value type and the callback's param type.
func FindNodeExt[T, P any](t *Tree[T], target name.Name, chain *NodeChain[T], callback func(NodeRef, name.Name, *P) bool, param *P) FindResult[T] {
	node, up := t.root, NilRef
	result := FindResult[T]{tree: t, Flag: NotFound}
	targetSlice := target.Slice()

	for !t.isNull(node) {
		currentSlice := t.nodes[node].name.Slice()
		if !t.isNull(up) {
			currentSlice.StripRight(1)
		}
		chain.lastCompared = node
		chain.lastResult = targetSlice.Compare(currentSlice, false)
		switch chain.lastResult.Relation {
		case name.RelationEqual:
			chain.push(node)
			result.Flag = ExactMatch
			result.Node = node
			return result
		case name.RelationNone:
			if chain.lastResult.Order < 0 {
				node = t.left(node)
			} else {
				node = t.right(node)
			}
		case name.RelationSubDomain:
			if t.nodes[node].has {
				result.Flag = PartialMatch
				result.Node = node
			}
			if t.isCallbackEnabled(node) && callback != nil {
				absolute, err := chain.GetAbsoluteName(t.nodes[node].name)
				if err == nil && callback(node, absolute, param) {
					result.Flag = PartialMatch
					result.Node = node
					return result
				}
			}
			chain.push(node)
			targetSlice.StripRight(chain.lastResult.CommonLabelCount)
			up = node
			node = t.down(node)
		default: // RelationSuperDomain, RelationCommonAncestor
			return result
		}
	}
	return result
}

// Remove deletes the node matching name, if any, and returns its value.
func (t *Tree[T]) Remove(target name.Name) (T, bool) {
	result := t.Find(target)
	if result.Flag != ExactMatch || t.isNull(result.Node) {
		var zero T
		return zero, false
	}
	return t.RemoveNode(result.Node)
}

// RemoveNode clears n's value and, if n has become a leafless,
// non-terminal node, physically removes it (and cascades the same check
// up the down-chain for every ancestor that becomes leafless and
// valueless in turn).
func (t *Tree[T]) RemoveNode(n NodeRef) (T, bool) {
	old := t.nodes[n].value
	hadOld := t.nodes[n].has
	var zero T
	t.nodes[n].value = zero
	t.nodes[n].has = false

	if !t.isNull(t.down(n)) {
		return old, hadOld
	}

	node := n
	for {
		up := t.upperNode(node)

		if !t.isNull(t.left(node)) && !t.isNull(t.right(node)) {
			rightMost := t.left(node)
			for !t.isNull(t.right(rightMost)) {
				rightMost = t.right(rightMost)
			}
			exchange(t, rootSlot[T]{t: t}, node, rightMost)
		}

		var child NodeRef
		if !t.isNull(t.right(node)) {
			child = t.right(node)
		} else {
			child = t.left(node)
		}

		connectChild(t, rootSlot[T]{t: t}, node, node, child)

		if !t.isNull(child) {
			t.setParent(child, t.parent(node))
			if t.isNull(t.parent(child)) || t.down(t.parent(child)) == child {
				t.setSubtreeRoot(child, t.isSubtreeRoot(node))
			}
		}

		if t.isBlack(node) {
			if !t.isNull(child) && t.isRed(child) {
				t.setBlack(child, true)
			} else {
				root := rootSlot[T]{t: t, up: up}
				t.removeFixup(root, child, t.parent(node))
			}
		}

		t.count--

		if t.isNull(up) || t.nodes[up].has || !t.isNull(t.down(up)) {
			break
		}
		node = up
	}

	return old, hadOld
}

func (t *Tree[T]) removeFixup(root rootSlot[T], child, parent NodeRef) {
	for child != root.get() && t.isBlack(child) {
		if !t.isNull(parent) && t.down(parent) == root.get() {
			break
		}

		sibling := t.sibling(parent, child)
		if t.isRed(sibling) {
			t.setBlack(parent, false)
			t.setBlack(sibling, true)
			if t.left(parent) == child {
				t.leftRotate(root, parent)
			} else {
				t.rightRotate(root, parent)
			}
			sibling = t.sibling(parent, child)
		}

		if t.isBlack(t.left(sibling)) && t.isBlack(t.right(sibling)) {
			t.setBlack(sibling, false)
			if t.isBlack(parent) {
				child = parent
				parent = t.parent(parent)
				continue
			}
			t.setBlack(parent, true)
			break
		}

		ss1, ss2 := t.left(sibling), t.right(sibling)
		if t.left(parent) != child {
			ss1, ss2 = ss2, ss1
		}

		if t.isBlack(ss2) {
			t.setBlack(sibling, false)
			t.setBlack(ss1, true)
			if t.left(parent) == child {
				t.rightRotate(root, sibling)
			} else {
				t.leftRotate(root, sibling)
			}
			sibling = t.sibling(parent, child)
		}

		t.setBlack(sibling, t.isBlack(parent))
		t.setBlack(parent, true)
		ss1, ss2 = t.left(sibling), t.right(sibling)
		if t.left(parent) != child {
			ss1, ss2 = ss2, ss1
		}
		t.setBlack(ss2, true)
		if t.left(parent) == child {
			t.leftRotate(root, parent)
		} else {
			t.rightRotate(root, parent)
		}
		break
	}
}

// Clear empties the tree.
func (t *Tree[T]) Clear() {
	t.nodes = make([]node[T], 1)
	t.root = NilRef
	t.count = 0
}

// SetCallback marks or unmarks n as callback-enabled: FindNodeExt invokes
// its callback whenever the descent passes through n's subtree.
func (t *Tree[T]) SetCallback(n NodeRef, enabled bool) { t.nodes[n].callback = enabled }

// IsCallbackEnabled reports whether n is callback-enabled.
func (t *Tree[T]) IsCallbackEnabled(n NodeRef) bool { return t.nodes[n].callback }

// SetWildcard marks or unmarks n as a wildcard node.
func (t *Tree[T]) SetWildcard(n NodeRef, wildcard bool) { t.nodes[n].wildcard = wildcard }

// IsWildcard reports whether n is a wildcard node.
func (t *Tree[T]) IsWildcard(n NodeRef) bool { return t.nodes[n].wildcard }

// Name returns n's key, the LabelSequence it was inserted or fissioned
// with.
func (t *Tree[T]) Name(n NodeRef) name.LabelSequence { return t.nodes[n].name }

// Value returns n's value, and whether it has one.
func (t *Tree[T]) Value(n NodeRef) (T, bool) { return t.nodes[n].value, t.nodes[n].has }
