// Package domaintree implements a red-black tree of hierarchical domain
// names. Each level of the name hierarchy is its own red-black tree keyed on
// a LabelSequence; a node's down link leads to the tree of its immediate
// sub-labels. Nodes are created on insert and may be split ("fission") when
// a later insert's name turns out to be an ancestor of an already-present
// node.
//
// The reference implementation this is grounded on uses raw intrusive
// pointers for node links. Here every link is an integer handle into a
// Tree's node arena, which keeps the fission and rotation algorithms
// unchanged while removing the need for unsafe pointer aliasing.
package domaintree

import "github.com/joshuafuller/dnswire/name"

// NodeRef is a handle into a Tree's node arena. The zero value (NilRef) is
// the null sentinel: it never indexes a real node.
type NodeRef int32

// NilRef is the null node handle.
const NilRef NodeRef = 0

// node is one arena slot. left/right/parent/down are handles to other slots
// in the same Tree, or NilRef.
type node[T any] struct {
	left, right, parent, down NodeRef

	black       bool
	subtreeRoot bool
	callback    bool
	wildcard    bool

	name  name.LabelSequence
	value T
	has   bool
}

// Tree is a red-black tree of hierarchical domain names, value type T.
type Tree[T any] struct {
	nodes []node[T]
	root  NodeRef
	count int
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{nodes: make([]node[T], 1)}
}

// Len reports the number of nodes currently in the tree, non-terminals
// included.
func (t *Tree[T]) Len() int { return t.count }

func (t *Tree[T]) alloc(n node[T]) NodeRef {
	t.nodes = append(t.nodes, n)
	return NodeRef(len(t.nodes) - 1)
}

func (t *Tree[T]) isNull(r NodeRef) bool { return r == NilRef }

func (t *Tree[T]) left(r NodeRef) NodeRef   { return t.nodes[r].left }
func (t *Tree[T]) right(r NodeRef) NodeRef  { return t.nodes[r].right }
func (t *Tree[T]) parent(r NodeRef) NodeRef { return t.nodes[r].parent }
func (t *Tree[T]) down(r NodeRef) NodeRef   { return t.nodes[r].down }

func (t *Tree[T]) setLeft(r, v NodeRef)   { t.nodes[r].left = v }
func (t *Tree[T]) setRight(r, v NodeRef)  { t.nodes[r].right = v }
func (t *Tree[T]) setParent(r, v NodeRef) { t.nodes[r].parent = v }
func (t *Tree[T]) setDown(r, v NodeRef)   { t.nodes[r].down = v }

// isBlack treats the null handle as black, matching the sentinel leaves of
// a standard red-black tree.
func (t *Tree[T]) isBlack(r NodeRef) bool {
	if t.isNull(r) {
		return true
	}
	return t.nodes[r].black
}
func (t *Tree[T]) isRed(r NodeRef) bool       { return !t.isBlack(r) }
func (t *Tree[T]) setBlack(r NodeRef, b bool) { t.nodes[r].black = b }

func (t *Tree[T]) isSubtreeRoot(r NodeRef) bool     { return t.nodes[r].subtreeRoot }
func (t *Tree[T]) setSubtreeRoot(r NodeRef, v bool) { t.nodes[r].subtreeRoot = v }
func (t *Tree[T]) isCallbackEnabled(r NodeRef) bool { return t.nodes[r].callback }

func (t *Tree[T]) grandParent(r NodeRef) NodeRef {
	p := t.parent(r)
	if t.isNull(p) {
		return NilRef
	}
	return t.parent(p)
}

// uncle returns the sibling of r's parent, under r's grandparent.
func (t *Tree[T]) uncle(r NodeRef) NodeRef {
	gp := t.grandParent(r)
	if t.isNull(gp) {
		return NilRef
	}
	if t.parent(r) == t.left(gp) {
		return t.right(gp)
	}
	return t.left(gp)
}

// sibling returns child's sibling under parent, or null if parent is null.
func (t *Tree[T]) sibling(parent, child NodeRef) NodeRef {
	if t.isNull(parent) {
		return NilRef
	}
	if t.left(parent) == child {
		return t.right(parent)
	}
	return t.left(parent)
}

// subtreeRootOf walks up from r until it finds the root of r's local
// red-black tree (the node whose subtreeRoot bit is set).
func (t *Tree[T]) subtreeRootOf(r NodeRef) NodeRef {
	for !t.isSubtreeRoot(r) {
		r = t.parent(r)
	}
	return r
}

// upperNode returns the node in the parent level whose down link owns r's
// subtree, or null if r's subtree is the tree's top level.
func (t *Tree[T]) upperNode(r NodeRef) NodeRef {
	root := t.subtreeRootOf(r)
	return t.parent(root)
}

// rootSlot abstracts "the storage cell holding the root of one local
// red-black tree": either the Tree's own root field (up == NilRef) or some
// node's down field. Rotations and the insert/remove fixups are written
// once against this abstraction so they work identically at the top level
// and inside any fissioned subtree.
type rootSlot[T any] struct {
	t  *Tree[T]
	up NodeRef
}

func (s rootSlot[T]) get() NodeRef {
	if s.up == NilRef {
		return s.t.root
	}
	return s.t.down(s.up)
}

func (s rootSlot[T]) set(v NodeRef) {
	if s.up == NilRef {
		s.t.root = v
	} else {
		s.t.setDown(s.up, v)
	}
}

// connectChild repoints whatever currently points at old (current's parent's
// left, right, or down link, or the root slot itself if current has no
// parent) to new instead.
func connectChild[T any](t *Tree[T], root rootSlot[T], current, old, newRef NodeRef) {
	p := t.parent(current)
	switch {
	case t.isNull(p):
		root.set(newRef)
	case t.left(p) == old:
		t.setLeft(p, newRef)
	case t.right(p) == old:
		t.setRight(p, newRef)
	default:
		t.setDown(p, newRef)
	}
}

func (t *Tree[T]) leftRotate(root rootSlot[T], x NodeRef) {
	y := t.right(x)
	t.setRight(x, t.left(y))
	if !t.isNull(t.left(y)) {
		t.setParent(t.left(y), x)
	}
	t.setParent(y, t.parent(x))
	if !t.isSubtreeRoot(x) {
		t.setSubtreeRoot(y, false)
		if x == t.left(t.parent(x)) {
			t.setLeft(t.parent(x), y)
		} else {
			t.setRight(t.parent(x), y)
		}
	} else {
		t.setSubtreeRoot(y, true)
		root.set(y)
	}
	t.setLeft(y, x)
	t.setParent(x, y)
	t.setSubtreeRoot(x, false)
}

func (t *Tree[T]) rightRotate(root rootSlot[T], x NodeRef) {
	y := t.left(x)
	t.setLeft(x, t.right(y))
	if !t.isNull(t.right(y)) {
		t.setParent(t.right(y), x)
	}
	t.setParent(y, t.parent(x))
	if !t.isSubtreeRoot(x) {
		t.setSubtreeRoot(y, false)
		if x == t.left(t.parent(x)) {
			t.setLeft(t.parent(x), y)
		} else {
			t.setRight(t.parent(x), y)
		}
	} else {
		t.setSubtreeRoot(y, true)
		root.set(y)
	}
	t.setRight(y, x)
	t.setParent(x, y)
	t.setSubtreeRoot(x, false)
}

// exchange swaps the tree positions of two arena slots: self and lower trade
// their left/right/parent links, color and subtreeRoot flag (down links stay
// with their own keys), and every neighbor that linked to one of them in
// that position now links to the other. Used by remove when a node being
// deleted has two children: the in-order predecessor (lower) takes self's
// place in the tree, and the larger subtree survives rather than being
// copied.
func exchange[T any](t *Tree[T], root rootSlot[T], self, lower NodeRef) {
	selfLeft, selfRight, selfParent := t.left(self), t.right(self), t.parent(self)
	lowerLeft, lowerRight, lowerParent := t.left(lower), t.right(lower), t.parent(lower)

	if lowerParent == self {
		lowerParent = lower
	}
	if selfParent == lower {
		selfParent = self
	}
	if selfLeft == lower {
		selfLeft = self
	}
	if selfRight == lower {
		selfRight = self
	}
	if lowerLeft == self {
		lowerLeft = lower
	}
	if lowerRight == self {
		lowerRight = lower
	}

	t.setLeft(self, lowerLeft)
	t.setRight(self, lowerRight)
	t.setParent(self, lowerParent)
	t.setLeft(lower, selfLeft)
	t.setRight(lower, selfRight)
	t.setParent(lower, selfParent)
	if lowerParent != lower {
		if t.left(lowerParent) == lower {
			t.setLeft(lowerParent, self)
		} else {
			t.setRight(lowerParent, self)
		}
	}

	selfBlack, lowerBlack := t.isBlack(self), t.isBlack(lower)
	t.setBlack(self, lowerBlack)
	t.setBlack(lower, selfBlack)

	selfSubtreeRoot, lowerSubtreeRoot := t.isSubtreeRoot(self), t.isSubtreeRoot(lower)
	t.setSubtreeRoot(self, lowerSubtreeRoot)
	t.setSubtreeRoot(lower, selfSubtreeRoot)

	connectChild(t, root, lower, self, lower)

	if !t.isNull(t.left(self)) {
		t.setParent(t.left(self), self)
	}
	if !t.isNull(t.right(self)) {
		t.setParent(t.right(self), self)
	}
	if !t.isNull(t.left(lower)) {
		t.setParent(t.left(lower), lower)
	}
	if !t.isNull(t.right(lower)) {
		t.setParent(t.right(lower), lower)
	}
}

// splitToParent carves parentLabelCount labels off the root-ward end of
// node's key into a brand new node, shrinking node's own key to whatever
// remains. The new node holds no value; it exists only to anchor node as
// its down-subtree root.
func (t *Tree[T]) splitToParent(n NodeRef, parentLabelCount int) NodeRef {
	seq := t.nodes[n].name
	total := seq.LabelCount() - 1 // real label count, root terminator excluded
	parentReal := parentLabelCount - 1
	childReal := total - parentReal

	parentSeq, err := seq.Split(childReal, parentReal)
	if err != nil {
		panic("domaintree: splitToParent: " + err.Error())
	}
	childSeq, err := seq.Split(0, childReal)
	if err != nil {
		panic("domaintree: splitToParent: " + err.Error())
	}
	t.nodes[n].name = childSeq
	return t.alloc(node[T]{name: parentSeq})
}

// extractLabelSequence carves the label range [first, last] (LabelSlice
// indices into full's own backing bytes) out of full as a standalone,
// root-terminated LabelSequence.
func extractLabelSequence(full name.Name, first, last int) (name.LabelSequence, error) {
	total := full.LabelCount()
	count := last - first + 1
	if last == total-1 {
		count--
	}
	n, err := full.Split(first, count)
	if err != nil {
		return name.LabelSequence{}, err
	}
	return name.NewLabelSequence(n), nil
}
