package name

import "github.com/joshuafuller/dnswire/internal/dnserr"

// labels returns every real (non-root) label's byte content, in order.
func (n Name) labels() [][]byte {
	out := make([][]byte, 0, len(n.offsets)-1)
	for i := 0; i < len(n.offsets)-1; i++ {
		start := int(n.offsets[i])
		l := int(n.raw[start])
		out = append(out, n.raw[start+1:start+1+l])
	}
	return out
}

// realLabelCount is the label count excluding the root terminator.
func (n Name) realLabelCount() int { return n.LabelCount() - 1 }

// String renders n in RFC 1035 presentation form.
func (n Name) String() string { return n.Slice().String() }

// Hash returns a case-folded hash over n's labels. Two names that
// GetRelation reports as Equal hash equal.
func (n Name) Hash() uint32 { return n.Slice().Hash(false) }

// GetRelation compares n and other right-anchored, case-insensitively by
// default.
func (n Name) GetRelation(other Name, caseSensitive bool) ComparisonResult {
	return n.Slice().Compare(other.Slice(), caseSensitive)
}

// Concat appends suffixes to n in order, rebuilding a single well-formed
// name. The result fails with TooLongName if the combined label/byte
// ceilings are exceeded.
func (n Name) Concat(suffixes ...Name) (Name, error) {
	const op = "name.Concat"
	labels := n.labels()
	for _, s := range suffixes {
		labels = append(labels, s.labels()...)
	}
	return fromLabels(labels, op)
}

// Reverse returns n with its labels in back-to-front order (still
// terminated by the root label).
func (n Name) Reverse() (Name, error) {
	const op = "name.Reverse"
	src := n.labels()
	rev := make([][]byte, len(src))
	for i, l := range src {
		rev[len(src)-1-i] = l
	}
	return fromLabels(rev, op)
}

// Split returns the count labels starting at startLabel (indices over the
// real, non-root labels), re-terminated with the root label.
func (n Name) Split(startLabel, count int) (Name, error) {
	const op = "name.Split"
	total := n.realLabelCount()
	if startLabel < 0 || count < 0 || startLabel+count > total {
		return Name{}, dnserr.New(dnserr.KindInvalidLabelIndex, op)
	}
	labels := n.labels()[startLabel : startLabel+count]
	return fromLabels(labels, op)
}

// Parent returns the name formed by dropping the leftmost level labels,
// i.e. the ancestor level labels up from n.
func (n Name) Parent(level int) (Name, error) {
	total := n.realLabelCount()
	if level < 0 || level > total {
		return Name{}, dnserr.New(dnserr.KindInvalidLabelIndex, "name.Parent")
	}
	return n.Split(level, total-level)
}

// StripLeft drops the leftmost count labels.
func (n Name) StripLeft(count int) (Name, error) {
	total := n.realLabelCount()
	if count < 0 || count >= n.LabelCount() {
		return Name{}, dnserr.New(dnserr.KindInvalidLabelIndex, "name.StripLeft")
	}
	return n.Split(count, total-count)
}

// StripRight drops the rightmost (root-adjacent) count labels.
func (n Name) StripRight(count int) (Name, error) {
	total := n.realLabelCount()
	if count < 0 || count >= n.LabelCount() {
		return Name{}, dnserr.New(dnserr.KindInvalidLabelIndex, "name.StripRight")
	}
	return n.Split(0, total-count)
}

// IsSubdomain reports whether n is parent or a strict descendant of parent,
// right-anchored and case-insensitive.
func (n Name) IsSubdomain(parent Name) bool {
	rel := n.GetRelation(parent, false).Relation
	return rel == RelationSubDomain || rel == RelationEqual
}

// Equal reports whether n and other compare case-insensitively equal.
func (n Name) Equal(other Name) bool {
	return n.GetRelation(other, false).Relation == RelationEqual
}
