package name

import (
	"bytes"
	"fmt"
)

// Relation classifies how two names relate to each other, right-anchored.
type Relation int

const (
	RelationNone Relation = iota
	RelationSuperDomain
	RelationSubDomain
	RelationEqual
	RelationCommonAncestor
)

// ComparisonResult is the outcome of comparing two names or label slices.
type ComparisonResult struct {
	// Order is the signed lexicographic order of the compared values
	// (negative, zero, or positive).
	Order int
	// CommonLabelCount is how many labels matched from the right.
	CommonLabelCount int
	Relation         Relation
}

// LabelSlice is a zero-copy, contiguous view over a label range
// [first, last] of a Name's or LabelSequence's backing bytes. Narrowing
// (StripLeft/StripRight) never reallocates.
type LabelSlice struct {
	data    []byte
	offsets []byte
	first   int
	last    int
}

// Slice returns a LabelSlice covering n in full.
func (n Name) Slice() LabelSlice {
	return LabelSlice{data: n.raw, offsets: n.offsets, first: 0, last: len(n.offsets) - 1}
}

func (s LabelSlice) FirstLabel() int { return s.first }
func (s LabelSlice) LastLabel() int  { return s.last }
func (s LabelSlice) LabelCount() int { return s.last - s.first + 1 }

// Len returns the byte length spanned by the slice, the terminating label
// (root zero octet or otherwise) included.
func (s LabelSlice) Len() int {
	lastLabelLen := int(s.data[s.offsets[s.last]]) + 1
	return int(s.offsets[s.last]) - int(s.offsets[s.first]) + lastLabelLen
}

func (s LabelSlice) IsEmpty() bool { return s.Len() == 0 }

// Data returns the byte range backing the slice.
func (s LabelSlice) Data() []byte {
	start := int(s.offsets[s.first])
	return s.data[start : start+s.Len()]
}

func (s LabelSlice) Equals(other LabelSlice, caseSensitive bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	if caseSensitive {
		return bytes.Equal(s.Data(), other.Data())
	}
	a, b := s.Data(), other.Data()
	for i := range a {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}

// Compare implements the right-anchored label-by-label comparison shared by
// Name.GetRelation and the domain tree's insert/find descent.
func (s LabelSlice) Compare(other LabelSlice, caseSensitive bool) ComparisonResult {
	nlabels := 0
	l1, l2 := s.LabelCount(), other.LabelCount()
	ldiff := l1 - l2
	l := l1
	if l2 < l {
		l = l2
	}

	for l > 0 {
		l--
		l1--
		l2--
		pos1 := int(s.offsets[l1+s.first])
		pos2 := int(other.offsets[l2+other.first])
		count1 := int(s.data[pos1])
		count2 := int(other.data[pos2])
		pos1++
		pos2++
		cdiff := count1 - count2
		count := count1
		if count2 < count {
			count = count2
		}

		for count > 0 {
			b1, b2 := s.data[pos1], other.data[pos2]
			if !caseSensitive {
				b1, b2 = lowerByte(b1), lowerByte(b2)
			}
			if b1 != b2 {
				relation := RelationCommonAncestor
				if nlabels == 0 {
					relation = RelationNone
				}
				return ComparisonResult{Order: int(b1) - int(b2), CommonLabelCount: nlabels, Relation: relation}
			}
			count--
			pos1++
			pos2++
		}

		if cdiff != 0 {
			relation := RelationCommonAncestor
			if nlabels == 0 {
				relation = RelationNone
			}
			return ComparisonResult{Order: cdiff, CommonLabelCount: nlabels, Relation: relation}
		}
		nlabels++
	}

	relation := RelationEqual
	if ldiff < 0 {
		relation = RelationSuperDomain
	} else if ldiff > 0 {
		relation = RelationSubDomain
	}
	return ComparisonResult{Order: ldiff, CommonLabelCount: nlabels, Relation: relation}
}

// StripLeft discards the leftmost index labels (the least-significant /
// outermost labels in presentation order), narrowing in place. O(1): it
// never reallocates.
func (s *LabelSlice) StripLeft(index int) {
	if index >= s.LabelCount() {
		panic("name: StripLeft index out of range")
	}
	s.first += index
}

// StripRight discards the rightmost index labels (the root-ward end),
// narrowing in place. O(1): it never reallocates.
func (s *LabelSlice) StripRight(index int) {
	if index >= s.LabelCount() {
		panic("name: StripRight index out of range")
	}
	s.last -= index
}

var specialChar = [...]byte{0x22, 0x28, 0x29, 0x2e, 0x3b, 0x5c, 0x40, 0x24} // " ( ) . ; \ @ $

func isSpecial(c byte) bool {
	for _, sc := range specialChar {
		if sc == c {
			return true
		}
	}
	return false
}

// String renders the slice in RFC 1035 presentation form, escaping the
// reserved punctuation bytes as `\c` and bytes outside printable ASCII as
// `\DDD`.
func (s LabelSlice) String() string {
	var buf bytes.Buffer
	data := s.Data()
	i := 0
	for i < len(data) {
		count := data[i]
		i++
		if count == 0 {
			buf.WriteByte('.')
			break
		}
		if buf.Len() != 0 {
			buf.WriteByte('.')
		}
		for ; count > 0; count-- {
			c := data[i]
			i++
			switch {
			case isSpecial(c):
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c > 0x20 && c < 0x7f:
				buf.WriteByte(c)
			default:
				fmt.Fprintf(&buf, "\\%03d", c)
			}
		}
	}
	return buf.String()
}

// fnvHashSeed mirrors the case-folded hash used by Name.Hash: a one-at-a-time
// style mix, not the canonical FNV constant, matching the reference codec.
const fnvHashSeed uint32 = 0x9e3779b9

// Hash returns a case-folded hash over the slice's raw bytes. Two slices
// that Equal (with the same case-sensitivity) hash equal.
func (s LabelSlice) Hash(caseSensitive bool) uint32 {
	var h uint32
	for _, b := range s.Data() {
		if !caseSensitive {
			b = lowerByte(b)
		}
		h ^= (uint32(b) + fnvHashSeed + (h << 6) + (h >> 2))
	}
	return h
}
