package name

// LabelSequence is an owned label sequence produced by splitting a Name. It
// shares Name's wire representation; the domain tree uses it as a node key
// because node keys are frequently a mid-slice of some larger name rather
// than a complete absolute name.
type LabelSequence struct {
	raw     []byte
	offsets []byte
}

// NewLabelSequence copies n's backing bytes into a standalone sequence.
func NewLabelSequence(n Name) LabelSequence {
	raw := make([]byte, len(n.raw))
	copy(raw, n.raw)
	offsets := make([]byte, len(n.offsets))
	copy(offsets, n.offsets)
	return LabelSequence{raw: raw, offsets: offsets}
}

// AsName reinterprets the sequence as a Name; valid because both types share
// wire representation and invariants.
func (ls LabelSequence) AsName() Name { return Name{raw: ls.raw, offsets: ls.offsets} }

func (ls LabelSequence) Slice() LabelSlice {
	return LabelSlice{data: ls.raw, offsets: ls.offsets, first: 0, last: len(ls.offsets) - 1}
}

func (ls LabelSequence) LabelCount() int { return len(ls.offsets) }
func (ls LabelSequence) Len() int        { return len(ls.raw) }

// Split mirrors Name.Split.
func (ls LabelSequence) Split(startLabel, count int) (LabelSequence, error) {
	n, err := ls.AsName().Split(startLabel, count)
	if err != nil {
		return LabelSequence{}, err
	}
	return NewLabelSequence(n), nil
}

// Compare mirrors Name.GetRelation, operating over the owned bytes.
func (ls LabelSequence) Compare(other LabelSequence, caseSensitive bool) ComparisonResult {
	return ls.Slice().Compare(other.Slice(), caseSensitive)
}

func (ls LabelSequence) String() string { return ls.Slice().String() }

// Concat appends suffix's labels after ls's, matching Name.Concat.
func (ls LabelSequence) Concat(suffix LabelSequence) (LabelSequence, error) {
	n, err := ls.AsName().Concat(suffix.AsName())
	if err != nil {
		return LabelSequence{}, err
	}
	return NewLabelSequence(n), nil
}
