// Package name implements the DNS domain name codec: textual parsing, wire
// encoding/decoding with compression-pointer support, comparison, hashing,
// and the structural operations (concat, split, strip, parent) that the
// domain tree and RDATA codecs build on.
package name

import (
	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
)

const (
	// MaxLabelLen is the largest number of octets a single label may carry.
	MaxLabelLen = 63
	// MaxLabels is the largest number of labels a name may carry, root
	// label included.
	MaxLabels = 128
	// MaxWireLen is the largest wire-form length, root terminator included.
	MaxWireLen = 255
	// MaxCompressPointer is the largest offset a compression pointer can
	// address with its 14 usable bits.
	MaxCompressPointer = 0x3fff

	compressMask = 0xc0
)

// Name is an immutable, fully-qualified sequence of labels. raw holds the
// wire form (len, bytes, len, bytes, ..., 0); offsets holds the start
// position of each label (including the final zero-length root label)
// within raw.
type Name struct {
	raw     []byte
	offsets []byte
}

// Root returns the name consisting solely of the root label.
func Root() Name {
	return Name{raw: []byte{0}, offsets: []byte{0}}
}

// RawData returns the wire-form bytes backing n. Callers must not mutate it.
func (n Name) RawData() []byte { return n.raw }

// Offsets returns the per-label start offsets backing n. Callers must not
// mutate it.
func (n Name) Offsets() []byte { return n.offsets }

// Len returns the wire-form length in octets, root terminator included.
func (n Name) Len() int { return len(n.raw) }

// LabelCount returns the number of labels, the root label included.
func (n Name) LabelCount() int { return len(n.offsets) }

// IsRoot reports whether n is exactly the root name.
func (n Name) IsRoot() bool { return n.LabelCount() == 1 }

// IsWildcard reports whether n's first label is exactly "*".
func (n Name) IsWildcard() bool {
	if n.LabelCount() < 2 {
		return false
	}
	return n.raw[0] == 1 && n.raw[1] == '*'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func fromLabels(labels [][]byte, op string) (Name, error) {
	if len(labels) > MaxLabels-1 {
		return Name{}, dnserr.New(dnserr.KindTooLongName, op)
	}
	raw := make([]byte, 0, MaxWireLen)
	offsets := make([]byte, 0, len(labels)+1)
	for _, l := range labels {
		if len(raw)+1+len(l)+1 > MaxWireLen {
			return Name{}, dnserr.New(dnserr.KindTooLongName, op)
		}
		offsets = append(offsets, byte(len(raw)))
		raw = append(raw, byte(len(l)))
		raw = append(raw, l...)
	}
	offsets = append(offsets, byte(len(raw)))
	raw = append(raw, 0)
	return Name{raw: raw, offsets: offsets}, nil
}

// Parse parses RFC 1035 presentation form: labels separated by '.', '\\'
// escaping a literal non-digit character, and '\\' followed by exactly
// three decimal digits inserting that byte value. A trailing dot, or the
// literal string "@", denotes the root.
func Parse(s string) (Name, error) {
	const op = "name.Parse"
	if s == "." || s == "@" {
		return Root(), nil
	}

	var labels [][]byte
	var cur []byte
	i, n := 0, len(s)
	sawTrailingDot := false

	for i < n {
		c := s[i]
		switch c {
		case '.':
			if len(cur) == 0 {
				return Name{}, dnserr.New(dnserr.KindDuplicatePeriod, op)
			}
			if len(cur) > MaxLabelLen {
				return Name{}, dnserr.New(dnserr.KindTooLongLabel, op)
			}
			labels = append(labels, cur)
			cur = nil
			i++
			if i == n {
				sawTrailingDot = true
			}
		case '\\':
			i++
			if i >= n {
				return Name{}, dnserr.New(dnserr.KindInvalidDecimalFormat, op)
			}
			if isDigit(s[i]) {
				if i+3 > n || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
					return Name{}, dnserr.New(dnserr.KindInvalidDecimalFormat, op)
				}
				v := int(s[i]-'0')*100 + int(s[i+1]-'0')*10 + int(s[i+2]-'0')
				if v > 255 {
					return Name{}, dnserr.New(dnserr.KindInvalidDecimalFormat, op)
				}
				cur = append(cur, byte(v))
				i += 3
			} else {
				cur = append(cur, s[i])
				i++
			}
		default:
			cur = append(cur, c)
			i++
		}
	}

	if !sawTrailingDot {
		if len(cur) == 0 {
			return Name{}, dnserr.New(dnserr.KindNonTerminateLabel, op)
		}
		if len(cur) > MaxLabelLen {
			return Name{}, dnserr.New(dnserr.KindTooLongLabel, op)
		}
		labels = append(labels, cur)
	}

	return fromLabels(labels, op)
}

// DecodeFrom decodes a name starting at r's current position, following
// compression pointers. Each followed pointer must address a strictly
// smaller offset than every pointer already followed in this decode; that
// is the sole defense against pointer loops. r's cursor is left at the
// first byte after the name as seen by the original caller: right after
// the terminating zero label, or right after the first pointer followed.
func DecodeFrom(r *wire.Reader) (Name, error) {
	const op = "name.DecodeFrom"
	startPos := r.Position()
	cur := startPos
	cused := 0
	seenPointer := false
	maxPointer := startPos

	var labels [][]byte
	totalWire := 1 // the terminating root octet

	for {
		r.SetPosition(cur)
		lb, err := r.ReadU8(op)
		if err != nil {
			return Name{}, err
		}

		if lb == 0 {
			if !seenPointer {
				cused++
			}
			break
		}

		if lb&compressMask == compressMask {
			lo, err := r.ReadU8(op)
			if err != nil {
				return Name{}, err
			}
			ptr := (int(lb&^compressMask) << 8) | int(lo)
			if ptr >= maxPointer {
				return Name{}, dnserr.New(dnserr.KindBadCompressPointer, op).WithOffset(cur)
			}
			if !seenPointer {
				cused += 2
			}
			maxPointer = ptr
			cur = ptr
			seenPointer = true
			continue
		}

		if lb&compressMask != 0 {
			return Name{}, dnserr.New(dnserr.KindBadCompressPointer, op).WithOffset(cur)
		}

		labelLen := int(lb)
		if labelLen > MaxLabelLen {
			return Name{}, dnserr.New(dnserr.KindTooLongLabel, op).WithOffset(cur)
		}
		data, err := r.ReadBytes(labelLen, op)
		if err != nil {
			return Name{}, err
		}
		label := append([]byte(nil), data...)
		labels = append(labels, label)

		totalWire += 1 + labelLen
		if totalWire > MaxWireLen {
			return Name{}, dnserr.New(dnserr.KindTooLongName, op)
		}
		if len(labels) > MaxLabels-1 {
			return Name{}, dnserr.New(dnserr.KindTooLongName, op)
		}

		if !seenPointer {
			cused += 1 + labelLen
		}
		cur += 1 + labelLen
	}

	r.SetPosition(startPos + cused)
	return fromLabels(labels, op)
}

// EncodeTo writes n's raw wire bytes verbatim (the "name_uncompressed"
// codec). Compressed writes go through render.Render.WriteName instead.
func (n Name) EncodeTo(w *wire.Writer, op string) error {
	return w.WriteBytes(n.raw, op)
}

// Downcase returns a copy of n with every byte ASCII-lowercased.
func (n Name) Downcase() Name {
	raw := make([]byte, len(n.raw))
	copy(raw, n.raw)
	i := 0
	for i < len(raw) {
		l := int(raw[i])
		i++
		for j := 0; j < l; j++ {
			raw[i+j] = lowerByte(raw[i+j])
		}
		i += l
	}
	offsets := make([]byte, len(n.offsets))
	copy(offsets, n.offsets)
	return Name{raw: raw, offsets: offsets}
}
