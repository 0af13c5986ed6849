// Package render implements MessageRender: a bounded output buffer for DNS
// messages augmented with a name-suffix compression table, so that a whole
// message can be serialized with RFC 1035 name compression in one pass.
package render

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
)

const (
	bucketCount = 64
	bucketCap   = 16

	// DefaultCapacity is the render buffer size used when none is given,
	// matching the classic UDP payload ceiling.
	DefaultCapacity = 512
)

type bucketEntry struct {
	hash   uint32
	pos    int
	length int
}

// Render is a bounded-capacity output buffer with big-endian integer
// primitives and a name-compression side table. It is not safe for
// concurrent use.
type Render struct {
	buf     *wire.Writer
	buckets [bucketCount][]bucketEntry
}

// New returns a Render bounded to capacity bytes.
func New(capacity int) *Render {
	return &Render{buf: wire.NewWriter(capacity)}
}

func (r *Render) Len() int             { return r.buf.Len() }
func (r *Render) Cap() int             { return r.buf.Cap() }
func (r *Render) Bytes() []byte        { return r.buf.Bytes() }
func (r *Render) Writer() *wire.Writer { return r.buf }

// Reset clears the byte buffer and the compression table, leaving capacity
// unchanged.
func (r *Render) Reset() {
	r.buf.Reset()
	for i := range r.buckets {
		r.buckets[i] = r.buckets[i][:0]
	}
}

func (r *Render) WriteU8(v uint8, op string) error     { return r.buf.WriteU8(v, op) }
func (r *Render) WriteU16(v uint16, op string) error   { return r.buf.WriteU16(v, op) }
func (r *Render) WriteU32(v uint32, op string) error   { return r.buf.WriteU32(v, op) }
func (r *Render) WriteBytes(b []byte, op string) error { return r.buf.WriteBytes(b, op) }
func (r *Render) WriteU16At(v uint16, pos int, op string) error {
	return r.buf.WriteU16At(v, pos, op)
}
func (r *Render) Skip(n int, op string) error { return r.buf.Skip(n, op) }
func (r *Render) Trim(n int, op string) error { return r.buf.Trim(n, op) }

// WriteName writes n, applying name-suffix compression when compress is
// true. It walks n from its most specific suffix (the whole name) toward
// the root, reusing the first already-emitted suffix it finds byte-equal
// (case-insensitively, following any compression pointers in the
// already-emitted bytes) as a 14-bit back-reference. Labels preceding the
// reused suffix are emitted verbatim and registered for future reuse.
func (r *Render) WriteName(n name.Name, compress bool) error {
	const op = "render.WriteName"
	if n.IsRoot() {
		return r.buf.WriteU8(0, op)
	}
	if !compress {
		return n.EncodeTo(r.buf, op)
	}

	full := n.Slice()
	total := full.LabelCount()
	for stripped := 0; stripped < total-1; stripped++ {
		suffix := full
		suffix.StripLeft(stripped)
		if pos, ok := r.lookup(suffix); ok {
			if err := r.writeLabelsAndRegister(n, full, stripped, op); err != nil {
				return err
			}
			return r.writePointer(pos, op)
		}
	}
	return r.writeLabelsAndRegister(n, full, total-1, op)
}

// writeLabelsAndRegister writes n's first count real labels verbatim,
// registering each written label's suffix for future compression. When
// count spans every real label (no pointer followed), it also writes the
// root terminator.
func (r *Render) writeLabelsAndRegister(n name.Name, full name.LabelSlice, count int, op string) error {
	raw := n.RawData()
	offsets := n.Offsets()
	for i := 0; i < count; i++ {
		pos := r.buf.Len()
		start := int(offsets[i])
		labelLen := int(raw[start])
		if err := r.buf.WriteBytes(raw[start:start+1+labelLen], op); err != nil {
			return err
		}
		suffix := full
		suffix.StripLeft(i)
		r.registerSuffix(pos, suffix)
	}
	if count == full.LabelCount()-1 {
		return r.buf.WriteU8(0, op)
	}
	return nil
}

func (r *Render) writePointer(pos int, op string) error {
	return r.buf.WriteU16(0xc000|uint16(pos), op)
}

func (r *Render) registerSuffix(pos int, suffix name.LabelSlice) {
	if pos > name.MaxCompressPointer {
		return
	}
	h := suffix.Hash(false)
	idx := h % bucketCount
	if len(r.buckets[idx]) >= bucketCap {
		return
	}
	r.buckets[idx] = append(r.buckets[idx], bucketEntry{hash: h, pos: pos, length: suffix.Len()})
}

// lookup returns the position of an already-emitted suffix byte-equal to
// suffix, re-verifying by decoding the candidate bytes (following pointers)
// rather than trusting the hash alone.
func (r *Render) lookup(suffix name.LabelSlice) (int, bool) {
	h := suffix.Hash(false)
	idx := h % bucketCount
	for _, e := range r.buckets[idx] {
		if e.hash != h || e.length != suffix.Len() {
			continue
		}
		reader := wire.NewReader(r.buf.Bytes())
		reader.SetPosition(e.pos)
		decoded, err := name.DecodeFrom(reader)
		if err != nil {
			continue
		}
		if decoded.Slice().Equals(suffix, false) {
			return e.pos, true
		}
	}
	return 0, false
}
