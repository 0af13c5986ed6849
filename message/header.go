// Package message implements the DNS message envelope: header, question,
// EDNS, and the Response/Request/Notify types that assemble RRsets into a
// wire-format datagram with truncation-on-overflow.
package message

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

const (
	opcodeMask  = 0x7800
	opcodeShift = 11
	rcodeMask   = 0x000f
)

// Header is the 12-octet fixed prefix of every DNS message: id, flag word
// (opcode, rcode, and the boolean bits packed together, reserved bit 6
// preserved verbatim), and the four section counts.
type Header struct {
	ID       uint16
	FlagWord uint16
	QDCount  uint16
	ANCount  uint16
	NSCount  uint16
	ARCount  uint16
}

func (h Header) Opcode() rrtype.Opcode {
	return rrtype.Opcode((h.FlagWord & opcodeMask) >> opcodeShift)
}

func (h *Header) SetOpcode(op rrtype.Opcode) {
	h.FlagWord = (h.FlagWord &^ opcodeMask) | (uint16(op)<<opcodeShift)&opcodeMask
}

func (h Header) Rcode() rrtype.Rcode { return rrtype.Rcode(h.FlagWord & rcodeMask) }

func (h *Header) SetRcode(rc rrtype.Rcode) {
	h.FlagWord = (h.FlagWord &^ rcodeMask) | uint16(rc)&rcodeMask
}

func (h Header) IsFlagSet(f rrtype.HeaderFlag) bool { return f.IsSet(h.FlagWord) }

func (h *Header) SetFlag(f rrtype.HeaderFlag, v bool) {
	if v {
		h.FlagWord = f.Set(h.FlagWord)
	} else {
		h.FlagWord = f.Clear(h.FlagWord)
	}
}

// DecodeHeader reads the 12-octet header starting at r's current position.
func DecodeHeader(r *wire.Reader) (Header, error) {
	const op = "message.DecodeHeader"
	id, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	flags, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	qd, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	an, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	ns, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	ar, err := r.ReadU16(op)
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, FlagWord: flags, QDCount: qd, ANCount: an, NSCount: ns, ARCount: ar}, nil
}

// EncodeTo writes the header verbatim; callers that later truncate patch the
// flag word and counts in place with WriteU16At rather than calling this
// again.
func (h Header) EncodeTo(r *render.Render) error {
	const op = "message.Header.EncodeTo"
	if err := r.WriteU16(h.ID, op); err != nil {
		return err
	}
	if err := r.WriteU16(h.FlagWord, op); err != nil {
		return err
	}
	if err := r.WriteU16(h.QDCount, op); err != nil {
		return err
	}
	if err := r.WriteU16(h.ANCount, op); err != nil {
		return err
	}
	if err := r.WriteU16(h.NSCount, op); err != nil {
		return err
	}
	return r.WriteU16(h.ARCount, op)
}
