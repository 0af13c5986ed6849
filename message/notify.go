package message

import (
	"math/rand"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrset"
	"github.com/joshuafuller/dnswire/rrtype"
)

// NotifyRequest is a NOTIFY message (RFC 1996): opcode Notify, AA set, one
// question, and an optional SOA carried in the answer section.
type NotifyRequest struct {
	Header   Header
	Question Question
	SOA      *rrset.RRset
}

// NewNotifyRequest builds a NOTIFY for the given zone.
func NewNotifyRequest(zone name.Name) NotifyRequest {
	h := Header{ID: uint16(rand.Intn(1 << 16)), QDCount: 1}
	h.SetOpcode(rrtype.OpcodeNotify)
	h.SetFlag(rrtype.FlagAA, true)
	return NotifyRequest{Header: h, Question: Question{Name: zone, Type: rrtype.SOA, Class: rrtype.IN}}
}

// NotifyRequestFromWire decodes a NOTIFY message: one question, at most one
// answer RRset (the zone's SOA).
func NotifyRequestFromWire(raw []byte) (NotifyRequest, error) {
	const op = "message.NotifyRequestFromWire"
	r := wire.NewReader(raw)
	h, err := DecodeHeader(r)
	if err != nil {
		return NotifyRequest{}, err
	}
	if h.QDCount != 1 {
		return NotifyRequest{}, dnserr.New(dnserr.KindShortOfQuestion, op)
	}
	q, err := DecodeQuestion(r)
	if err != nil {
		return NotifyRequest{}, err
	}
	req := NotifyRequest{Header: h, Question: q}
	if h.ANCount == 0 {
		return req, nil
	}
	rrs, err := decodeSection(r, h.ANCount, SectionAnswer, op)
	if err != nil {
		return NotifyRequest{}, err
	}
	if len(rrs) > 0 {
		req.SOA = rrs[0]
	}
	return req, nil
}

// ToWire renders the NOTIFY message into a buffer bounded at capacity bytes.
func (req NotifyRequest) ToWire(capacity int) ([]byte, error) {
	req.Header.QDCount = 1
	req.Header.NSCount = 0
	req.Header.ARCount = 0
	req.Header.ANCount = 0
	if req.SOA != nil {
		req.Header.ANCount = uint16(req.SOA.RRCount())
	}

	r := render.New(capacity)
	if err := req.Header.EncodeTo(r); err != nil {
		return nil, err
	}
	if err := req.Question.EncodeTo(r); err != nil {
		return nil, err
	}
	if req.SOA != nil {
		if err := req.SOA.Rend(r); err != nil {
			return nil, err
		}
	}
	return r.Bytes(), nil
}

// NotifyResponse acknowledges a NotifyRequest: same header (with QR set) and
// question, no RRs.
type NotifyResponse struct {
	Header   Header
	Question Question
}

// RespondTo builds the acknowledgement for req.
func RespondTo(req NotifyRequest) NotifyResponse {
	h := req.Header
	h.SetFlag(rrtype.FlagQR, true)
	h.ANCount, h.NSCount, h.ARCount = 0, 0, 0
	return NotifyResponse{Header: h, Question: req.Question}
}

// ToWire renders the acknowledgement into a buffer bounded at capacity
// bytes.
func (resp NotifyResponse) ToWire(capacity int) ([]byte, error) {
	resp.Header.QDCount = 1
	resp.Header.ANCount, resp.Header.NSCount, resp.Header.ARCount = 0, 0, 0

	r := render.New(capacity)
	if err := resp.Header.EncodeTo(r); err != nil {
		return nil, err
	}
	if err := resp.Question.EncodeTo(r); err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}
