package message

import (
	"math/rand"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// Request is a single-question query message: header plus one question, with
// no answer, authority, or additional records (no EDNS either).
type Request struct {
	Header   Header
	Question Question
}

// NewRequest builds a query for qtype over qname, with RD set and a
// randomized transaction id.
func NewRequest(qname name.Name, qtype rrtype.Type) Request {
	h := Header{ID: uint16(rand.Intn(1 << 16)), QDCount: 1}
	h.SetFlag(rrtype.FlagRD, true)
	return Request{Header: h, Question: Question{Name: qname, Type: qtype, Class: rrtype.IN}}
}

// RequestFromWire decodes a query message: exactly one question, no answers.
func RequestFromWire(raw []byte) (Request, error) {
	const op = "message.RequestFromWire"
	r := wire.NewReader(raw)
	h, err := DecodeHeader(r)
	if err != nil {
		return Request{}, err
	}
	if h.QDCount != 1 {
		return Request{}, dnserr.New(dnserr.KindShortOfQuestion, op)
	}
	if h.ANCount != 0 {
		return Request{}, dnserr.New(dnserr.KindRdataLenIsNotCorrect, op).WithDetail("request must not carry answers")
	}
	q, err := DecodeQuestion(r)
	if err != nil {
		return Request{}, err
	}
	return Request{Header: h, Question: q}, nil
}

// ToWire renders the request into a buffer bounded at capacity bytes.
func (req Request) ToWire(capacity int) ([]byte, error) {
	req.Header.QDCount = 1
	req.Header.ANCount = 0
	req.Header.NSCount = 0
	req.Header.ARCount = 0

	r := render.New(capacity)
	if err := req.Header.EncodeTo(r); err != nil {
		return nil, err
	}
	if err := req.Question.EncodeTo(r); err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}

func (req Request) String() string {
	return req.Question.String()
}
