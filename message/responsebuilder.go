package message

import (
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/rrset"
	"github.com/joshuafuller/dnswire/rrtype"
)

// ResponseBuilder is a fluent mutation API over a Response, for callers
// assembling a message field by field rather than decoding one off the wire.
type ResponseBuilder struct {
	resp *Response
}

// NewResponseBuilder wraps resp for mutation. A zero Response is a valid
// starting point.
func NewResponseBuilder(resp *Response) *ResponseBuilder {
	return &ResponseBuilder{resp: resp}
}

func (b *ResponseBuilder) ID(id uint16) *ResponseBuilder {
	b.resp.Header.ID = id
	return b
}

func (b *ResponseBuilder) SetFlag(f rrtype.HeaderFlag) *ResponseBuilder {
	b.resp.Header.SetFlag(f, true)
	return b
}

func (b *ResponseBuilder) ClearFlag(f rrtype.HeaderFlag) *ResponseBuilder {
	b.resp.Header.SetFlag(f, false)
	return b
}

func (b *ResponseBuilder) Opcode(op rrtype.Opcode) *ResponseBuilder {
	b.resp.Header.SetOpcode(op)
	return b
}

func (b *ResponseBuilder) Rcode(rc rrtype.Rcode) *ResponseBuilder {
	b.resp.Header.SetRcode(rc)
	return b
}

// Question sets the message's single question.
func (b *ResponseBuilder) Question(qname name.Name, qtype rrtype.Type, class rrtype.Class) *ResponseBuilder {
	q := Question{Name: qname, Type: qtype, Class: class}
	b.resp.Question = &q
	return b
}

// Edns attaches an EDNS pseudo-record, rendered as the final additional RR.
func (b *ResponseBuilder) Edns(e Edns) *ResponseBuilder {
	b.resp.Edns = &e
	return b
}

// MakeResponse sets the QR bit, turning a query shell into a response shell.
func (b *ResponseBuilder) MakeResponse() *ResponseBuilder {
	return b.SetFlag(rrtype.FlagQR)
}

// AddRRset merges s into an existing RRset sharing its owner/type/class in
// section t, or appends it as a new RRset if none matches.
func (b *ResponseBuilder) AddRRset(t SectionType, s *rrset.RRset) *ResponseBuilder {
	existing := b.resp.sections[t]
	target := rrset.DecodedRR{Name: s.Name, Type: s.Type, Class: s.Class}
	for _, cur := range existing {
		curKey := rrset.DecodedRR{Name: cur.Name, Type: cur.Type, Class: cur.Class}
		if rrset.SameRRset(curKey, target) {
			cur.RDatas = append(cur.RDatas, s.RDatas...)
			return b
		}
	}
	b.resp.sections[t] = append(existing, s)
	return b
}

// RemoveRRsetBy deletes every RRset in section t for which pred returns
// true.
func (b *ResponseBuilder) RemoveRRsetBy(t SectionType, pred func(*rrset.RRset) bool) *ResponseBuilder {
	kept := b.resp.sections[t][:0]
	for _, s := range b.resp.sections[t] {
		if !pred(s) {
			kept = append(kept, s)
		}
	}
	b.resp.sections[t] = kept
	return b
}

// ClearSection empties section t.
func (b *ResponseBuilder) ClearSection(t SectionType) *ResponseBuilder {
	b.resp.sections[t] = nil
	return b
}

// WithSection runs fn over section t's current RRsets, replacing them with
// whatever fn returns.
func (b *ResponseBuilder) WithSection(t SectionType, fn func([]*rrset.RRset) []*rrset.RRset) *ResponseBuilder {
	b.resp.sections[t] = fn(b.resp.sections[t])
	return b
}

// Done recalculates the header's section counts and returns the built
// Response.
func (b *ResponseBuilder) Done() *Response {
	b.resp.recalculateCounts()
	return b.resp
}
