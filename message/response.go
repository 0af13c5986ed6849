package message

import (
	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrset"
	"github.com/joshuafuller/dnswire/rrtype"
)

// SectionType names one of a message's three RR sections.
type SectionType int

const (
	SectionAnswer SectionType = iota
	SectionAuthority
	SectionAdditional
)

func (t SectionType) String() string {
	switch t {
	case SectionAnswer:
		return "ANSWER"
	case SectionAuthority:
		return "AUTHORITY"
	case SectionAdditional:
		return "ADDITIONAL"
	default:
		return "UNKNOWN"
	}
}

// Response is a full DNS message: header, optional question, the three RR
// sections, and an optional EDNS pseudo-record carried separately from the
// additional section it renders into.
type Response struct {
	Header   Header
	Question *Question
	Edns     *Edns

	sections [3][]*rrset.RRset
}

// Section returns the RRsets assigned to t, in order.
func (resp *Response) Section(t SectionType) []*rrset.RRset { return resp.sections[t] }

// SetSection replaces the RRsets assigned to t.
func (resp *Response) SetSection(t SectionType, rrsets []*rrset.RRset) { resp.sections[t] = rrsets }

// FromWire decodes a full message: header, question (if qd_count says there
// is one), and the three RR sections, grouping consecutive RRs that share an
// owner/type/class into one RRset via rrset.SameRRset. A trailing OPT record
// in the additional section is split out into resp.Edns; an OPT anywhere
// else is an error.
func FromWire(raw []byte) (*Response, error) {
	const op = "message.FromWire"
	r := wire.NewReader(raw)

	header, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}
	if header.QDCount > 1 {
		return nil, dnserr.New(dnserr.KindShortOfQuestion, op).WithDetail("more than one question")
	}

	resp := &Response{Header: header}
	if header.QDCount == 1 {
		q, err := DecodeQuestion(r)
		if err != nil {
			return nil, err
		}
		resp.Question = &q
	}

	counts := [3]uint16{header.ANCount, header.NSCount, header.ARCount}
	for sec := SectionAnswer; sec <= SectionAdditional; sec++ {
		rrs, err := decodeSection(r, counts[sec], sec, op)
		if err != nil {
			return nil, err
		}
		resp.sections[sec] = rrs
	}

	if err := resp.detachEdns(op); err != nil {
		return nil, err
	}
	return resp, nil
}

func decodeSection(r *wire.Reader, count uint16, sec SectionType, op string) ([]*rrset.RRset, error) {
	var out []*rrset.RRset
	var pending *rrset.RRset
	var lastDecoded rrset.DecodedRR
	have := false

	for i := uint16(0); i < count; i++ {
		dr, err := rrset.DecodeRR(r)
		if err != nil {
			return nil, err
		}
		if dr.Type == rrtype.OPT && sec != SectionAdditional {
			return nil, dnserr.New(dnserr.KindOptMisplaced, op)
		}
		if have && rrset.SameRRset(lastDecoded, dr) {
			_ = pending.AddRdata(dr.Rdata)
		} else {
			pending = rrset.New(dr.Name, dr.Type, dr.Class, dr.TTL)
			_ = pending.AddRdata(dr.Rdata)
			out = append(out, pending)
		}
		lastDecoded = dr
		have = true
	}
	return out, nil
}

// detachEdns pulls a trailing OPT RRset out of the additional section into
// resp.Edns. An OPT record that is not the last additional RRset is
// rejected.
func (resp *Response) detachEdns(op string) error {
	additional := resp.sections[SectionAdditional]
	for i, s := range additional {
		if s.Type != rrtype.OPT {
			continue
		}
		if i != len(additional)-1 {
			return dnserr.New(dnserr.KindOptMisplaced, op).WithDetail("opt record is not the final additional rrset")
		}
		edns, err := FromRRset(s)
		if err != nil {
			return err
		}
		resp.Edns = &edns
		resp.sections[SectionAdditional] = additional[:i]
	}
	return nil
}

// recalculateCounts fixes up the header's section counts from the RRsets and
// EDNS record actually present.
func (resp *Response) recalculateCounts() {
	resp.Header.QDCount = 0
	if resp.Question != nil {
		resp.Header.QDCount = 1
	}
	resp.Header.ANCount = sectionRRCount(resp.sections[SectionAnswer])
	resp.Header.NSCount = sectionRRCount(resp.sections[SectionAuthority])
	ar := sectionRRCount(resp.sections[SectionAdditional])
	if resp.Edns != nil {
		ar++
	}
	resp.Header.ARCount = ar
}

func sectionRRCount(rrsets []*rrset.RRset) uint16 {
	var n uint16
	for _, s := range rrsets {
		n += uint16(s.RRCount())
	}
	return n
}

// ToWire renders the full message into a buffer bounded at capacity bytes.
// If the complete message does not fit, the buffer is truncated back to
// immediately after the question, the header's TC bit is set, and all
// section counts are zeroed, matching the standard truncation behavior for
// oversized responses.
func (resp *Response) ToWire(capacity int) ([]byte, error) {
	const op = "message.Response.ToWire"
	resp.recalculateCounts()

	r := render.New(capacity)
	if err := resp.Header.EncodeTo(r); err != nil {
		return nil, err
	}
	if resp.Question != nil {
		if err := resp.Question.EncodeTo(r); err != nil {
			return nil, err
		}
	}
	posAfterQuestion := r.Len()

	if err := resp.renderSections(r); err == nil {
		return r.Bytes(), nil
	}

	if err := r.Trim(r.Len()-posAfterQuestion, op); err != nil {
		return nil, err
	}
	resp.Header.SetFlag(rrtype.FlagTC, true)
	resp.Header.ANCount = 0
	resp.Header.NSCount = 0
	resp.Header.ARCount = 0
	if err := r.WriteU16At(resp.Header.FlagWord, 2, op); err != nil {
		return nil, err
	}
	if err := r.WriteU16At(0, 6, op); err != nil {
		return nil, err
	}
	if err := r.WriteU16At(0, 8, op); err != nil {
		return nil, err
	}
	if err := r.WriteU16At(0, 10, op); err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}

func (resp *Response) renderSections(r *render.Render) error {
	for sec := SectionAnswer; sec <= SectionAdditional; sec++ {
		for _, s := range resp.sections[sec] {
			if err := s.Rend(r); err != nil {
				return err
			}
		}
		if sec == SectionAdditional && resp.Edns != nil {
			if err := resp.Edns.ToRRset().Rend(r); err != nil {
				return err
			}
		}
	}
	return nil
}
