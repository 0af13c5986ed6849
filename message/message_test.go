package message

import (
	"testing"

	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/rdata"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrset"
	"github.com/joshuafuller/dnswire/rrtype"
)

// wwwKnetCnResponse is a real captured response for www.knet.cn.: 1 A
// answer, 4 NS authority, 8 A additional glue records, and a 4096-byte EDNS
// OPT, ported verbatim from the reference test suite this package's
// behavior is modeled on.
var wwwKnetCnResponse = []byte{
	4, 176, 132, 0, 0, 1, 0, 1, 0, 4, 0, 9, 3, 119, 119, 119, 4, 107, 110, 101, 116, 2, 99,
	110, 0, 0, 1, 0, 1, 192, 12, 0, 1, 0, 1, 0, 0, 1, 44, 0, 4, 202, 173, 11, 42, 192, 16,
	0, 2, 0, 1, 0, 0, 14, 16, 0, 20, 4, 118, 110, 115, 49, 9, 122, 100, 110, 115, 99, 108,
	111, 117, 100, 3, 98, 105, 122, 0, 192, 16, 0, 2, 0, 1, 0, 0, 14, 16, 0, 20, 4, 105,
	110, 115, 49, 9, 122, 100, 110, 115, 99, 108, 111, 117, 100, 3, 99, 111, 109, 0, 192,
	16, 0, 2, 0, 1, 0, 0, 14, 16, 0, 21, 4, 100, 110, 115, 49, 9, 122, 100, 110, 115, 99,
	108, 111, 117, 100, 4, 105, 110, 102, 111, 0, 192, 16, 0, 2, 0, 1, 0, 0, 14, 16, 0, 20,
	4, 99, 110, 115, 49, 9, 122, 100, 110, 115, 99, 108, 111, 117, 100, 3, 110, 101, 116,
	0, 192, 57, 0, 1, 0, 1, 0, 1, 81, 128, 0, 4, 203, 99, 22, 3, 192, 57, 0, 1, 0, 1, 0, 1,
	81, 128, 0, 4, 203, 99, 23, 3, 192, 89, 0, 1, 0, 1, 0, 0, 14, 16, 0, 4, 27, 221, 63, 3,
	192, 89, 0, 1, 0, 1, 0, 0, 14, 16, 0, 4, 119, 167, 244, 44, 192, 121, 0, 1, 0, 1, 0, 0,
	14, 16, 0, 4, 114, 67, 46, 13, 192, 121, 0, 1, 0, 1, 0, 0, 14, 16, 0, 4, 114, 67, 46,
	14, 192, 154, 0, 1, 0, 1, 0, 1, 81, 128, 0, 4, 42, 62, 2, 24, 192, 154, 0, 1, 0, 1, 0,
	1, 81, 128, 0, 4, 42, 62, 2, 29, 0, 0, 41, 16, 0, 0, 0, 0, 0, 0, 0,
}

func TestResponseFromWireGroupsSections(t *testing.T) {
	resp, err := FromWire(wwwKnetCnResponse)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	if resp.Header.ANCount != 1 || resp.Header.NSCount != 4 || resp.Header.ARCount != 9 {
		t.Fatalf("header counts = %d/%d/%d, want 1/4/9", resp.Header.ANCount, resp.Header.NSCount, resp.Header.ARCount)
	}
	if got := len(resp.Section(SectionAnswer)); got != 1 {
		t.Fatalf("answer rrsets = %d, want 1", got)
	}
	answer := resp.Section(SectionAnswer)[0]
	if len(answer.RDatas) != 1 {
		t.Fatalf("answer rdata count = %d, want 1", len(answer.RDatas))
	}
	if got := len(resp.Section(SectionAuthority)); got != 1 {
		t.Fatalf("authority rrsets = %d, want 1 (grouped)", got)
	}
	if got := len(resp.Section(SectionAuthority)[0].RDatas); got != 4 {
		t.Fatalf("authority rdata count = %d, want 4", got)
	}
	if got := len(resp.Section(SectionAdditional)); got != 4 {
		t.Fatalf("additional rrsets = %d, want 4 glue rrsets (opt detached)", got)
	}
	if resp.Edns == nil {
		t.Fatal("expected EDNS to be detached from the additional section")
	}
	if resp.Edns.UDPSize != 4096 {
		t.Fatalf("edns udp size = %d, want 4096", resp.Edns.UDPSize)
	}
	if resp.Edns.Version != 0 || resp.Edns.DNSSECAware {
		t.Fatalf("edns version/dnssec = %d/%v, want 0/false", resp.Edns.Version, resp.Edns.DNSSECAware)
	}
}

func TestResponseToWireRoundTrip(t *testing.T) {
	resp, err := FromWire(wwwKnetCnResponse)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	out, err := resp.ToWire(1024)
	if err != nil {
		t.Fatalf("ToWire failed: %v", err)
	}
	again, err := FromWire(out)
	if err != nil {
		t.Fatalf("FromWire(round trip) failed: %v", err)
	}
	if again.Header.ANCount != resp.Header.ANCount || again.Header.NSCount != resp.Header.NSCount ||
		again.Header.ARCount != resp.Header.ARCount {
		t.Fatalf("round-tripped counts = %d/%d/%d, want %d/%d/%d",
			again.Header.ANCount, again.Header.NSCount, again.Header.ARCount,
			resp.Header.ANCount, resp.Header.NSCount, resp.Header.ARCount)
	}
	if !again.Section(SectionAnswer)[0].Equal(resp.Section(SectionAnswer)[0]) {
		t.Fatal("round-tripped answer rrset does not match original")
	}
}

func TestResponseTruncatesWhenOverCapacity(t *testing.T) {
	resp, err := FromWire(wwwKnetCnResponse)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	const headerAndQuestion = 12 + 17 // 12-byte header + "www.knet.cn." + type + class
	out, err := resp.ToWire(headerAndQuestion + 4)
	if err != nil {
		t.Fatalf("ToWire failed: %v", err)
	}
	if len(out) != headerAndQuestion {
		t.Fatalf("truncated length = %d, want %d", len(out), headerAndQuestion)
	}
	truncated, err := FromWire(out)
	if err != nil {
		t.Fatalf("FromWire(truncated) failed: %v", err)
	}
	if !truncated.Header.IsFlagSet(rrtype.FlagTC) {
		t.Fatal("truncated response should have TC set")
	}
	if truncated.Header.ANCount != 0 || truncated.Header.NSCount != 0 || truncated.Header.ARCount != 0 {
		t.Fatalf("truncated counts = %d/%d/%d, want 0/0/0",
			truncated.Header.ANCount, truncated.Header.NSCount, truncated.Header.ARCount)
	}
	if truncated.Header.ID != resp.Header.ID {
		t.Fatal("truncated response must keep the original id")
	}
}

func TestOptMisplacedOutsideAdditional(t *testing.T) {
	owner, _ := name.Parse("example.")
	a1 := rrset.New(owner, rrtype.A, rrtype.IN, 60)
	av, _ := rdata.NewA("1.2.3.4")
	_ = a1.AddRdata(av)

	opt := rrset.New(name.Root(), rrtype.OPT, rrtype.Class(4096), 0)
	_ = opt.AddRdata(rdata.OPT{})

	a2 := rrset.New(owner, rrtype.A, rrtype.IN, 60)
	av2, _ := rdata.NewA("5.6.7.8")
	_ = a2.AddRdata(av2)

	r := render.New(512)
	h := Header{ID: 1, ANCount: 3}
	if err := h.EncodeTo(r); err != nil {
		t.Fatalf("header encode failed: %v", err)
	}
	for _, s := range []*rrset.RRset{a1, opt, a2} {
		if err := s.Rend(r); err != nil {
			t.Fatalf("rend failed: %v", err)
		}
	}

	if _, err := FromWire(r.Bytes()); err == nil {
		t.Fatal("FromWire with OPT outside additional: want error, got nil")
	}
}

func TestRequestRoundTrip(t *testing.T) {
	qname, _ := name.Parse("www.baidu.com.")
	req := NewRequest(qname, rrtype.A)
	req.Header.ID = 0xe385

	out, err := req.ToWire(512)
	if err != nil {
		t.Fatalf("ToWire failed: %v", err)
	}
	got, err := RequestFromWire(out)
	if err != nil {
		t.Fatalf("RequestFromWire failed: %v", err)
	}
	if got.Header.ID != 0xe385 {
		t.Fatalf("id = %#x, want 0xe385", got.Header.ID)
	}
	if !got.Header.IsFlagSet(rrtype.FlagRD) {
		t.Fatal("request should have RD set")
	}
	if !got.Question.Name.Equal(qname) || got.Question.Type != rrtype.A {
		t.Fatalf("question = %+v, want %s A", got.Question, qname.String())
	}
}

func TestResponseIterWalksSectionsInOrder(t *testing.T) {
	resp, err := FromWire(wwwKnetCnResponse)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}
	it := resp.Iter()
	if it.Len() != 7 {
		t.Fatalf("Len() = %d, want 7 (1 answer + 1 authority + 4 additional + edns)", it.Len())
	}

	first, ok := it.Next()
	if !ok || first.Section != SectionAnswer {
		t.Fatalf("first entry section = %v, want Answer", first.Section)
	}
	second, ok := it.Next()
	if !ok || second.Section != SectionAuthority {
		t.Fatalf("second entry section = %v, want Authority", second.Section)
	}

	last, ok := it.NextBack()
	if !ok || last.Section != SectionAdditional {
		t.Fatalf("last entry (edns) section = %v, want Additional", last.Section)
	}

	var additionalFromBack []*rrset.RRset
	for {
		e, ok := it.NextBack()
		if !ok {
			break
		}
		additionalFromBack = append(additionalFromBack, e.RRset)
	}
	if len(additionalFromBack) != 4 {
		t.Fatalf("remaining additional entries from the back = %d, want 4", len(additionalFromBack))
	}

	if _, ok := it.Next(); ok {
		t.Fatal("iterator should be exhausted")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatal("iterator should be exhausted from the back too")
	}
}

func TestResponseIterEmptyMessage(t *testing.T) {
	resp := &Response{Header: Header{QDCount: 1}, Question: &Question{Name: name.Root(), Type: rrtype.A, Class: rrtype.IN}}
	it := resp.Iter()
	if _, ok := it.Next(); ok {
		t.Fatal("empty response iterator: want exhausted immediately")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatal("empty response iterator: want exhausted immediately from the back")
	}
}

func TestResponseBuilderRemoveAndRebuild(t *testing.T) {
	resp, err := FromWire(wwwKnetCnResponse)
	if err != nil {
		t.Fatalf("FromWire failed: %v", err)
	}

	b := NewResponseBuilder(resp)
	b.RemoveRRsetBy(SectionAnswer, func(s *rrset.RRset) bool { return s.Type == rrtype.A }).
		RemoveRRsetBy(SectionAdditional, func(s *rrset.RRset) bool { return s.Type == rrtype.A }).
		Done()

	if resp.Header.ANCount != 0 {
		t.Fatalf("ANCount after removal = %d, want 0", resp.Header.ANCount)
	}
	if resp.Header.NSCount != 4 {
		t.Fatalf("NSCount after removal = %d, want 4 (untouched)", resp.Header.NSCount)
	}
	if resp.Header.ARCount != 1 {
		t.Fatalf("ARCount after removal = %d, want 1 (the EDNS OPT record remains)", resp.Header.ARCount)
	}

	owner, _ := name.Parse("www.knet.cn.")
	answer := rrset.New(owner, rrtype.A, rrtype.IN, 300)
	av, _ := rdata.NewA("202.173.11.42")
	_ = answer.AddRdata(av)

	b2 := NewResponseBuilder(resp)
	b2.ClearSection(SectionAnswer).AddRRset(SectionAnswer, answer).Done()

	if resp.Header.ANCount != 1 {
		t.Fatalf("ANCount after rebuild = %d, want 1", resp.Header.ANCount)
	}
}

func TestNotifyRoundTrip(t *testing.T) {
	zone, _ := name.Parse("example.com.")
	req := NewNotifyRequest(zone)
	req.Header.ID = 99

	out, err := req.ToWire(512)
	if err != nil {
		t.Fatalf("ToWire failed: %v", err)
	}
	got, err := NotifyRequestFromWire(out)
	if err != nil {
		t.Fatalf("NotifyRequestFromWire failed: %v", err)
	}
	if got.Header.Opcode() != rrtype.OpcodeNotify {
		t.Fatalf("opcode = %v, want Notify", got.Header.Opcode())
	}
	if !got.Header.IsFlagSet(rrtype.FlagAA) {
		t.Fatal("notify request should have AA set")
	}

	resp := RespondTo(got)
	if !resp.Header.IsFlagSet(rrtype.FlagQR) {
		t.Fatal("notify response should have QR set")
	}
	if resp.Header.ID != got.Header.ID {
		t.Fatal("notify response should keep the request id")
	}
}
