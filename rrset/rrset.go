// Package rrset implements RRset: an owner name, type, and class carrying an
// ordered list of RDATA values that all share a TTL conceptually (though
// RRset equality deliberately ignores the TTL actually stored).
package rrset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/rdata"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// RRset is an owner name, a type, a class, a TTL, and an ordered list of
// RDATA values all of that type.
type RRset struct {
	Name   name.Name
	Type   rrtype.Type
	Class  rrtype.Class
	TTL    uint32
	RDatas []rdata.RData
}

// New starts an RRset with no RDATA.
func New(owner name.Name, typ rrtype.Type, class rrtype.Class, ttl uint32) *RRset {
	return &RRset{Name: owner, Type: typ, Class: class, TTL: ttl}
}

// AddRdata appends r to the set, failing if r's type does not match the
// RRset's type.
func (s *RRset) AddRdata(r rdata.RData) error {
	if r.Type() != s.Type {
		return dnserr.New(dnserr.KindRdataLenIsNotCorrect, "rrset.AddRdata").WithDetail("rdata type mismatch")
	}
	s.RDatas = append(s.RDatas, r)
	return nil
}

// Parse builds an RRset from presentation-format lines, each shaped
// "<owner> <ttl> [class] <type> <rdata…>" with class defaulting to IN when
// absent. Every line must share the same owner name and type; failing that
// is reported as InvalidRRsetString, as is an empty input or a line with
// too few fields. Each line's RDATA is parsed according to its own type.
func Parse(lines []string) (*RRset, error) {
	const op = "rrset.Parse"
	if len(lines) == 0 {
		return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("no lines")
	}

	var set *RRset
	for i, line := range lines {
		sc := wire.NewScanner(line)

		ownerTok, ok := sc.NextString()
		if !ok {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("missing owner")
		}
		owner, err := name.Parse(ownerTok)
		if err != nil {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("owner: " + err.Error())
		}

		ttlTok, ok := sc.NextString()
		if !ok {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("missing ttl")
		}
		ttl, err := parseTTL(ttlTok)
		if err != nil {
			return nil, dnserr.New(dnserr.KindInvalidTtlString, op).WithDetail(ttlTok)
		}

		tok, ok := sc.NextString()
		if !ok {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("missing type")
		}
		class := rrtype.IN
		if c, cerr := rrtype.ParseClass(tok); cerr == nil {
			class = c
			tok, ok = sc.NextString()
			if !ok {
				return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("missing type")
			}
		}
		typ, err := rrtype.ParseType(tok)
		if err != nil {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("type: " + tok)
		}

		rest, ok := sc.Rest()
		if !ok {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).WithDetail("missing rdata")
		}
		rd, err := rdata.Parse(typ, strings.TrimSpace(rest))
		if err != nil {
			return nil, err
		}

		if set == nil {
			set = New(owner, typ, class, ttl)
		} else if !set.Name.Equal(owner) || set.Type != typ || set.Class != class {
			return nil, dnserr.New(dnserr.KindInvalidRRsetString, op).
				WithDetail("line " + strconv.Itoa(i) + ": owner/type/class mismatch")
		}
		if err := set.AddRdata(rd); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// parseTTL accepts a bare decimal second count.
func parseTTL(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// DecodedRR is a single resource record read off the wire, before grouping
// into an RRset.
type DecodedRR struct {
	Name  name.Name
	Type  rrtype.Type
	Class rrtype.Class
	TTL   uint32
	Rdata rdata.RData
}

// DecodeRR reads one full RR: owner name, type, class, TTL, rdata-length,
// and exactly that many bytes of RDATA.
func DecodeRR(r *wire.Reader) (DecodedRR, error) {
	const op = "rrset.DecodeRR"
	owner, err := name.DecodeFrom(r)
	if err != nil {
		return DecodedRR{}, err
	}
	rawType, err := r.ReadU16(op)
	if err != nil {
		return DecodedRR{}, err
	}
	rawClass, err := r.ReadU16(op)
	if err != nil {
		return DecodedRR{}, err
	}
	ttl, err := r.ReadU32(op)
	if err != nil {
		return DecodedRR{}, err
	}
	rdlen, err := r.ReadU16(op)
	if err != nil {
		return DecodedRR{}, err
	}
	rd, err := rdata.DecodeFrom(rrtype.Type(rawType), r, rdlen)
	if err != nil {
		return DecodedRR{}, err
	}
	return DecodedRR{Name: owner, Type: rrtype.Type(rawType), Class: rrtype.Class(rawClass), TTL: ttl, Rdata: rd}, nil
}

// Rend writes every RR in the set (one per RDATA value), applying name
// compression through r.
func (s *RRset) Rend(r *render.Render) error {
	const op = "rrset.Rend"
	for _, rd := range s.RDatas {
		if err := r.WriteName(s.Name, true); err != nil {
			return err
		}
		if err := r.WriteU16(uint16(s.Type), op); err != nil {
			return err
		}
		if err := r.WriteU16(uint16(s.Class), op); err != nil {
			return err
		}
		if err := r.WriteU32(s.TTL, op); err != nil {
			return err
		}
		lenPos := r.Len()
		if err := r.WriteU16(0, op); err != nil {
			return err
		}
		start := r.Len()
		if err := rd.EncodeTo(r); err != nil {
			return err
		}
		if err := r.WriteU16At(uint16(r.Len()-start), lenPos, op); err != nil {
			return err
		}
	}
	return nil
}

// RRCount is the number of wire RRs s renders to: one per RDATA value (the
// OPT pseudo-RRset carries one, possibly zero-length, RDATA).
func (s *RRset) RRCount() int {
	return len(s.RDatas)
}

// SameRRset reports whether a and b would be grouped into a single RRset
// when decoding consecutive RRs: equal owner name, type, and class. Two
// consecutive RRs sharing owner and type but differing in class are NOT
// merged.
func SameRRset(a, b DecodedRR) bool {
	return a.Name.Equal(b.Name) && a.Type == b.Type && a.Class == b.Class
}

// Equal compares two RRsets ignoring TTL and RDATA order. Short lists (< 4
// elements) are compared by bag membership; longer lists are sorted by their
// canonical string form and compared in order.
func (s *RRset) Equal(other *RRset) bool {
	if !s.Name.Equal(other.Name) || s.Type != other.Type || s.Class != other.Class {
		return false
	}
	if len(s.RDatas) != len(other.RDatas) {
		return false
	}
	if len(s.RDatas) < 4 {
		return bagEqual(s.RDatas, other.RDatas)
	}
	a := sortedCopy(s.RDatas)
	b := sortedCopy(other.RDatas)
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func bagEqual(a, b []rdata.RData) bool {
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if x.Equal(y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortedCopy(rds []rdata.RData) []rdata.RData {
	out := make([]rdata.RData, len(rds))
	copy(out, rds)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// String renders one presentation-format line per RDATA value:
// "<owner> <ttl> <class> <type> <rdata>".
func (s *RRset) String() string {
	lines := make([]string, 0, len(s.RDatas))
	for _, rd := range s.RDatas {
		lines = append(lines, strings.Join([]string{
			s.Name.String(), strconv.FormatUint(uint64(s.TTL), 10), s.Class.String(), s.Type.String(), rd.String(),
		}, " "))
	}
	return strings.Join(lines, "\n")
}
