package message

import (
	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/rdata"
	"github.com/joshuafuller/dnswire/rrset"
	"github.com/joshuafuller/dnswire/rrtype"
)

// EDNS fields are smuggled through an OPT pseudo-RR: the owner is always
// root, the class field carries the requestor's UDP payload size, and the
// TTL field packs the extended rcode, version, and flag bits.
const (
	ednsExtRcodeShift = 24
	ednsVersionShift  = 16
	ednsVersionMask   = 0x00ff0000
	ednsFlagDO        = 0x00008000
)

// Edns carries the extended DNS fields represented on the wire as a
// synthetic OPT record in the additional section.
type Edns struct {
	Version       uint8
	ExtendedRcode uint8
	UDPSize       uint16
	DNSSECAware   bool
	Options       []byte
}

// FromRRset unpacks an OPT pseudo-RRset into its EDNS fields.
func FromRRset(s *rrset.RRset) (Edns, error) {
	const op = "message.Edns.FromRRset"
	if s.Type != rrtype.OPT {
		return Edns{}, dnserr.New(dnserr.KindOptMisplaced, op).WithDetail("not an OPT record")
	}
	if !s.Name.IsRoot() {
		return Edns{}, dnserr.New(dnserr.KindOptMisplaced, op).WithDetail("OPT owner must be root")
	}
	e := Edns{
		ExtendedRcode: uint8(s.TTL >> ednsExtRcodeShift),
		Version:       uint8((s.TTL & ednsVersionMask) >> ednsVersionShift),
		DNSSECAware:   s.TTL&ednsFlagDO != 0,
		UDPSize:       uint16(s.Class),
	}
	if len(s.RDatas) > 0 {
		opt, ok := s.RDatas[0].(rdata.OPT)
		if !ok {
			return Edns{}, dnserr.New(dnserr.KindOptMisplaced, op).WithDetail("OPT record has non-OPT rdata")
		}
		e.Options = opt.Data
	}
	return e, nil
}

// ToRRset packs the EDNS fields back into the OPT pseudo-RRset form.
func (e Edns) ToRRset() *rrset.RRset {
	ttl := uint32(e.ExtendedRcode)<<ednsExtRcodeShift | uint32(e.Version)<<ednsVersionShift
	if e.DNSSECAware {
		ttl |= ednsFlagDO
	}
	s := rrset.New(name.Root(), rrtype.OPT, rrtype.Class(e.UDPSize), ttl)
	s.RDatas = []rdata.RData{rdata.OPT{Data: e.Options}}
	return s
}
