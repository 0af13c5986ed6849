package rdata

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// OPT carries the EDNS option list as an opaque sequence of (code, length,
// data) triples. The surrounding RR's TTL and class fields carry the
// version/extended-rcode/flags/udp-size, which is the message package's
// concern (see Edns); this package only moves the option bytes.
type OPT struct {
	Data []byte
}

// ParseOPT parses the presentation form "<hex>", the option blob encoded as
// one unbroken hex string. OPT records are synthesized by this library from
// Edns rather than authored in zone files, but the field codec table still
// names "binary" as hex, so this completes that contract.
func ParseOPT(s string) (OPT, error) {
	const op = "rdata.ParseOPT"
	sc := wire.NewScanner(s)
	data, err := sc.NextHex(op, "data")
	if err != nil {
		return OPT{}, err
	}
	return OPT{Data: data}, nil
}

func decodeOPT(r *wire.Reader, rdlen int) (RData, error) {
	data, err := readRemaining(r, rdlen, "rdata.OPT.DecodeFrom")
	if err != nil {
		return nil, err
	}
	return OPT{Data: data}, nil
}

func (o OPT) Type() rrtype.Type { return rrtype.OPT }

func (o OPT) EncodeTo(r *render.Render) error {
	return r.WriteBytes(o.Data, "rdata.OPT.EncodeTo")
}

func (o OPT) Equal(other RData) bool {
	oo, ok := other.(OPT)
	if !ok || len(o.Data) != len(oo.Data) {
		return false
	}
	for i := range o.Data {
		if o.Data[i] != oo.Data[i] {
			return false
		}
	}
	return true
}

func (o OPT) String() string { return formatBinary(o.Data) }
