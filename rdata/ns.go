package rdata

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// NS names an authoritative nameserver for the owner.
type NS struct {
	Nsdname name.Name
}

// ParseNS parses the presentation form "<nsdname>".
func ParseNS(s string) (NS, error) {
	const op = "rdata.ParseNS"
	sc := wire.NewScanner(s)
	n, err := parseName(sc, op, "nsdname")
	if err != nil {
		return NS{}, err
	}
	return NS{Nsdname: n}, nil
}

func decodeNS(r *wire.Reader) (RData, error) {
	n, err := readName(r)
	if err != nil {
		return nil, err
	}
	return NS{Nsdname: n}, nil
}

func (ns NS) Type() rrtype.Type { return rrtype.NS }

func (ns NS) EncodeTo(r *render.Render) error { return r.WriteName(ns.Nsdname, true) }

func (ns NS) Equal(other RData) bool {
	o, ok := other.(NS)
	return ok && string(ns.Nsdname.RawData()) == string(o.Nsdname.RawData())
}

func (ns NS) String() string { return ns.Nsdname.String() }
