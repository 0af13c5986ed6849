package rdata

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// PTR is a pointer to another name, typically used for reverse lookups.
type PTR struct {
	Ptrdname name.Name
}

// ParsePTR parses the presentation form "<ptrdname>".
func ParsePTR(s string) (PTR, error) {
	const op = "rdata.ParsePTR"
	sc := wire.NewScanner(s)
	n, err := parseName(sc, op, "ptrdname")
	if err != nil {
		return PTR{}, err
	}
	return PTR{Ptrdname: n}, nil
}

func decodePTR(r *wire.Reader) (RData, error) {
	n, err := readName(r)
	if err != nil {
		return nil, err
	}
	return PTR{Ptrdname: n}, nil
}

func (p PTR) Type() rrtype.Type { return rrtype.PTR }

func (p PTR) EncodeTo(r *render.Render) error { return r.WriteName(p.Ptrdname, true) }

func (p PTR) Equal(other RData) bool {
	o, ok := other.(PTR)
	return ok && string(p.Ptrdname.RawData()) == string(o.Ptrdname.RawData())
}

func (p PTR) String() string { return p.Ptrdname.String() }
