package rdata

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// CNAME is a canonical-name alias.
type CNAME struct {
	Cname name.Name
}

// ParseCNAME parses the presentation form "<cname>".
func ParseCNAME(s string) (CNAME, error) {
	const op = "rdata.ParseCNAME"
	sc := wire.NewScanner(s)
	n, err := parseName(sc, op, "cname")
	if err != nil {
		return CNAME{}, err
	}
	return CNAME{Cname: n}, nil
}

func decodeCNAME(r *wire.Reader) (RData, error) {
	n, err := readName(r)
	if err != nil {
		return nil, err
	}
	return CNAME{Cname: n}, nil
}

func (c CNAME) Type() rrtype.Type { return rrtype.CNAME }

func (c CNAME) EncodeTo(r *render.Render) error { return r.WriteName(c.Cname, true) }

func (c CNAME) Equal(other RData) bool {
	o, ok := other.(CNAME)
	return ok && string(c.Cname.RawData()) == string(o.Cname.RawData())
}

func (c CNAME) String() string { return c.Cname.String() }
