package rdata

import (
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// DNAME substitutes a subtree of the namespace with another.
type DNAME struct {
	Target name.Name
}

// ParseDNAME parses the presentation form "<target>".
func ParseDNAME(s string) (DNAME, error) {
	const op = "rdata.ParseDNAME"
	sc := wire.NewScanner(s)
	n, err := parseName(sc, op, "target")
	if err != nil {
		return DNAME{}, err
	}
	return DNAME{Target: n}, nil
}

func decodeDNAME(r *wire.Reader) (RData, error) {
	n, err := readName(r)
	if err != nil {
		return nil, err
	}
	return DNAME{Target: n}, nil
}

func (d DNAME) Type() rrtype.Type { return rrtype.DNAME }

// EncodeTo writes the target uncompressed: DNAME targets must not be
// compressed since they are substituted wholesale into the query name by
// resolvers, a detail that compression pointers would corrupt.
func (d DNAME) EncodeTo(r *render.Render) error { return r.WriteName(d.Target, false) }

func (d DNAME) Equal(other RData) bool {
	o, ok := other.(DNAME)
	return ok && string(d.Target.RawData()) == string(o.Target.RawData())
}

func (d DNAME) String() string { return d.Target.String() }
