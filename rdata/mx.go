package rdata

import (
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// MX is a mail exchanger with a preference.
type MX struct {
	Preference uint16
	Exchange   name.Name
}

// ParseMX parses the presentation form "<preference> <exchange>".
func ParseMX(s string) (MX, error) {
	const op = "rdata.ParseMX"
	sc := wire.NewScanner(s)
	pref, err := sc.NextUint16(op, "preference")
	if err != nil {
		return MX{}, err
	}
	exchange, err := parseName(sc, op, "exchange")
	if err != nil {
		return MX{}, err
	}
	return MX{Preference: pref, Exchange: exchange}, nil
}

func decodeMX(r *wire.Reader) (RData, error) {
	const op = "rdata.MX.DecodeFrom"
	pref, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	n, err := readName(r)
	if err != nil {
		return nil, err
	}
	return MX{Preference: pref, Exchange: n}, nil
}

func (mx MX) Type() rrtype.Type { return rrtype.MX }

func (mx MX) EncodeTo(r *render.Render) error {
	if err := r.WriteU16(mx.Preference, "rdata.MX.EncodeTo"); err != nil {
		return err
	}
	return r.WriteName(mx.Exchange, true)
}

func (mx MX) Equal(other RData) bool {
	o, ok := other.(MX)
	return ok && mx.Preference == o.Preference && string(mx.Exchange.RawData()) == string(o.Exchange.RawData())
}

func (mx MX) String() string {
	return strings.Join([]string{strconv.Itoa(int(mx.Preference)), mx.Exchange.String()}, " ")
}
