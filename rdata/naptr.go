package rdata

import (
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// NAPTR is a naming-authority pointer used by dynamic delegation discovery.
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Services    []byte
	Regexp      []byte
	Replacement name.Name
}

// ParseNAPTR parses the presentation form
// "<order> <preference> <flags> <services> <regexp> <replacement>".
func ParseNAPTR(s string) (NAPTR, error) {
	const op = "rdata.ParseNAPTR"
	sc := wire.NewScanner(s)
	order, err := sc.NextUint16(op, "order")
	if err != nil {
		return NAPTR{}, err
	}
	preference, err := sc.NextUint16(op, "preference")
	if err != nil {
		return NAPTR{}, err
	}
	flags, err := sc.NextCharString(op, "flags")
	if err != nil {
		return NAPTR{}, err
	}
	services, err := sc.NextCharString(op, "services")
	if err != nil {
		return NAPTR{}, err
	}
	regexp, err := sc.NextCharString(op, "regexp")
	if err != nil {
		return NAPTR{}, err
	}
	replacement, err := parseName(sc, op, "replacement")
	if err != nil {
		return NAPTR{}, err
	}
	return NAPTR{
		Order: order, Preference: preference, Flags: flags,
		Services: services, Regexp: regexp, Replacement: replacement,
	}, nil
}

func decodeNAPTR(r *wire.Reader) (RData, error) {
	const op = "rdata.NAPTR.DecodeFrom"
	order, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	preference, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	flags, err := readCharString(r, op)
	if err != nil {
		return nil, err
	}
	services, err := readCharString(r, op)
	if err != nil {
		return nil, err
	}
	regexp, err := readCharString(r, op)
	if err != nil {
		return nil, err
	}
	replacement, err := readName(r)
	if err != nil {
		return nil, err
	}
	return NAPTR{
		Order: order, Preference: preference, Flags: flags,
		Services: services, Regexp: regexp, Replacement: replacement,
	}, nil
}

func (n NAPTR) Type() rrtype.Type { return rrtype.NAPTR }

func (n NAPTR) EncodeTo(r *render.Render) error {
	const op = "rdata.NAPTR.EncodeTo"
	if err := r.WriteU16(n.Order, op); err != nil {
		return err
	}
	if err := r.WriteU16(n.Preference, op); err != nil {
		return err
	}
	if err := writeCharString(r, n.Flags, op); err != nil {
		return err
	}
	if err := writeCharString(r, n.Services, op); err != nil {
		return err
	}
	if err := writeCharString(r, n.Regexp, op); err != nil {
		return err
	}
	// NAPTR replacement names must not be compressed (RFC 2915 §2).
	return r.WriteName(n.Replacement, false)
}

func (n NAPTR) Equal(other RData) bool {
	o, ok := other.(NAPTR)
	return ok && n.Order == o.Order && n.Preference == o.Preference &&
		string(n.Flags) == string(o.Flags) && string(n.Services) == string(o.Services) &&
		string(n.Regexp) == string(o.Regexp) &&
		string(n.Replacement.RawData()) == string(o.Replacement.RawData())
}

func (n NAPTR) String() string {
	return strings.Join([]string{
		strconv.Itoa(int(n.Order)), strconv.Itoa(int(n.Preference)),
		formatCharString(n.Flags), formatCharString(n.Services), formatCharString(n.Regexp),
		n.Replacement.String(),
	}, " ")
}
