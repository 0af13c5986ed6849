package rdata

import (
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// SOA marks the start of a zone of authority.
type SOA struct {
	Mname   name.Name
	Rname   name.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

// ParseSOA parses the presentation form
// "<mname> <rname> <serial> <refresh> <retry> <expire> <minimum>".
func ParseSOA(s string) (SOA, error) {
	const op = "rdata.ParseSOA"
	sc := wire.NewScanner(s)
	mname, err := parseName(sc, op, "mname")
	if err != nil {
		return SOA{}, err
	}
	rname, err := parseName(sc, op, "rname")
	if err != nil {
		return SOA{}, err
	}
	serial, err := sc.NextUint32(op, "serial")
	if err != nil {
		return SOA{}, err
	}
	refresh, err := sc.NextUint32(op, "refresh")
	if err != nil {
		return SOA{}, err
	}
	retry, err := sc.NextUint32(op, "retry")
	if err != nil {
		return SOA{}, err
	}
	expire, err := sc.NextUint32(op, "expire")
	if err != nil {
		return SOA{}, err
	}
	minimum, err := sc.NextUint32(op, "minimum")
	if err != nil {
		return SOA{}, err
	}
	return SOA{
		Mname: mname, Rname: rname, Serial: serial, Refresh: refresh,
		Retry: retry, Expire: expire, Minimum: minimum,
	}, nil
}

func decodeSOA(r *wire.Reader) (RData, error) {
	const op = "rdata.SOA.DecodeFrom"
	mname, err := readName(r)
	if err != nil {
		return nil, err
	}
	rname, err := readName(r)
	if err != nil {
		return nil, err
	}
	serial, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	refresh, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	retry, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	expire, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	minimum, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	return SOA{
		Mname: mname, Rname: rname, Serial: serial, Refresh: refresh,
		Retry: retry, Expire: expire, Minimum: minimum,
	}, nil
}

func (s SOA) Type() rrtype.Type { return rrtype.SOA }

func (s SOA) EncodeTo(r *render.Render) error {
	const op = "rdata.SOA.EncodeTo"
	if err := r.WriteName(s.Mname, true); err != nil {
		return err
	}
	if err := r.WriteName(s.Rname, true); err != nil {
		return err
	}
	if err := r.WriteU32(s.Serial, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.Refresh, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.Retry, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.Expire, op); err != nil {
		return err
	}
	return r.WriteU32(s.Minimum, op)
}

func (s SOA) Equal(other RData) bool {
	o, ok := other.(SOA)
	return ok && string(s.Mname.RawData()) == string(o.Mname.RawData()) &&
		string(s.Rname.RawData()) == string(o.Rname.RawData()) &&
		s.Serial == o.Serial && s.Refresh == o.Refresh &&
		s.Retry == o.Retry && s.Expire == o.Expire && s.Minimum == o.Minimum
}

func (s SOA) String() string {
	return strings.Join([]string{
		s.Mname.String(), s.Rname.String(),
		strconv.FormatUint(uint64(s.Serial), 10),
		strconv.FormatUint(uint64(s.Refresh), 10),
		strconv.FormatUint(uint64(s.Retry), 10),
		strconv.FormatUint(uint64(s.Expire), 10),
		strconv.FormatUint(uint64(s.Minimum), 10),
	}, " ")
}
