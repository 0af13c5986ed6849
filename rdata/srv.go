package rdata

import (
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// SRV locates a service: priority, weight, port, and target host.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   name.Name
}

// ParseSRV parses the presentation form "<priority> <weight> <port> <target>".
func ParseSRV(s string) (SRV, error) {
	const op = "rdata.ParseSRV"
	sc := wire.NewScanner(s)
	priority, err := sc.NextUint16(op, "priority")
	if err != nil {
		return SRV{}, err
	}
	weight, err := sc.NextUint16(op, "weight")
	if err != nil {
		return SRV{}, err
	}
	port, err := sc.NextUint16(op, "port")
	if err != nil {
		return SRV{}, err
	}
	target, err := parseName(sc, op, "target")
	if err != nil {
		return SRV{}, err
	}
	return SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func decodeSRV(r *wire.Reader) (RData, error) {
	const op = "rdata.SRV.DecodeFrom"
	priority, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	weight, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	port, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	target, err := readName(r)
	if err != nil {
		return nil, err
	}
	return SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func (s SRV) Type() rrtype.Type { return rrtype.SRV }

func (s SRV) EncodeTo(r *render.Render) error {
	const op = "rdata.SRV.EncodeTo"
	if err := r.WriteU16(s.Priority, op); err != nil {
		return err
	}
	if err := r.WriteU16(s.Weight, op); err != nil {
		return err
	}
	if err := r.WriteU16(s.Port, op); err != nil {
		return err
	}
	return r.WriteName(s.Target, true)
}

func (s SRV) Equal(other RData) bool {
	o, ok := other.(SRV)
	return ok && s.Priority == o.Priority && s.Weight == o.Weight && s.Port == o.Port &&
		string(s.Target.RawData()) == string(o.Target.RawData())
}

func (s SRV) String() string {
	return strings.Join([]string{
		strconv.Itoa(int(s.Priority)), strconv.Itoa(int(s.Weight)),
		strconv.Itoa(int(s.Port)), s.Target.String(),
	}, " ")
}
