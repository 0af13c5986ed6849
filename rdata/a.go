package rdata

import (
	"net"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// A is the IPv4 address record.
type A struct {
	Host net.IP
}

func NewA(s string) (A, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return A{}, dnserr.New(dnserr.KindInvalidIPv4Address, "rdata.NewA").WithDetail(s)
	}
	return A{Host: ip.To4()}, nil
}

func decodeA(r *wire.Reader) (RData, error) {
	ip, err := readIPv4(r, "rdata.A.DecodeFrom")
	if err != nil {
		return nil, err
	}
	return A{Host: ip}, nil
}

func (a A) Type() rrtype.Type { return rrtype.A }

func (a A) EncodeTo(r *render.Render) error {
	return writeIPv4(r, a.Host, "rdata.A.EncodeTo")
}

func (a A) Equal(other RData) bool {
	o, ok := other.(A)
	return ok && a.Host.Equal(o.Host)
}

func (a A) String() string { return a.Host.String() }
