package rdata

import (
	"net"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// AAAA is the IPv6 address record.
type AAAA struct {
	Host net.IP
}

func NewAAAA(s string) (AAAA, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() != nil {
		return AAAA{}, dnserr.New(dnserr.KindInvalidIPv6Address, "rdata.NewAAAA").WithDetail(s)
	}
	return AAAA{Host: ip.To16()}, nil
}

func decodeAAAA(r *wire.Reader) (RData, error) {
	ip, err := readIPv6(r, "rdata.AAAA.DecodeFrom")
	if err != nil {
		return nil, err
	}
	return AAAA{Host: ip}, nil
}

func (a AAAA) Type() rrtype.Type { return rrtype.AAAA }

func (a AAAA) EncodeTo(r *render.Render) error {
	return writeIPv6(r, a.Host, "rdata.AAAA.EncodeTo")
}

func (a AAAA) Equal(other RData) bool {
	o, ok := other.(AAAA)
	return ok && a.Host.Equal(o.Host)
}

// String renders the address per RFC 5952, which is what net.IP.String()
// already produces for a 16-byte IP.
func (a AAAA) String() string { return a.Host.String() }
