package rdata

import (
	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// RData is implemented by every supported record-type payload. Equality is
// structural: two RData values of the same concrete type with identical
// fields are Equal.
type RData interface {
	Type() rrtype.Type
	EncodeTo(r *render.Render) error
	Equal(other RData) bool
	String() string
}

// DecodeFrom reads exactly rdlen bytes of RDATA for the given type, failing
// with RdataLenIsNotCorrect if the type's codec consumed a different amount
// than declared. A type with no registered mnemonic fails with
// UnknownRRType; a type that is registered (rrtype.IsKnownType) but has no
// codec in this package fails with UnsupportedRRType.
func DecodeFrom(t rrtype.Type, r *wire.Reader, rdlen uint16) (RData, error) {
	const op = "rdata.DecodeFrom"
	start := r.Position()

	var (
		rd  RData
		err error
	)
	switch t {
	case rrtype.A:
		rd, err = decodeA(r)
	case rrtype.NS:
		rd, err = decodeNS(r)
	case rrtype.CNAME:
		rd, err = decodeCNAME(r)
	case rrtype.DNAME:
		rd, err = decodeDNAME(r)
	case rrtype.SOA:
		rd, err = decodeSOA(r)
	case rrtype.PTR:
		rd, err = decodePTR(r)
	case rrtype.MX:
		rd, err = decodeMX(r)
	case rrtype.TXT:
		rd, err = decodeTXT(r, int(rdlen))
	case rrtype.AAAA:
		rd, err = decodeAAAA(r)
	case rrtype.SRV:
		rd, err = decodeSRV(r)
	case rrtype.NAPTR:
		rd, err = decodeNAPTR(r)
	case rrtype.OPT:
		rd, err = decodeOPT(r, int(rdlen))
	case rrtype.DS:
		rd, err = decodeDS(r, int(rdlen))
	case rrtype.DNSKEY:
		rd, err = decodeDNSKEY(r, int(rdlen))
	case rrtype.RRSIG:
		rd, err = decodeRRSIG(r, int(rdlen))
	case rrtype.NSEC:
		rd, err = decodeNSEC(r, int(rdlen))
	default:
		if rrtype.IsKnownType(t) {
			return nil, dnserr.New(dnserr.KindUnsupportedRRType, op).WithDetail(t.String())
		}
		return nil, dnserr.New(dnserr.KindUnknownRRType, op).WithDetail(t.String())
	}
	if err != nil {
		return nil, err
	}
	if consumed := r.Position() - start; consumed != int(rdlen) {
		return nil, dnserr.New(dnserr.KindRdataLenIsNotCorrect, op)
	}
	return rd, nil
}

// Parse reads the presentation-form field sequence for the given type from s,
// in the field order laid out in each type's wire codec. Failures report
// InvalidRdataString (or InvalidIPv4Address/InvalidIPv6Address for address
// fields specifically) except for the same unknown/unsupported-type
// distinction DecodeFrom makes.
func Parse(t rrtype.Type, s string) (RData, error) {
	const op = "rdata.Parse"
	switch t {
	case rrtype.A:
		return NewA(s)
	case rrtype.NS:
		return ParseNS(s)
	case rrtype.CNAME:
		return ParseCNAME(s)
	case rrtype.DNAME:
		return ParseDNAME(s)
	case rrtype.SOA:
		return ParseSOA(s)
	case rrtype.PTR:
		return ParsePTR(s)
	case rrtype.MX:
		return ParseMX(s)
	case rrtype.TXT:
		return ParseTXT(s)
	case rrtype.AAAA:
		return NewAAAA(s)
	case rrtype.SRV:
		return ParseSRV(s)
	case rrtype.NAPTR:
		return ParseNAPTR(s)
	case rrtype.OPT:
		return ParseOPT(s)
	case rrtype.DS:
		return ParseDS(s)
	case rrtype.DNSKEY:
		return ParseDNSKEY(s)
	case rrtype.RRSIG:
		return ParseRRSIG(s)
	case rrtype.NSEC:
		return ParseNSEC(s)
	default:
		if rrtype.IsKnownType(t) {
			return nil, dnserr.New(dnserr.KindUnsupportedRRType, op).WithDetail(t.String())
		}
		return nil, dnserr.New(dnserr.KindUnknownRRType, op).WithDetail(t.String())
	}
}
