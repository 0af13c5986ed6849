// Package rrtype defines the DNS enumerations carried on the wire: resource
// record type and class, message opcode and response code, and the header
// flag bits. Every enumeration keeps an escape hatch for values it does not
// name, since unknown RR types and classes must still round-trip.
package rrtype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/dnserr"
)

// Type is a DNS resource record type.
type Type uint16

const (
	A          Type = 1
	NS         Type = 2
	CNAME      Type = 5
	SOA        Type = 6
	PTR        Type = 12
	MX         Type = 15
	TXT        Type = 16
	AAAA       Type = 28
	SRV        Type = 33
	NAPTR      Type = 35
	DNAME      Type = 39
	OPT        Type = 41
	DS         Type = 43
	RRSIG      Type = 46
	NSEC       Type = 47
	DNSKEY     Type = 48
	NSEC3      Type = 50
	NSEC3PARAM Type = 51
	TSIG       Type = 250
	IXFR       Type = 251
	AXFR       Type = 252
	ANY        Type = 255
)

var typeNames = map[Type]string{
	A: "A", NS: "NS", CNAME: "CNAME", SOA: "SOA", PTR: "PTR", MX: "MX",
	TXT: "TXT", AAAA: "AAAA", SRV: "SRV", NAPTR: "NAPTR", DNAME: "DNAME", OPT: "OPT",
	DS: "DS", RRSIG: "RRSIG", NSEC: "NSEC", DNSKEY: "DNSKEY",
	NSEC3: "NSEC3", NSEC3PARAM: "NSEC3PARAM", TSIG: "TSIG",
	IXFR: "IXFR", AXFR: "AXFR", ANY: "ANY",
}

var nameTypes = reverse(typeNames)

func reverse(m map[Type]string) map[string]Type {
	out := make(map[string]Type, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// String renders t in its mnemonic form, or "TYPEnnn" if t has no mnemonic.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// IsKnownType reports whether t has a registered mnemonic. A type can be
// known without this package's caller having a dedicated RDATA codec for
// it (e.g. TSIG, IXFR): that distinction belongs to the caller.
func IsKnownType(t Type) bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType parses a mnemonic or a "TYPEnnn" escape into a Type.
func ParseType(s string) (Type, error) {
	if t, ok := nameTypes[strings.ToUpper(s)]; ok {
		return t, nil
	}
	if n, ok := strings.CutPrefix(strings.ToUpper(s), "TYPE"); ok {
		v, err := strconv.ParseUint(n, 10, 16)
		if err != nil {
			return 0, dnserr.New(dnserr.KindUnknownRRType, "rrtype.ParseType").WithDetail(s)
		}
		return Type(v), nil
	}
	return 0, dnserr.New(dnserr.KindUnknownRRType, "rrtype.ParseType").WithDetail(s)
}

// Class is a DNS resource record class.
type Class uint16

const (
	IN   Class = 1
	CH   Class = 3
	HS   Class = 4
	NONE Class = 254
	ANYC Class = 255
)

var classNames = map[Class]string{IN: "IN", CH: "CH", HS: "HS", NONE: "NONE", ANYC: "ANY"}
var nameClasses = reverseClass(classNames)

func reverseClass(m map[Class]string) map[string]Class {
	out := make(map[string]Class, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// ParseClass parses a mnemonic or a "CLASSnnn" escape into a Class.
func ParseClass(s string) (Class, error) {
	if c, ok := nameClasses[strings.ToUpper(s)]; ok {
		return c, nil
	}
	if n, ok := strings.CutPrefix(strings.ToUpper(s), "CLASS"); ok {
		v, err := strconv.ParseUint(n, 10, 16)
		if err != nil {
			return 0, dnserr.New(dnserr.KindInvalidClassString, "rrtype.ParseClass").WithDetail(s)
		}
		return Class(v), nil
	}
	return 0, dnserr.New(dnserr.KindInvalidClassString, "rrtype.ParseClass").WithDetail(s)
}

// Opcode is the DNS message opcode carried in the header flags.
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5
)

func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "QUERY"
	case OpcodeIQuery:
		return "IQUERY"
	case OpcodeStatus:
		return "STATUS"
	case OpcodeNotify:
		return "NOTIFY"
	case OpcodeUpdate:
		return "UPDATE"
	default:
		return fmt.Sprintf("RESERVED%d", uint8(o))
	}
}

// Rcode is the DNS message response code.
type Rcode uint8

const (
	RcodeNoError  Rcode = 0
	RcodeFormErr  Rcode = 1
	RcodeServFail Rcode = 2
	RcodeNXDomain Rcode = 3
	RcodeNotImp   Rcode = 4
	RcodeRefused  Rcode = 5
	RcodeYXDomain Rcode = 6
	RcodeYXRRset  Rcode = 7
	RcodeNXRRset  Rcode = 8
	RcodeNotAuth  Rcode = 9
	RcodeNotZone  Rcode = 10
)

var rcodeNames = map[Rcode]string{
	RcodeNoError: "NOERROR", RcodeFormErr: "FORMERR", RcodeServFail: "SERVFAIL",
	RcodeNXDomain: "NXDOMAIN", RcodeNotImp: "NOTIMP", RcodeRefused: "REFUSED",
	RcodeYXDomain: "YXDOMAIN", RcodeYXRRset: "YXRRSET", RcodeNXRRset: "NXRRSET",
	RcodeNotAuth: "NOTAUTH", RcodeNotZone: "NOTZONE",
}

func (r Rcode) String() string {
	if s, ok := rcodeNames[r]; ok {
		return s
	}
	return fmt.Sprintf("RESERVED%d", uint8(r))
}

// HeaderFlag is one of the single-bit flags carried in the header's flag
// word, the QR bit included; the opcode and rcode fields are represented
// separately.
type HeaderFlag uint16

const (
	FlagQR HeaderFlag = 1 << 15
	FlagAA HeaderFlag = 1 << 10
	FlagTC HeaderFlag = 1 << 9
	FlagRD HeaderFlag = 1 << 8
	FlagRA HeaderFlag = 1 << 7
	FlagAD HeaderFlag = 1 << 5
	FlagCD HeaderFlag = 1 << 4
)

func (f HeaderFlag) String() string {
	switch f {
	case FlagQR:
		return "qr"
	case FlagAA:
		return "aa"
	case FlagTC:
		return "tc"
	case FlagRD:
		return "rd"
	case FlagRA:
		return "ra"
	case FlagAD:
		return "ad"
	case FlagCD:
		return "cd"
	default:
		return "unknown"
	}
}

// IsSet reports whether f is present in flags.
func (f HeaderFlag) IsSet(flags uint16) bool { return flags&uint16(f) != 0 }

// Set returns flags with f set.
func (f HeaderFlag) Set(flags uint16) uint16 { return flags | uint16(f) }

// Clear returns flags with f cleared.
func (f HeaderFlag) Clear(flags uint16) uint16 { return flags &^ uint16(f) }
