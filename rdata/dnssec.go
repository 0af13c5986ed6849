package rdata

import (
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// The DNSSEC types below are parsed and encoded to their known-prefix wire
// shape (RFC 4034) but carry their cryptographic payload as an opaque blob;
// this package never validates a signature or a digest.

// DS delegates trust to a child zone's key.
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

// ParseDS parses the presentation form
// "<key-tag> <algorithm> <digest-type> <digest>", digest as hex.
func ParseDS(s string) (DS, error) {
	const op = "rdata.ParseDS"
	sc := wire.NewScanner(s)
	keyTag, err := sc.NextUint16(op, "key-tag")
	if err != nil {
		return DS{}, err
	}
	algo, err := sc.NextUint8(op, "algorithm")
	if err != nil {
		return DS{}, err
	}
	digestType, err := sc.NextUint8(op, "digest-type")
	if err != nil {
		return DS{}, err
	}
	digest, err := sc.NextHex(op, "digest")
	if err != nil {
		return DS{}, err
	}
	return DS{KeyTag: keyTag, Algorithm: algo, DigestType: digestType, Digest: digest}, nil
}

func decodeDS(r *wire.Reader, rdlen int) (RData, error) {
	const op = "rdata.DS.DecodeFrom"
	keyTag, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	digestType, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	digest, err := readRemaining(r, rdlen-4, op)
	if err != nil {
		return nil, err
	}
	return DS{KeyTag: keyTag, Algorithm: algo, DigestType: digestType, Digest: digest}, nil
}

func (d DS) Type() rrtype.Type { return rrtype.DS }

func (d DS) EncodeTo(r *render.Render) error {
	const op = "rdata.DS.EncodeTo"
	if err := r.WriteU16(d.KeyTag, op); err != nil {
		return err
	}
	if err := r.WriteU8(d.Algorithm, op); err != nil {
		return err
	}
	if err := r.WriteU8(d.DigestType, op); err != nil {
		return err
	}
	return r.WriteBytes(d.Digest, op)
}

func (d DS) Equal(other RData) bool {
	o, ok := other.(DS)
	return ok && d.KeyTag == o.KeyTag && d.Algorithm == o.Algorithm &&
		d.DigestType == o.DigestType && string(d.Digest) == string(o.Digest)
}

func (d DS) String() string {
	return strings.Join([]string{
		strconv.Itoa(int(d.KeyTag)), strconv.Itoa(int(d.Algorithm)),
		strconv.Itoa(int(d.DigestType)), formatBinary(d.Digest),
	}, " ")
}

// DNSKEY carries a zone or key-signing public key.
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

// ParseDNSKEY parses the presentation form
// "<flags> <protocol> <algorithm> <public-key>", the key as base64.
func ParseDNSKEY(s string) (DNSKEY, error) {
	const op = "rdata.ParseDNSKEY"
	sc := wire.NewScanner(s)
	flags, err := sc.NextUint16(op, "flags")
	if err != nil {
		return DNSKEY{}, err
	}
	protocol, err := sc.NextUint8(op, "protocol")
	if err != nil {
		return DNSKEY{}, err
	}
	algo, err := sc.NextUint8(op, "algorithm")
	if err != nil {
		return DNSKEY{}, err
	}
	key, err := sc.NextBase64(op, "public-key")
	if err != nil {
		return DNSKEY{}, err
	}
	return DNSKEY{Flags: flags, Protocol: protocol, Algorithm: algo, PublicKey: key}, nil
}

func decodeDNSKEY(r *wire.Reader, rdlen int) (RData, error) {
	const op = "rdata.DNSKEY.DecodeFrom"
	flags, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	protocol, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	key, err := readRemaining(r, rdlen-4, op)
	if err != nil {
		return nil, err
	}
	return DNSKEY{Flags: flags, Protocol: protocol, Algorithm: algo, PublicKey: key}, nil
}

func (k DNSKEY) Type() rrtype.Type { return rrtype.DNSKEY }

func (k DNSKEY) EncodeTo(r *render.Render) error {
	const op = "rdata.DNSKEY.EncodeTo"
	if err := r.WriteU16(k.Flags, op); err != nil {
		return err
	}
	if err := r.WriteU8(k.Protocol, op); err != nil {
		return err
	}
	if err := r.WriteU8(k.Algorithm, op); err != nil {
		return err
	}
	return r.WriteBytes(k.PublicKey, op)
}

func (k DNSKEY) Equal(other RData) bool {
	o, ok := other.(DNSKEY)
	return ok && k.Flags == o.Flags && k.Protocol == o.Protocol &&
		k.Algorithm == o.Algorithm && string(k.PublicKey) == string(o.PublicKey)
}

func (k DNSKEY) String() string {
	return strings.Join([]string{
		strconv.Itoa(int(k.Flags)), strconv.Itoa(int(k.Protocol)),
		strconv.Itoa(int(k.Algorithm)), formatBase64(k.PublicKey),
	}, " ")
}

// RRSIG carries a DNSSEC signature over an RRset.
type RRSIG struct {
	TypeCovered rrtype.Type
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  name.Name
	Signature   []byte
}

// ParseRRSIG parses the presentation form "<type-covered> <algorithm>
// <labels> <original-ttl> <expiration> <inception> <key-tag> <signer-name>
// <signature>", expiration/inception as YYYYMMDDHHmmSS timestamps and the
// signature as base64.
func ParseRRSIG(s string) (RRSIG, error) {
	const op = "rdata.ParseRRSIG"
	sc := wire.NewScanner(s)
	typeCovered, err := parseRRType(sc, op, "type-covered")
	if err != nil {
		return RRSIG{}, err
	}
	algo, err := sc.NextUint8(op, "algorithm")
	if err != nil {
		return RRSIG{}, err
	}
	labels, err := sc.NextUint8(op, "labels")
	if err != nil {
		return RRSIG{}, err
	}
	originalTTL, err := sc.NextUint32(op, "original-ttl")
	if err != nil {
		return RRSIG{}, err
	}
	expiration, err := parseTimestampField(sc, op, "expiration")
	if err != nil {
		return RRSIG{}, err
	}
	inception, err := parseTimestampField(sc, op, "inception")
	if err != nil {
		return RRSIG{}, err
	}
	keyTag, err := sc.NextUint16(op, "key-tag")
	if err != nil {
		return RRSIG{}, err
	}
	signerName, err := parseName(sc, op, "signer-name")
	if err != nil {
		return RRSIG{}, err
	}
	signature, err := sc.NextBase64(op, "signature")
	if err != nil {
		return RRSIG{}, err
	}
	return RRSIG{
		TypeCovered: typeCovered, Algorithm: algo, Labels: labels,
		OriginalTTL: originalTTL, Expiration: expiration, Inception: inception,
		KeyTag: keyTag, SignerName: signerName, Signature: signature,
	}, nil
}

func decodeRRSIG(r *wire.Reader, rdlen int) (RData, error) {
	const op = "rdata.RRSIG.DecodeFrom"
	start := r.Position()
	typeCovered, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	labels, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	originalTTL, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	expiration, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	inception, err := r.ReadU32(op)
	if err != nil {
		return nil, err
	}
	keyTag, err := r.ReadU16(op)
	if err != nil {
		return nil, err
	}
	signerName, err := readName(r)
	if err != nil {
		return nil, err
	}
	consumed := r.Position() - start
	sig, err := readRemaining(r, rdlen-consumed, op)
	if err != nil {
		return nil, err
	}
	return RRSIG{
		TypeCovered: rrtype.Type(typeCovered), Algorithm: algo, Labels: labels,
		OriginalTTL: originalTTL, Expiration: expiration, Inception: inception,
		KeyTag: keyTag, SignerName: signerName, Signature: sig,
	}, nil
}

func (s RRSIG) Type() rrtype.Type { return rrtype.RRSIG }

func (s RRSIG) EncodeTo(r *render.Render) error {
	const op = "rdata.RRSIG.EncodeTo"
	if err := r.WriteU16(uint16(s.TypeCovered), op); err != nil {
		return err
	}
	if err := r.WriteU8(s.Algorithm, op); err != nil {
		return err
	}
	if err := r.WriteU8(s.Labels, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.OriginalTTL, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.Expiration, op); err != nil {
		return err
	}
	if err := r.WriteU32(s.Inception, op); err != nil {
		return err
	}
	if err := r.WriteU16(s.KeyTag, op); err != nil {
		return err
	}
	// RFC 4034 forbids compressing the signer name.
	if err := r.WriteName(s.SignerName, false); err != nil {
		return err
	}
	return r.WriteBytes(s.Signature, op)
}

func (s RRSIG) Equal(other RData) bool {
	o, ok := other.(RRSIG)
	return ok && s.TypeCovered == o.TypeCovered && s.Algorithm == o.Algorithm &&
		s.Labels == o.Labels && s.OriginalTTL == o.OriginalTTL &&
		s.Expiration == o.Expiration && s.Inception == o.Inception &&
		s.KeyTag == o.KeyTag && string(s.SignerName.RawData()) == string(o.SignerName.RawData()) &&
		string(s.Signature) == string(o.Signature)
}

func (s RRSIG) String() string {
	return strings.Join([]string{
		s.TypeCovered.String(), strconv.Itoa(int(s.Algorithm)), strconv.Itoa(int(s.Labels)),
		strconv.FormatUint(uint64(s.OriginalTTL), 10),
		formatTimestamp(s.Expiration), formatTimestamp(s.Inception),
		strconv.Itoa(int(s.KeyTag)), s.SignerName.String(), formatBase64(s.Signature),
	}, " ")
}

// NSEC lists the next owner name in canonical order and the RR types
// present at the current owner.
type NSEC struct {
	NextDomainName name.Name
	TypeBitMaps    []byte
}

// ParseNSEC parses the presentation form "<next-domain-name> <type-bit-maps>",
// the bitmap encoded as one unbroken hex string.
func ParseNSEC(s string) (NSEC, error) {
	const op = "rdata.ParseNSEC"
	sc := wire.NewScanner(s)
	next, err := parseName(sc, op, "next-domain-name")
	if err != nil {
		return NSEC{}, err
	}
	bitmaps, err := sc.NextHex(op, "type-bit-maps")
	if err != nil {
		return NSEC{}, err
	}
	return NSEC{NextDomainName: next, TypeBitMaps: bitmaps}, nil
}

func decodeNSEC(r *wire.Reader, rdlen int) (RData, error) {
	const op = "rdata.NSEC.DecodeFrom"
	start := r.Position()
	next, err := readName(r)
	if err != nil {
		return nil, err
	}
	consumed := r.Position() - start
	bitmaps, err := readRemaining(r, rdlen-consumed, op)
	if err != nil {
		return nil, err
	}
	return NSEC{NextDomainName: next, TypeBitMaps: bitmaps}, nil
}

func (n NSEC) Type() rrtype.Type { return rrtype.NSEC }

func (n NSEC) EncodeTo(r *render.Render) error {
	if err := r.WriteName(n.NextDomainName, false); err != nil {
		return err
	}
	return r.WriteBytes(n.TypeBitMaps, "rdata.NSEC.EncodeTo")
}

func (n NSEC) Equal(other RData) bool {
	o, ok := other.(NSEC)
	return ok && string(n.NextDomainName.RawData()) == string(o.NextDomainName.RawData()) &&
		string(n.TypeBitMaps) == string(o.TypeBitMaps)
}

func (n NSEC) String() string {
	return strings.Join([]string{n.NextDomainName.String(), formatBinary(n.TypeBitMaps)}, " ")
}
