// Package rdata implements the per-RRType RDATA variants, built from a
// small set of shared field codecs (name, IPv4/IPv6 address, fixed-width
// integer, character-string, text, binary, base64, timestamp).
package rdata

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joshuafuller/dnswire/internal/dnserr"
	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

const timestampLayout = "20060102150405"

// readCharString reads a u8 length prefix followed by that many bytes (a
// "character-string" in RFC 1035 terms).
func readCharString(r *wire.Reader, op string) ([]byte, error) {
	l, err := r.ReadU8(op)
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBytes(int(l), op)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data...), nil
}

func writeCharString(w *render.Render, data []byte, op string) error {
	if len(data) > 255 {
		return dnserr.New(dnserr.KindCharStringTooLong, op)
	}
	if err := w.WriteU8(uint8(len(data)), op); err != nil {
		return err
	}
	return w.WriteBytes(data, op)
}

// formatCharString renders data as a double-quoted string: '"' and '\' are
// escaped with a backslash, and bytes outside 0x21-0x7e as \DDD.
func formatCharString(data []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range data {
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c > 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\%03d", c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func readIPv4(r *wire.Reader, op string) (net.IP, error) {
	b, err := r.ReadBytes(4, op)
	if err != nil {
		return nil, err
	}
	return net.IPv4(b[0], b[1], b[2], b[3]), nil
}

func writeIPv4(w *render.Render, ip net.IP, op string) error {
	v4 := ip.To4()
	if v4 == nil {
		return dnserr.New(dnserr.KindInvalidIPv4Address, op)
	}
	return w.WriteBytes(v4, op)
}

func readIPv6(r *wire.Reader, op string) (net.IP, error) {
	b, err := r.ReadBytes(16, op)
	if err != nil {
		return nil, err
	}
	ip := make(net.IP, 16)
	copy(ip, b)
	return ip, nil
}

func writeIPv6(w *render.Render, ip net.IP, op string) error {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return dnserr.New(dnserr.KindInvalidIPv6Address, op)
	}
	return w.WriteBytes(v6, op)
}

// readRemaining reads whatever is left of the declared RDATA length (the
// "binary" and "base64" codecs, and OPT's options blob).
func readRemaining(r *wire.Reader, remaining int, op string) ([]byte, error) {
	data, err := r.ReadBytes(remaining, op)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data...), nil
}

func formatBinary(data []byte) string { return hex.EncodeToString(data) }

func formatBase64(data []byte) string { return base64.StdEncoding.EncodeToString(data) }

func formatTimestamp(v uint32) string {
	return time.Unix(int64(v), 0).UTC().Format(timestampLayout)
}

func parseTimestamp(s, op, field string) (uint32, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return 0, errBadField(op, field, err)
	}
	return uint32(t.Unix()), nil
}

// readName decodes a name from the RDATA stream, consuming (and following)
// compression pointers exactly as the Name codec does within a full message.
func readName(r *wire.Reader) (name.Name, error) {
	return name.DecodeFrom(r)
}

func errBadField(op, field string, cause error) error {
	return dnserr.New(dnserr.KindInvalidRdataString, op).WithDetail(field + ": " + cause.Error())
}

func errEmptyField(op, field string) error {
	return dnserr.New(dnserr.KindInvalidRdataString, op).WithDetail(field + ": empty")
}

// parseName reads the next token as a presentation-form name field.
func parseName(sc *wire.Scanner, op, field string) (name.Name, error) {
	tok, ok := sc.NextString()
	if !ok {
		return name.Name{}, errEmptyField(op, field)
	}
	n, err := name.Parse(tok)
	if err != nil {
		return name.Name{}, errBadField(op, field, err)
	}
	return n, nil
}

// parseRRType reads the next token as a mnemonic or TYPEnnn rrtype field.
func parseRRType(sc *wire.Scanner, op, field string) (rrtype.Type, error) {
	tok, ok := sc.NextString()
	if !ok {
		return 0, errEmptyField(op, field)
	}
	t, err := rrtype.ParseType(tok)
	if err != nil {
		return 0, errBadField(op, field, err)
	}
	return t, nil
}

// parseTimestampField reads the next token as a YYYYMMDDHHmmSS timestamp.
func parseTimestampField(sc *wire.Scanner, op, field string) (uint32, error) {
	tok, ok := sc.NextString()
	if !ok {
		return 0, errEmptyField(op, field)
	}
	return parseTimestamp(tok, op, field)
}
