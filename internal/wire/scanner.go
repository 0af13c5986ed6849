package wire

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/joshuafuller/dnswire/internal/dnserr"
)

var errQuoteNotClosed = errors.New("quote in character-string isn't closed")

// Scanner tokenizes RFC 1035 presentation-form RDATA text: whitespace-
// separated fields read in declaration order, with a quoted character-string
// form for the "text" field codec. It mirrors the field-at-a-time pull style
// of a hand-rolled line scanner rather than a full text/scanner state
// machine, since RDATA presentation form has no nesting beyond one level of
// quoting.
type Scanner struct {
	raw []byte
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{raw: []byte(s)}
}

func (s *Scanner) isEOS() bool { return s.pos >= len(s.raw) }

func isScanSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.isEOS() && isScanSpace(s.raw[s.pos]) {
		s.pos++
	}
}

func errEmptyField(op, field string) error {
	return dnserr.New(dnserr.KindInvalidRdataString, op).WithDetail(field + ": empty")
}

func errBadField(op, field string, cause error) error {
	return dnserr.New(dnserr.KindInvalidRdataString, op).WithDetail(field + ": " + cause.Error())
}

// NextString returns the next whitespace-delimited token, or false if the
// scanner is exhausted.
func (s *Scanner) NextString() (string, bool) {
	s.skipWhitespace()
	start := s.pos
	for !s.isEOS() && !isScanSpace(s.raw[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", false
	}
	return string(s.raw[start:s.pos]), true
}

// Rest returns every byte not yet consumed, without trimming leading
// whitespace, or false if the scanner is exhausted.
func (s *Scanner) Rest() (string, bool) {
	if s.isEOS() {
		return "", false
	}
	return string(s.raw[s.pos:]), true
}

// NextUint8 reads the next token as a decimal u8 field.
func (s *Scanner) NextUint8(op, field string) (uint8, error) {
	tok, ok := s.NextString()
	if !ok {
		return 0, errEmptyField(op, field)
	}
	v, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		return 0, errBadField(op, field, err)
	}
	return uint8(v), nil
}

// NextUint16 reads the next token as a decimal u16 field.
func (s *Scanner) NextUint16(op, field string) (uint16, error) {
	tok, ok := s.NextString()
	if !ok {
		return 0, errEmptyField(op, field)
	}
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, errBadField(op, field, err)
	}
	return uint16(v), nil
}

// NextUint32 reads the next token as a decimal u32 field.
func (s *Scanner) NextUint32(op, field string) (uint32, error) {
	tok, ok := s.NextString()
	if !ok {
		return 0, errEmptyField(op, field)
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, errBadField(op, field, err)
	}
	return uint32(v), nil
}

// NextCharString reads one "character-string" field: either a bare token
// copied verbatim, or a double-quoted run in which '\' followed by three
// decimal digits (value at most 255) stands for that byte and '\' followed
// by any other byte stands for that byte literally (the \ddd/\c escaping of
// the byte_binary codec; an unquoted token needs no unescaping).
func (s *Scanner) NextCharString(op, field string) ([]byte, error) {
	s.skipWhitespace()
	if s.isEOS() {
		return nil, errEmptyField(op, field)
	}
	if s.raw[s.pos] != '"' {
		tok, ok := s.NextString()
		if !ok {
			return nil, errEmptyField(op, field)
		}
		return []byte(tok), nil
	}

	s.pos++
	var out []byte
	closed := false
	for !s.isEOS() {
		c := s.raw[s.pos]
		if c == '\\' && s.pos+1 < len(s.raw) {
			if d := s.raw[s.pos+1:]; len(d) >= 3 && d[0] >= '0' && d[0] <= '9' && d[1] >= '0' && d[1] <= '9' && d[2] >= '0' && d[2] <= '9' {
				if v := int(d[0]-'0')*100 + int(d[1]-'0')*10 + int(d[2]-'0'); v <= 255 {
					out = append(out, byte(v))
					s.pos += 4
					continue
				}
			}
			out = append(out, s.raw[s.pos+1])
			s.pos += 2
			continue
		}
		s.pos++
		if c == '"' {
			closed = true
			break
		}
		out = append(out, c)
	}
	if !closed {
		return nil, errBadField(op, field, errQuoteNotClosed)
	}
	return out, nil
}

// NextText reads the rest of the RDATA as the "text" field codec: one or
// more character-strings up to the end of the input, each either
// double-quoted or a bare whitespace-separated token (see NextCharString).
func (s *Scanner) NextText(op, field string) ([][]byte, error) {
	s.skipWhitespace()
	if s.isEOS() {
		return nil, errEmptyField(op, field)
	}

	var data [][]byte
	for !s.isEOS() {
		cs, err := s.NextCharString(op, field)
		if err != nil {
			return nil, err
		}
		data = append(data, cs)
		s.skipWhitespace()
	}
	if len(data) == 0 {
		return nil, errEmptyField(op, field)
	}
	return data, nil
}

// NextHex reads the next token and decodes it as hex, for the "binary" field
// codec when the whole remaining RDATA is presented as one unbroken string.
func (s *Scanner) NextHex(op, field string) ([]byte, error) {
	tok, ok := s.NextString()
	if !ok {
		return nil, errEmptyField(op, field)
	}
	data, err := hex.DecodeString(tok)
	if err != nil {
		return nil, errBadField(op, field, err)
	}
	return data, nil
}

// NextBase64 joins every remaining token (whitespace, including embedded
// newlines, is not significant to base64) and decodes the result, for the
// "base64" field codec, and consumes the scanner to its end.
func (s *Scanner) NextBase64(op, field string) ([]byte, error) {
	rest, ok := s.Rest()
	if !ok {
		return nil, errEmptyField(op, field)
	}
	joined := strings.Join(strings.Fields(rest), "")
	if joined == "" {
		return nil, errEmptyField(op, field)
	}
	data, err := base64.StdEncoding.DecodeString(joined)
	if err != nil {
		return nil, errBadField(op, field, err)
	}
	s.pos = len(s.raw)
	return data, nil
}
