package rdata

import (
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// TXT carries one or more character-strings of free-form text.
type TXT struct {
	Data [][]byte
}

// ParseTXT parses the presentation form: one or more whitespace-separated
// character-strings filling the rest of the line, each either double-quoted
// or a bare token.
func ParseTXT(s string) (TXT, error) {
	const op = "rdata.ParseTXT"
	sc := wire.NewScanner(s)
	data, err := sc.NextText(op, "data")
	if err != nil {
		return TXT{}, err
	}
	return TXT{Data: data}, nil
}

func decodeTXT(r *wire.Reader, rdlen int) (RData, error) {
	const op = "rdata.TXT.DecodeFrom"
	var data [][]byte
	read := 0
	for read < rdlen {
		cs, err := readCharString(r, op)
		if err != nil {
			return nil, err
		}
		data = append(data, cs)
		read += 1 + len(cs)
	}
	return TXT{Data: data}, nil
}

func (t TXT) Type() rrtype.Type { return rrtype.TXT }

func (t TXT) EncodeTo(r *render.Render) error {
	const op = "rdata.TXT.EncodeTo"
	for _, cs := range t.Data {
		if err := writeCharString(r, cs, op); err != nil {
			return err
		}
	}
	return nil
}

func (t TXT) Equal(other RData) bool {
	o, ok := other.(TXT)
	if !ok || len(t.Data) != len(o.Data) {
		return false
	}
	for i := range t.Data {
		if string(t.Data[i]) != string(o.Data[i]) {
			return false
		}
	}
	return true
}

func (t TXT) String() string {
	parts := make([]string, len(t.Data))
	for i, cs := range t.Data {
		parts[i] = formatCharString(cs)
	}
	return strings.Join(parts, " ")
}
