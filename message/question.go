package message

import (
	"strings"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
	"github.com/joshuafuller/dnswire/render"
	"github.com/joshuafuller/dnswire/rrtype"
)

// Question is the single entry of a message's question section: a name,
// type, and class to look up.
type Question struct {
	Name  name.Name
	Type  rrtype.Type
	Class rrtype.Class
}

// DecodeQuestion reads one question entry.
func DecodeQuestion(r *wire.Reader) (Question, error) {
	const op = "message.DecodeQuestion"
	n, err := name.DecodeFrom(r)
	if err != nil {
		return Question{}, err
	}
	typ, err := r.ReadU16(op)
	if err != nil {
		return Question{}, err
	}
	class, err := r.ReadU16(op)
	if err != nil {
		return Question{}, err
	}
	return Question{Name: n, Type: rrtype.Type(typ), Class: rrtype.Class(class)}, nil
}

// EncodeTo writes the question entry, name-compressed like any other owner
// name (it is simply always the first name in the message, so compression
// never finds a prior match).
func (q Question) EncodeTo(r *render.Render) error {
	const op = "message.Question.EncodeTo"
	if err := r.WriteName(q.Name, true); err != nil {
		return err
	}
	if err := r.WriteU16(uint16(q.Type), op); err != nil {
		return err
	}
	return r.WriteU16(uint16(q.Class), op)
}

func (q Question) String() string {
	return strings.Join([]string{q.Name.String(), q.Class.String(), q.Type.String()}, " ")
}
