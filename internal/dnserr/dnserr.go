// Package dnserr defines the error kinds returned by the wire codec and
// domain tree packages.
//
// Every decode/parse/structural operation that can fail returns an *Error
// carrying a Kind, so callers can branch with errors.Is against the sentinel
// values below instead of matching on message text.
package dnserr

import "fmt"

// Kind discriminates the error conditions a caller may want to branch on.
type Kind int

const (
	_ Kind = iota
	KindIncompleteWire
	KindTooLongName
	KindTooLongLabel
	KindInvalidDecimalFormat
	KindInvalidLabelCharacter
	KindDuplicatePeriod
	KindNonTerminateLabel
	KindBadCompressPointer
	KindIncompleteName
	KindUnknownRRType
	KindUnsupportedRRType
	KindRdataLenIsNotCorrect
	KindInvalidIPv4Address
	KindInvalidIPv6Address
	KindInvalidTtlString
	KindInvalidClassString
	KindInvalidRRsetString
	KindInvalidRdataString
	KindInvalidLabelSequenceConcatParam
	KindInvalidLabelIndex
	KindWriteOutOfRange
	KindReadOutOfRange
	KindShortOfQuestion
	KindCharStringTooLong
	KindOptMisplaced
)

var kindText = map[Kind]string{
	KindIncompleteWire:                  "wire format is incomplete",
	KindTooLongName:                     "name is too long",
	KindTooLongLabel:                    "label is too long",
	KindInvalidDecimalFormat:            "escaped decimal is not valid",
	KindInvalidLabelCharacter:           "label character is not valid",
	KindDuplicatePeriod:                 "duplicate period in name",
	KindNonTerminateLabel:               "empty label before the end of the name",
	KindBadCompressPointer:              "compression pointer is not valid",
	KindIncompleteName:                  "name did not terminate before end of buffer",
	KindUnknownRRType:                   "rr type is unknown",
	KindUnsupportedRRType:               "rr type is not supported",
	KindRdataLenIsNotCorrect:            "rdata length does not match consumed bytes",
	KindInvalidIPv4Address:              "ipv4 address is not valid",
	KindInvalidIPv6Address:              "ipv6 address is not valid",
	KindInvalidTtlString:                "ttl string is not valid",
	KindInvalidClassString:              "class string is not valid",
	KindInvalidRRsetString:              "rrset string is not valid",
	KindInvalidRdataString:              "rdata string is not valid",
	KindInvalidLabelSequenceConcatParam: "label sequence concat parameter is not valid",
	KindInvalidLabelIndex:               "label index is out of range",
	KindWriteOutOfRange:                 "write is out of buffer range",
	KindReadOutOfRange:                  "read is out of buffer range",
	KindShortOfQuestion:                 "message is short of a question",
	KindCharStringTooLong:               "character-string exceeds 255 octets",
	KindOptMisplaced:                    "opt record must reside in additional section",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error"
}

// Error is the single error type returned across the wire codec and domain
// tree packages. Op names the failing operation (e.g. "name.Parse"); Offset
// is -1 when not meaningful for the failure.
type Error struct {
	Kind   Kind
	Op     string
	Offset int
	Detail string
	Err    error
}

func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op, Offset: -1}
}

func (e *Error) WithOffset(offset int) *Error {
	e.Offset = offset
	return e
}

func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, dnserr.New(dnserr.KindBadCompressPointer, "")) works without
// matching Op/Offset/Detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
