package message

import "github.com/joshuafuller/dnswire/rrset"

// ResponseIterEntry pairs one RRset with the section it came from.
type ResponseIterEntry struct {
	RRset   *rrset.RRset
	Section SectionType
}

// ResponseIter is a double-ended iterator over every RRset in a Response,
// walking answer, then authority, then additional, in that order (or the
// reverse, from the back). It caches the per-section lengths at
// construction time, so mutating the Response through a ResponseBuilder
// while an iterator is live produces undefined results.
type ResponseIter struct {
	sections [3][]*rrset.RRset
	total    int
	front    int
	back     int
}

// Iter builds a ResponseIter snapshotting resp's three sections. The EDNS
// pseudo-record, if present, is appended as the final entry of the
// additional section, matching its position in the wire form.
func (resp *Response) Iter() *ResponseIter {
	it := &ResponseIter{sections: resp.sections}
	if resp.Edns != nil {
		additional := append(append([]*rrset.RRset{}, resp.sections[SectionAdditional]...), resp.Edns.ToRRset())
		it.sections[SectionAdditional] = additional
	}
	for _, s := range it.sections {
		it.total += len(s)
	}
	it.back = it.total
	return it
}

// Len reports the number of RRsets remaining between the front and back
// cursors.
func (it *ResponseIter) Len() int { return it.back - it.front }

func (it *ResponseIter) locate(index int) ResponseIterEntry {
	for sec, rrs := range it.sections {
		if index < len(rrs) {
			return ResponseIterEntry{RRset: rrs[index], Section: SectionType(sec)}
		}
		index -= len(rrs)
	}
	panic("message: ResponseIter index out of range")
}

// Next returns the next RRset from the front, or ok=false when exhausted.
func (it *ResponseIter) Next() (ResponseIterEntry, bool) {
	if it.front >= it.back {
		return ResponseIterEntry{}, false
	}
	e := it.locate(it.front)
	it.front++
	return e, true
}

// NextBack returns the next RRset from the back, or ok=false when
// exhausted.
func (it *ResponseIter) NextBack() (ResponseIterEntry, bool) {
	if it.front >= it.back {
		return ResponseIterEntry{}, false
	}
	it.back--
	return it.locate(it.back), true
}
