package format

import "fmt"

// History is a fully decoded QHF file. Messages keep their on-disk order,
// which is not necessarily sorted by timestamp.
type History struct {
	Header   Header
	Messages []Message
}

// ParseHistory decodes an entire QHF buffer: one header, then message
// blocks until the buffer is exhausted exactly at a block boundary.
//
// Any block failure fails the whole file; a silently truncated history is
// worse than an explicit error. Leftover bytes too short for a full block
// are a truncation failure, not end of data. The declared message count in
// the header is never consulted as a loop bound.
func ParseHistory(b []byte, latin1 bool) (History, error) {
	cur := NewCursor(b)
	hdr, err := ParseHeader(cur, latin1)
	if err != nil {
		return History{}, err
	}
	var msgs []Message
	for cur.Remaining() > 0 {
		start := cur.Pos()
		msg, err := ParseMessage(cur, hdr.Version, latin1)
		if err != nil {
			return History{}, fmt.Errorf("message %d at offset %d: %w", len(msgs)+1, start, err)
		}
		msgs = append(msgs, msg)
	}
	return History{Header: hdr, Messages: msgs}, nil
}
