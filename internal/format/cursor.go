package format

import (
	"fmt"

	"qhfkit/internal/buf"
)

// Cursor is a bounds-checked sequential reader over an in-memory buffer.
// Every read advances the position; every failure is a wrapped sentinel
// error carrying the offending offset. The cursor performs no I/O and
// never reads outside its buffer.
type Cursor struct {
	b   []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the count of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.pos }

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if !buf.Has(c.b, c.pos, 1) {
		return 0, fmt.Errorf("cursor: u8 at offset %d: %w", c.pos, ErrTruncated)
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

// ReadU16BE reads a big-endian uint16.
func (c *Cursor) ReadU16BE() (uint16, error) {
	if !buf.Has(c.b, c.pos, 2) {
		return 0, fmt.Errorf("cursor: u16 at offset %d: %w", c.pos, ErrTruncated)
	}
	v := buf.U16BE(c.b[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32BE reads a big-endian uint32.
func (c *Cursor) ReadU32BE() (uint32, error) {
	if !buf.Has(c.b, c.pos, 4) {
		return 0, fmt.Errorf("cursor: u32 at offset %d: %w", c.pos, ErrTruncated)
	}
	v := buf.U32BE(c.b[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes returns the next n bytes verbatim. A negative n means a length
// field upstream was corrupt, which is reported as ErrInvalidLength rather
// than a bounds failure.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cursor: %d-byte run at offset %d: %w", n, c.pos, ErrInvalidLength)
	}
	s, ok := buf.Slice(c.b, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("cursor: %d-byte run at offset %d: %w", n, c.pos, ErrTruncated)
	}
	c.pos += n
	return s, nil
}

// ReadPrefixedBytes reads a big-endian uint16 length followed by that many bytes.
func (c *Cursor) ReadPrefixedBytes() ([]byte, error) {
	n, err := c.ReadU16BE()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// Seek repositions the cursor to an absolute offset within [0, len].
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.b) {
		return fmt.Errorf("cursor: seek to %d of %d: %w", off, len(c.b), ErrTruncated)
	}
	c.pos = off
	return nil
}

// Skip advances the cursor by n bytes. Negative n moves backwards; the
// target must stay within [0, len].
func (c *Cursor) Skip(n int) error {
	end, ok := buf.AddOverflowSafe(c.pos, n)
	if !ok || end < 0 || end > len(c.b) {
		return fmt.Errorf("cursor: skip %d at offset %d: %w", n, c.pos, ErrTruncated)
	}
	c.pos = end
	return nil
}
