package format

import (
	"fmt"

	"qhfkit/internal/buf"
)

// Message is one decoded message record.
type Message struct {
	Timestamp uint32
	Outgoing  bool
	Type      uint8
	Text      string
}

// ParseMessage decodes one message block at the cursor position and
// advances the cursor past it. Field layout within the fixed block:
//
//	0x12   4  timestamp (unix seconds)
//	0x1A   1  direction (nonzero = sent by the local user)
//	0x1B   1  type code (unknown codes are data, not errors)
//	last   4  encrypted payload length
//
// Bytes not listed are reserved and skipped uninterpreted. The payload
// follows the fixed block, encrypted with the position-dependent XOR
// transform.
func ParseMessage(cur *Cursor, version uint8, latin1 bool) (Message, error) {
	block, err := cur.ReadBytes(BlockSize(version))
	if err != nil {
		return Message{}, fmt.Errorf("fixed block: %w", err)
	}
	length := buf.U32BE(block[len(block)-MsgLengthSize:])
	enc, err := cur.ReadBytes(int(length))
	if err != nil {
		return Message{}, fmt.Errorf("payload of %d bytes: %w", length, err)
	}
	text, err := DecodeText(Decrypt(enc), latin1)
	if err != nil {
		return Message{}, fmt.Errorf("payload text: %w", err)
	}
	return Message{
		Timestamp: buf.U32BE(block[MsgTimestampOffset:]),
		Outgoing:  block[MsgDirectionOffset] != 0,
		Type:      block[MsgTypeOffset],
		Text:      text,
	}, nil
}
