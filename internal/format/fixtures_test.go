package format

import "encoding/binary"

// buildHeader assembles a valid header for tests.
func buildHeader(version uint8, declaredSize, declaredCount uint32, uin, nick []byte) []byte {
	var out []byte
	out = append(out, Magic...)
	out = append(out, version)
	out = binary.BigEndian.AppendUint32(out, declaredSize)
	out = binary.BigEndian.AppendUint32(out, declaredCount)
	out = binary.BigEndian.AppendUint16(out, uint16(len(uin)))
	out = append(out, uin...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(nick)))
	out = append(out, nick...)
	return out
}

// buildMessage assembles a fixed block plus payload. The payload bytes are
// appended verbatim, so callers pass pre-encrypted data (or garbage when
// testing failures).
func buildMessage(version uint8, ts uint32, direction, typeCode byte, payload []byte) []byte {
	block := make([]byte, BlockSize(version))
	binary.BigEndian.PutUint32(block[MsgTimestampOffset:], ts)
	block[MsgDirectionOffset] = direction
	block[MsgTypeOffset] = typeCode
	binary.BigEndian.PutUint32(block[len(block)-MsgLengthSize:], uint32(len(payload)))
	return append(block, payload...)
}
