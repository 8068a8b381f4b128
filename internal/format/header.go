package format

import (
	"bytes"
	"fmt"
)

// Header captures the QHF file header. The diagram below shows the layout;
// all multi-byte integers are big-endian.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------------
//	 0x00    3    'Q' 'H' 'F'
//	 0x03    1    Format version
//	 0x04    4    Declared file size
//	 0x08    4    Declared message count
//	 0x0C    2    UIN length, UIN bytes follow
//	  ...    2    Nickname length, nickname bytes follow
//
// The declared size and count are recorded for diagnostics only. Real QHF
// writers get them wrong, so they are never used to bound reads or loops.
type Header struct {
	Version       uint8
	DeclaredSize  uint32
	DeclaredCount uint32
	UIN           string
	Nickname      string
}

// ParseHeader validates the magic and extracts the header fields, leaving
// cur positioned at the first byte after the header.
func ParseHeader(cur *Cursor, latin1 bool) (Header, error) {
	magic, err := cur.ReadBytes(MagicSize)
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: %w", err)
	}
	if !bytes.Equal(magic, Magic) {
		return Header{}, fmt.Errorf("qhf header: %w", ErrBadMagic)
	}
	version, err := cur.ReadU8()
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: version: %w", err)
	}
	declaredSize, err := cur.ReadU32BE()
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: declared size: %w", err)
	}
	declaredCount, err := cur.ReadU32BE()
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: declared count: %w", err)
	}
	uinRaw, err := cur.ReadPrefixedBytes()
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: uin: %w", err)
	}
	uin, err := DecodeText(uinRaw, latin1)
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: uin: %w", err)
	}
	nickRaw, err := cur.ReadPrefixedBytes()
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: nickname: %w", err)
	}
	nick, err := DecodeText(nickRaw, latin1)
	if err != nil {
		return Header{}, fmt.Errorf("qhf header: nickname: %w", err)
	}
	return Header{
		Version:       version,
		DeclaredSize:  declaredSize,
		DeclaredCount: declaredCount,
		UIN:           uin,
		Nickname:      nick,
	}, nil
}
