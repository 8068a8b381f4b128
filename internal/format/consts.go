// Package format houses the low-level decoders for the QHF (QIP History
// File) chat archive format. The goal is to keep the byte-level parsing
// focused and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

var (
	// Magic is the three-byte signature at the start of every QHF file.
	// Layout:
	//   0x00  'Q' 'H' 'F'
	Magic = []byte{'Q', 'H', 'F'}
)

const (
	// MagicSize is the length of the file signature.
	MagicSize = 3

	// Header field offsets. All multi-byte integers are big-endian.
	VersionOffset       = 0x03 // uint8 format version
	DeclaredSizeOffset  = 0x04 // uint32 file size as recorded by the writer
	DeclaredCountOffset = 0x08 // uint32 message count as recorded by the writer
	UINLenOffset        = 0x0C // uint16 UIN length, UIN bytes follow

	// FixedHeaderSize covers the magic through the UIN length field. The
	// UIN and nickname are length-prefixed and variable, so the full
	// header size is only known after reading them.
	FixedHeaderSize = UINLenOffset + 2

	// Message block field offsets relative to the start of each block.
	MsgTimestampOffset = 0x12 // uint32 unix seconds
	MsgDirectionOffset = 0x1A // uint8, nonzero = sent by the local user
	MsgTypeOffset      = 0x1B // uint8 type code

	// MsgLengthSize is the trailing encrypted-payload length field. It
	// always occupies the final 4 bytes of the fixed block regardless of
	// the block size.
	MsgLengthSize = 4

	// Fixed message block sizes. Version 3 of the format grew the block
	// by two bytes; everything this decoder reads sits at the same
	// offsets in both variants, the extra bytes are reserved.
	MsgBlockSizeV1 = 0x21 // versions below 3
	MsgBlockSizeV3 = 0x23 // version 3 and later

	// MsgBlockVersionSplit is the first header version using the larger block.
	MsgBlockVersionSplit = 3
)

// BlockSize returns the fixed message block size for a header version.
func BlockSize(version uint8) int {
	if version >= MsgBlockVersionSplit {
		return MsgBlockSizeV3
	}
	return MsgBlockSizeV1
}
