// Package testutil builds synthetic QHF buffers for decoder and tool
// tests. It is the only place outside internal/format that touches the
// wire layout.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"qhfkit/internal/format"
)

// Header describes the header fields of a synthetic history.
type Header struct {
	Version       uint8
	DeclaredSize  uint32
	DeclaredCount uint32
	UIN           string
	Nickname      string
}

// Message describes one synthetic message. Text is stored encrypted with
// the forward transform, the way a real QHF writer would.
type Message struct {
	Timestamp uint32
	Direction byte
	Type      uint8
	Text      string
}

// Build assembles a complete QHF buffer.
func Build(h Header, msgs ...Message) []byte {
	var out []byte
	out = append(out, format.Magic...)
	out = append(out, h.Version)
	out = binary.BigEndian.AppendUint32(out, h.DeclaredSize)
	out = binary.BigEndian.AppendUint32(out, h.DeclaredCount)
	out = binary.BigEndian.AppendUint16(out, uint16(len(h.UIN)))
	out = append(out, h.UIN...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(h.Nickname)))
	out = append(out, h.Nickname...)
	for _, m := range msgs {
		out = append(out, BuildMessage(h.Version, m)...)
	}
	return out
}

// BuildMessage assembles one fixed message block plus its encrypted payload.
func BuildMessage(version uint8, m Message) []byte {
	block := make([]byte, format.BlockSize(version))
	binary.BigEndian.PutUint32(block[format.MsgTimestampOffset:], m.Timestamp)
	block[format.MsgDirectionOffset] = m.Direction
	block[format.MsgTypeOffset] = m.Type
	enc := format.Encrypt([]byte(m.Text))
	binary.BigEndian.PutUint32(block[len(block)-format.MsgLengthSize:], uint32(len(enc)))
	return append(block, enc...)
}

// WriteFile writes a synthetic history into dir and returns its path.
func WriteFile(t *testing.T, dir, name string, h Header, msgs ...Message) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(h, msgs...), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
