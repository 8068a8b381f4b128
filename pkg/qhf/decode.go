package qhf

import (
	"errors"
	"os"

	"qhfkit/internal/format"
	"qhfkit/internal/mmfile"
	"qhfkit/pkg/types"
)

// Decode decodes an entire QHF buffer with default (strict) options.
func Decode(b []byte) (*types.History, error) {
	return DecodeWithOptions(b, types.DecodeOptions{})
}

// DecodeWithOptions decodes an entire QHF buffer. Any failure aborts the
// whole decode; there is no partial-history recovery. The returned error
// is a *types.Error whose message names the failing phase, message index,
// and byte offset.
func DecodeWithOptions(b []byte, opts types.DecodeOptions) (*types.History, error) {
	hist, err := format.ParseHistory(b, opts.Latin1Fallback)
	if err != nil {
		return nil, wrapFormatErr(err)
	}
	return toPublic(hist), nil
}

// DecodeFile reads the file at path fully into memory and decodes it.
func DecodeFile(path string, opts types.DecodeOptions) (*types.History, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "read qhf file", Err: err}
	}
	return DecodeWithOptions(b, opts)
}

// Open maps the file at path and decodes it. Mapping avoids a copy for
// large archives; the mapping is released before Open returns, so the
// returned history owns all of its memory.
func Open(path string, opts types.DecodeOptions) (*types.History, error) {
	b, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "map qhf file", Err: err}
	}
	hist, decErr := DecodeWithOptions(b, opts)
	if unmap != nil {
		_ = unmap()
	}
	return hist, decErr
}

func toPublic(h format.History) *types.History {
	out := &types.History{
		Header: types.Header{
			Version:       h.Header.Version,
			DeclaredSize:  h.Header.DeclaredSize,
			DeclaredCount: h.Header.DeclaredCount,
			UIN:           h.Header.UIN,
			Nickname:      h.Header.Nickname,
		},
		Messages: make([]types.Message, 0, len(h.Messages)),
	}
	for _, m := range h.Messages {
		dir := types.Incoming
		if m.Outgoing {
			dir = types.Outgoing
		}
		out.Messages = append(out.Messages, types.Message{
			Timestamp: m.Timestamp,
			Direction: dir,
			Type:      types.TypeCode(m.Type),
			Text:      m.Text,
		})
	}
	return out
}

func wrapFormatErr(err error) error {
	kind := types.ErrKindTruncated
	switch {
	case errors.Is(err, format.ErrBadMagic):
		kind = types.ErrKindMagic
	case errors.Is(err, format.ErrInvalidLength):
		kind = types.ErrKindLength
	case errors.Is(err, format.ErrInvalidEncoding):
		kind = types.ErrKindEncoding
	}
	return &types.Error{Kind: kind, Msg: "decode qhf history", Err: err}
}
