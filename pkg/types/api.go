package types

import (
	"errors"
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies decode failures so callers can branch on intent
// rather than error text.
type ErrKind int

const (
	ErrKindMagic     ErrKind = iota // not a QHF file (bad 3-byte signature)
	ErrKindTruncated                // a read ran past the end of the buffer
	ErrKindLength                   // a length field is negative or unrepresentable
	ErrKindEncoding                 // decrypted or header bytes are not valid text
	ErrKindIO                       // the input file could not be read
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, returning ok = false for errors that did
// not originate in this package.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Core Data Model
// -----------------------------------------------------------------------------

// Direction says who sent a message.
type Direction uint8

const (
	Incoming Direction = iota
	Outgoing
)

func (d Direction) String() string {
	if d == Outgoing {
		return "outgoing"
	}
	return "incoming"
}

// TypeCode is the raw QHF message type byte. Codes missing from the known
// table pass through numerically; an unknown code is data, not an error.
type TypeCode uint8

var typeLabels = map[TypeCode]string{
	1:  "Online message",
	2:  "Message sending date",
	3:  "Message sender",
	5:  "Authorization request",
	6:  "Friend request",
	13: "Offline message",
	14: "Authorization request accepted",
	80: "QIP/ICQ service message (connection)",
	81: "QIP/ICQ service message (birthday)",
}

// Label returns the human-readable description for the code, or "Unknown"
// for codes outside the table. Historical QIP exports use the same word.
func (c TypeCode) Label() string {
	if s, ok := typeLabels[c]; ok {
		return s
	}
	return "Unknown"
}

// String implements the Stringer interface for TypeCode.
func (c TypeCode) String() string {
	if s, ok := typeLabels[c]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_TYPE_%d", uint8(c))
}

// Header carries the contact identity and the writer-declared counters of
// one history file. DeclaredSize and DeclaredCount come straight from the
// header and are informational only: real QHF writers record them
// inaccurately, so nothing in the decoder trusts them for bounds.
type Header struct {
	Version       uint8
	DeclaredSize  uint32
	DeclaredCount uint32
	UIN           string
	Nickname      string
}

// Message is one decoded message record, immutable after decode.
type Message struct {
	Timestamp uint32 // unix seconds
	Direction Direction
	Type      TypeCode
	Text      string
}

// Time returns the message timestamp as UTC wall time.
func (m Message) Time() time.Time {
	return time.Unix(int64(m.Timestamp), 0).UTC()
}

// History is a fully decoded QHF file. Messages keep their on-disk order,
// which is chronological order of appearance, not necessarily sorted by
// timestamp.
type History struct {
	Header   Header
	Messages []Message
}

// DecodeOptions tunes decoding behavior.
type DecodeOptions struct {
	// Latin1Fallback re-decodes strings that are not valid UTF-8 as
	// ISO 8859-1 instead of failing. Off by default: an explicit decode
	// error is more useful than silently mangled text.
	Latin1Fallback bool
}
