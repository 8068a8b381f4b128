// Package render turns decoded QHF histories into their JSON and
// plain-text export forms. Rendering never fails on message content; all
// validation happens during decode.
package render

import (
	"encoding/json"
	"time"

	"qhfkit/pkg/types"
)

// Document is the JSON export schema: contact identity plus one entry per
// message carrying both the numeric type code and its mapped label. The
// field names match the exports produced by earlier QHF converters so
// downstream tooling keeps working.
type Document struct {
	UIN      string  `json:"uin"`
	Nickname string  `json:"nickname"`
	Messages []Entry `json:"messages"`
}

// Entry is one rendered message.
type Entry struct {
	Sender        string `json:"sender"`
	TimestampUnix uint32 `json:"timestamp_unix"`
	TimestampISO  string `json:"timestamp_iso"`
	IsOutgoing    bool   `json:"is_outgoing"`
	TypeCode      uint8  `json:"message_type_code"`
	TypeLabel     string `json:"message_type_description"`
	Text          string `json:"text"`
}

// NewDocument maps a decoded history onto the export schema.
func NewDocument(h *types.History) Document {
	doc := Document{
		UIN:      h.Header.UIN,
		Nickname: h.Header.Nickname,
		Messages: make([]Entry, 0, len(h.Messages)),
	}
	for _, m := range h.Messages {
		doc.Messages = append(doc.Messages, Entry{
			Sender:        Sender(m, h.Header.Nickname),
			TimestampUnix: m.Timestamp,
			TimestampISO:  m.Time().Format(time.RFC3339),
			IsOutgoing:    m.Direction == types.Outgoing,
			TypeCode:      uint8(m.Type),
			TypeLabel:     m.Type.Label(),
			Text:          m.Text,
		})
	}
	return doc
}

// JSON renders h as indented JSON.
func JSON(h *types.History) ([]byte, error) {
	return json.MarshalIndent(NewDocument(h), "", "    ")
}

// Sender returns the display name for a message: "Me" for outgoing, the
// contact nickname otherwise.
func Sender(m types.Message, nickname string) string {
	if m.Direction == types.Outgoing {
		return "Me"
	}
	if nickname == "" {
		return "Unknown Contact"
	}
	return nickname
}
