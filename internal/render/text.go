package render

import (
	"strings"

	"qhfkit/pkg/types"
)

// textTimeLayout is the human-readable UTC timestamp used in text logs.
const textTimeLayout = "2006-01-02 15:04:05 MST"

// Text renders h as a line-oriented chat log: one entry per message with
// sender name and UTC timestamp on the first line and the message text
// below, entries separated by a blank line.
func Text(h *types.History) []byte {
	var sb strings.Builder
	for i, m := range h.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Sender(m, h.Header.Nickname))
		sb.WriteString(" [")
		sb.WriteString(m.Time().Format(textTimeLayout))
		sb.WriteString("]\n")
		sb.WriteString(m.Text)
	}
	return []byte(sb.String())
}
