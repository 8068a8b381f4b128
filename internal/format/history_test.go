package format

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHistoryMultipleMessages(t *testing.T) {
	b := buildHeader(3, 0, 0, []byte("555"), []byte("Carol"))
	b = append(b, buildMessage(3, 100, 0x01, 1, Encrypt([]byte("first")))...)
	b = append(b, buildMessage(3, 90, 0x00, 13, Encrypt([]byte("second")))...)

	hist, err := ParseHistory(b, false)
	if err != nil {
		t.Fatalf("ParseHistory: %v", err)
	}
	if len(hist.Messages) != 2 {
		t.Fatalf("message count: got %d want 2", len(hist.Messages))
	}
	// File order is preserved even when timestamps are out of order.
	if hist.Messages[0].Text != "first" || hist.Messages[1].Text != "second" {
		t.Fatalf("order mismatch: %+v", hist.Messages)
	}
	if hist.Messages[0].Timestamp != 100 || hist.Messages[1].Timestamp != 90 {
		t.Fatalf("timestamps mismatch: %+v", hist.Messages)
	}
}

func TestParseHistoryHeaderOnly(t *testing.T) {
	b := buildHeader(2, 0, 0, []byte("1"), []byte("n"))
	hist, err := ParseHistory(b, false)
	if err != nil {
		t.Fatalf("ParseHistory: %v", err)
	}
	if len(hist.Messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(hist.Messages))
	}
}

func TestParseHistoryTrailingPartialBlock(t *testing.T) {
	// Leftover bytes shorter than a fixed block are a truncation failure,
	// not end of valid data.
	b := buildHeader(2, 0, 0, []byte("1"), []byte("n"))
	b = append(b, make([]byte, MsgBlockSizeV1-1)...)
	_, err := ParseHistory(b, false)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "message 1") {
		t.Fatalf("error should name the failing message: %v", err)
	}
}

func TestParseHistoryDistrustsDeclaredCount(t *testing.T) {
	// The header claims 99 messages; the file carries one. The loop is
	// bounded by the buffer, so this decodes cleanly.
	b := buildHeader(2, 7, 99, []byte("1"), []byte("n"))
	b = append(b, buildMessage(2, 5, 0x00, 1, Encrypt([]byte("only")))...)
	hist, err := ParseHistory(b, false)
	if err != nil {
		t.Fatalf("ParseHistory: %v", err)
	}
	if len(hist.Messages) != 1 {
		t.Fatalf("message count: got %d want 1", len(hist.Messages))
	}
	if hist.Header.DeclaredCount != 99 || hist.Header.DeclaredSize != 7 {
		t.Fatalf("declared counters must be retained: %+v", hist.Header)
	}
}

func TestParseHistorySecondMessageFailureNamesIndex(t *testing.T) {
	b := buildHeader(2, 0, 0, []byte("1"), []byte("n"))
	b = append(b, buildMessage(2, 5, 0x00, 1, Encrypt([]byte("ok")))...)
	b = append(b, buildMessage(2, 6, 0x00, 1, Encrypt([]byte("bad")))[:MsgBlockSizeV1+1]...)
	_, err := ParseHistory(b, false)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if !strings.Contains(err.Error(), "message 2") {
		t.Fatalf("error should name message 2: %v", err)
	}
}
