package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24, "caesar"); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines [][]byte
	for scanner.Scan() {
		lines = append(lines, append([]byte(nil), scanner.Bytes()...))
	}
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 events, got %d lines", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal(lines[0], &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 || header.Title != "caesar" {
		t.Errorf("header = %+v", header)
	}

	var event []any
	if err := json.Unmarshal(lines[2], &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if event[0].(float64) != 1.5 {
		t.Errorf("second event time = %v, want 1.5", event[0])
	}
	if event[1] != "o" {
		t.Errorf("event type = %v, want o", event[1])
	}

	var first []any
	if err := json.Unmarshal(lines[1], &first); err != nil {
		t.Fatalf("event: %v", err)
	}
	if first[2] != clearScreen+"one\r\ntwo" {
		t.Errorf("frame data = %q", first[2])
	}
}
