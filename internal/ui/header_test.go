package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.direction != "" {
		t.Error("Expected empty direction initially")
	}
}

func TestHeader_SetWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
}

func TestHeader_View(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		shift     int
		want      []string
		notWant   []string
	}{
		{
			name:    "title only before status is set",
			want:    []string{"caesar cipher"},
			notWant: []string{"shift"},
		},
		{
			name:      "encryption",
			direction: "Encryption",
			shift:     6,
			want:      []string{"caesar cipher", "Encryption · shift 6"},
		},
		{
			name:      "decryption",
			direction: "Decryption",
			shift:     25,
			want:      []string{"Decryption · shift 25"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewHeader()
			header.SetWidth(80)
			header.SetStatus(tt.direction, tt.shift)

			view := ansi.Strip(header.View())
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("View() = %q, want it to contain %q", view, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("View() = %q, should not contain %q", view, w)
				}
			}
		})
	}
}

func TestHeader_ViewFillsWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)
	header.SetStatus("Encryption", 6)

	if got := runewidth.StringWidth(ansi.Strip(header.View())); got != 60 {
		t.Errorf("Expected header width 60, got %d", got)
	}
}

func TestHeader_ViewTruncatesNarrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(10)
	header.SetStatus("Encryption", 6)

	if got := runewidth.StringWidth(ansi.Strip(header.View())); got > 10 {
		t.Errorf("Expected header to fit in 10 columns, got %d", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"invalid", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
