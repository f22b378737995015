package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}
	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_ViewByFocus(t *testing.T) {
	tests := []struct {
		name  string
		focus FooterFocus
		want  string
	}{
		{"input shows global bindings", FooterFocusInput, "toggle direction"},
		{"shift shows stepper", FooterFocusShift, "step"},
		{"output explains read-only", FooterFocusOutput, "edits are discarded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(200)
			footer.SetFocus(tt.focus)

			view := ansi.Strip(footer.View())
			if !strings.Contains(view, tt.want) {
				t.Errorf("View() = %q, want it to contain %q", view, tt.want)
			}
		})
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(100)
	footer.SetBindings([]KeyBinding{{Key: "x", Desc: "custom"}})

	view := ansi.Strip(footer.View())
	if !strings.Contains(view, "x: custom") {
		t.Errorf("Expected custom binding in %q", view)
	}
}

func TestFooter_Flash(t *testing.T) {
	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashError, "✕"},
		{FlashWarning, "⚠"},
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(80)
		footer.SetFlash("Copied", tt.flashType)

		if !footer.HasFlash() {
			t.Fatal("Expected flash to be set")
		}
		view := ansi.Strip(footer.View())
		if !strings.Contains(view, tt.icon+" Copied") {
			t.Errorf("View() = %q, want %q", view, tt.icon+" Copied")
		}
		if strings.Contains(view, "toggle direction") {
			t.Error("Bindings should be hidden while a flash shows")
		}
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("Copied", FlashSuccess)
	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected flash to be cleared")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	footer := NewFooter()
	footer.now = func() time.Time { return now }

	footer.SetFlash("Copied", FlashSuccess)

	if footer.ClearIfExpired() {
		t.Error("Flash should not expire immediately")
	}

	now = now.Add(FlashDuration)
	if !footer.ClearIfExpired() {
		t.Error("Flash should expire after FlashDuration")
	}
	if footer.HasFlash() {
		t.Error("Expected flash to be gone")
	}
	if footer.ClearIfExpired() {
		t.Error("Clearing twice should report false")
	}
}

func TestFooter_TruncatesToWidth(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(30)

	for _, line := range strings.Split(ansi.Strip(footer.View()), "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("Footer line width %d exceeds 30: %q", w, line)
		}
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
