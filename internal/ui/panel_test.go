package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestTextPanel_Labels(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		want    []string
		notWant []string
	}{
		{
			name:    "active panel is the input",
			active:  true,
			want:    []string{"Plaintext", "Input", "3 chars"},
			notWant: []string{"Output", "read-only"},
		},
		{
			name:   "derived panel is read-only output",
			active: false,
			want:   []string{"Plaintext", "Output", "(read-only)", "3 chars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewTextPanel("Plaintext", false)
			panel.SetSize(70, 6)
			panel.SetActive(tt.active)
			panel.SetValue("abc")

			view := ansi.Strip(panel.View())
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("View() missing %q:\n%s", w, view)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("View() should not contain %q", w)
				}
			}
		})
	}
}

func TestTextPanel_CountsGraphemes(t *testing.T) {
	panel := NewTextPanel("Ciphertext", true)
	panel.SetSize(70, 6)
	panel.SetActive(true)
	// "e" plus a combining acute accent is one character on screen
	panel.SetValue("cafe\u0301")

	view := ansi.Strip(panel.View())
	if !strings.Contains(view, "4 chars") {
		t.Errorf("Expected '4 chars' in:\n%s", view)
	}
}

func TestTextPanel_Typing(t *testing.T) {
	panel := NewTextPanel("Plaintext", false)
	panel.SetSize(70, 6)
	panel.SetFocused(true)

	for _, r := range "hi" {
		panel.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	if panel.Value() != "hi" {
		t.Errorf("Value() = %q, want %q", panel.Value(), "hi")
	}
}

func TestTextPanel_BlurredIgnoresTyping(t *testing.T) {
	panel := NewTextPanel("Plaintext", false)
	panel.SetSize(70, 6)
	panel.SetFocused(false)

	panel.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if panel.Value() != "" {
		t.Errorf("Blurred panel accepted input: %q", panel.Value())
	}
}

func TestTextPanel_Focus(t *testing.T) {
	panel := NewTextPanel("Plaintext", false)

	panel.SetFocused(true)
	if !panel.IsFocused() {
		t.Error("Expected panel to be focused")
	}
	panel.SetFocused(false)
	if panel.IsFocused() {
		t.Error("Expected panel to be blurred")
	}
}

func TestTextPanel_ViewWidth(t *testing.T) {
	panel := NewTextPanel("Plaintext", false)
	panel.SetSize(50, 6)
	panel.SetActive(true)

	for _, line := range strings.Split(ansi.Strip(panel.View()), "\n") {
		if w := ansi.StringWidth(line); w > 50 {
			t.Errorf("line width %d exceeds 50: %q", w, line)
		}
	}
}
