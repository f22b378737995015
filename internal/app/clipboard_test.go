package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCopyOutput(t *testing.T) {
	m, cb := testModelWithSize(testConfig(), 80, 24)
	m = typeText(m, "abc")

	cmd := sendKeyCmd(m, "ctrl+y")
	if cmd == nil {
		t.Error("Expected a flash tick command")
	}
	if len(cb.written) != 1 || cb.written[0] != "ghi" {
		t.Errorf("clipboard = %v, want [ghi]", cb.written)
	}
	if !strings.Contains(ansi.Strip(m.footer.View()), "Copied ciphertext") {
		t.Error("Expected a success flash")
	}
}

func TestCopyOutput_Decrypting(t *testing.T) {
	m, cb := testModelWithSize(testConfig(), 80, 24)
	m = sendKey(m, "ctrl+t")
	m = typeText(m, "ghi")
	sendKey(m, "ctrl+y")

	if len(cb.written) != 1 || cb.written[0] != "abc" {
		t.Errorf("clipboard = %v, want [abc]", cb.written)
	}
}

func TestCopyOutput_Empty(t *testing.T) {
	m, cb := testModelWithSize(testConfig(), 80, 24)
	sendKey(m, "ctrl+y")

	if len(cb.written) != 0 {
		t.Errorf("nothing should be copied, got %v", cb.written)
	}
	if !strings.Contains(ansi.Strip(m.footer.View()), "Nothing to copy") {
		t.Error("Expected a warning flash")
	}
}

func TestCopyOutput_ClipboardError(t *testing.T) {
	m, cb := testModelWithSize(testConfig(), 80, 24)
	cb.err = errNoClipboard
	m = typeText(m, "abc")
	sendKey(m, "ctrl+y")

	if !strings.Contains(ansi.Strip(m.footer.View()), "no clipboard") {
		t.Error("Expected the clipboard error in the footer")
	}
}
