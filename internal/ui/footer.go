package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg is sent when a flash message should be checked for expiry.
type FlashTickMsg time.Time

// FlashTick returns a command that fires FlashTickMsg after FlashDuration.
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterFocus is the focus context the footer picks bindings for.
type FooterFocus int

const (
	FooterFocusShift FooterFocus = iota
	FooterFocusInput
	FooterFocusOutput
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width    int
	bindings []KeyBinding
	focus    FooterFocus

	flashText    string
	flashType    FlashType
	flashExpires time.Time
	now          func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "ctrl+t", Desc: "toggle direction"},
			{Key: "ctrl+↑/↓", Desc: "shift"},
			{Key: "ctrl+y", Desc: "copy output"},
			{Key: "ctrl+s", Desc: "settings"},
			{Key: "f1", Desc: "help"},
			{Key: "esc", Desc: "quit"},
		},
		focus: FooterFocusInput,
		now:   time.Now,
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFocus updates the focus context for conditional bindings
func (f *Footer) SetFocus(focus FooterFocus) {
	f.focus = focus
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text instead of the bindings until FlashDuration passes.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashExpires = f.now().Add(FlashDuration)
}

// ClearFlash removes the flash message.
func (f *Footer) ClearFlash() {
	f.flashText = ""
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// ClearIfExpired drops the flash once its time is up. Returns true if it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashText != "" && !f.now().Before(f.flashExpires) {
		f.flashText = ""
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		return FooterStyle.Width(f.width).Render(f.truncate(f.renderFlash()))
	}

	var parts []string
	switch f.focus {
	case FooterFocusShift:
		shiftBindings := []KeyBinding{
			{Key: "↑/↓ +/-", Desc: "step"},
			{Key: "0-9", Desc: "type shift"},
			{Key: "tab", Desc: "next field"},
			{Key: "esc", Desc: "quit"},
		}
		for _, b := range shiftBindings {
			parts = append(parts, renderBinding(b))
		}
	case FooterFocusOutput:
		outputBindings := []KeyBinding{
			{Key: "read-only", Desc: "edits are discarded"},
			{Key: "ctrl+t", Desc: "make this the input"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "tab", Desc: "next field"},
		}
		for _, b := range outputBindings {
			parts = append(parts, renderBinding(b))
		}
	default:
		for _, b := range f.bindings {
			parts = append(parts, renderBinding(b))
		}
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(f.truncate(content))
}

func renderBinding(b KeyBinding) string {
	return FooterKeyStyle.Render(b.Key) + FooterDescStyle.Render(": "+b.Desc)
}

func (f *Footer) renderFlash() string {
	switch f.flashType {
	case FlashError:
		return FlashErrorStyle.Render("✕ " + f.flashText)
	case FlashWarning:
		return FlashWarningStyle.Render("⚠ " + f.flashText)
	case FlashSuccess:
		return FlashSuccessStyle.Render("✓ " + f.flashText)
	default:
		return FlashInfoStyle.Render("ℹ " + f.flashText)
	}
}

// truncate keeps the content inside the padded footer width.
func (f *Footer) truncate(content string) string {
	inner := f.width - PanelPaddingWidth
	if f.width <= 0 || inner <= 0 {
		return content
	}
	return ansi.Truncate(content, inner, "…")
}
