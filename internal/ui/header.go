package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " caesar cipher"

// Header represents the top header bar
type Header struct {
	width     int
	direction string
	shift     int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the direction label and shift shown on the right.
func (h *Header) SetStatus(direction string, shift int) {
	h.direction = direction
	h.shift = shift
}

// View renders the header
func (h *Header) View() string {
	var rightText, shiftText string
	if h.direction != "" {
		shiftText = fmt.Sprintf("shift %d", h.shift)
		rightText = h.direction + " · " + shiftText + " "
	}

	paddingLen := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	content := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		content = ansi.Truncate(content, h.width, "")
	}
	return h.renderGradient(content, shiftText)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background. The muted suffix is drawn in muted text.
func (h *Header) renderGradient(content, muted string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	mutedStart := -1
	runes := []rune(content)
	if muted != "" {
		if idx := strings.LastIndex(content, muted); idx >= 0 {
			mutedStart = len([]rune(content[:idx]))
		}
	}

	width := len(runes)
	var result strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < len([]rune(headerTitle)))

		if mutedStart >= 0 && i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}
