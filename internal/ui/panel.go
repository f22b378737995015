package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// TextPanel is a bordered, titled textarea holding one cipher field.
type TextPanel struct {
	title      string
	ciphertext bool
	active     bool
	focused    bool
	width      int
	height     int
	input      textarea.Model
}

// NewTextPanel creates a panel. ciphertext selects the title color.
func NewTextPanel(title string, ciphertext bool) *TextPanel {
	ta := textarea.New()
	ta.Placeholder = "Type " + title + " here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(MinTextareaHeight)
	applyTextareaStyles(&ta)

	return &TextPanel{
		title:      title,
		ciphertext: ciphertext,
		input:      ta,
	}
}

func applyTextareaStyles(ta *textarea.Model) {
	styles := ta.Styles()
	textStyle := lipgloss.NewStyle().Foreground(ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles.Focused.Base = lipgloss.NewStyle()
	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.CursorLine = textStyle
	styles.Focused.Prompt = textStyle

	styles.Blurred.Base = lipgloss.NewStyle()
	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.CursorLine = textStyle
	styles.Blurred.Prompt = textStyle

	ta.SetStyles(styles)
}

// RefreshStyles re-applies theme colors after a theme change.
func (p *TextPanel) RefreshStyles() {
	applyTextareaStyles(&p.input)
}

// SetSize sets the outer panel dimensions, border included.
func (p *TextPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	innerWidth := width - BorderSize - PanelPaddingWidth
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := height - BorderSize - PanelTitleHeight
	if innerHeight < MinTextareaHeight {
		innerHeight = MinTextareaHeight
	}
	p.input.SetWidth(innerWidth)
	p.input.SetHeight(innerHeight)
}

// SetFocused sets the focus state
func (p *TextPanel) SetFocused(focused bool) {
	p.focused = focused
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// IsFocused returns the focus state
func (p *TextPanel) IsFocused() bool {
	return p.focused
}

// SetActive marks the panel as the editable source (true) or the derived output.
func (p *TextPanel) SetActive(active bool) {
	p.active = active
}

// IsActive reports whether the panel is the editable source.
func (p *TextPanel) IsActive() bool {
	return p.active
}

// Title returns the field name shown on the panel.
func (p *TextPanel) Title() string {
	return p.title
}

// Value returns the textarea contents.
func (p *TextPanel) Value() string {
	return p.input.Value()
}

// SetValue replaces the textarea contents when they differ.
func (p *TextPanel) SetValue(value string) {
	if p.input.Value() != value {
		p.input.SetValue(value)
	}
}

// Update forwards a message to the textarea.
func (p *TextPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the panel
func (p *TextPanel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(fieldColor(p.ciphertext))

	role := "Input"
	if !p.active {
		role = "Output"
	}
	title := titleStyle.Render(p.title) + " " + PanelRoleStyle.Render(role)
	if !p.active {
		title += " " + ReadOnlyStyle.Render("(read-only)")
	}
	title += " " + PanelCountStyle.Render(fmt.Sprintf("%d chars", uniseg.GraphemeClusterCount(p.Value())))

	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	if p.width > 0 {
		style = style.Width(p.width)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, p.input.View()))
}
