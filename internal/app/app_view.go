package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/caesar/internal/ui"
)

// minPanelHeight fits a border, the title line and a minimal textarea.
const minPanelHeight = ui.BorderSize + ui.PanelTitleHeight + ui.MinTextareaHeight

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	top := m.panelFor(m.state.Active())
	bottom := m.panelFor(m.state.Derived())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.shift.View(),
		top.View(),
		bottom.View(),
		m.footer.View(),
	)
}

func (m *Model) updateFooterContext() {
	switch {
	case m.focus == FocusShift:
		m.footer.SetFocus(ui.FooterFocusShift)
	case m.focus == focusFor(m.state.Derived()):
		m.footer.SetFocus(ui.FooterFocusOutput)
	default:
		m.footer.SetFocus(ui.FooterFocusInput)
	}
}

// updateSizes splits the space between header, shift row and footer evenly
// across the two panels. The active panel takes any odd line.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	body := m.height - ui.HeaderHeight - ui.ShiftRowHeight - ui.FooterHeight
	bottomHeight := body / 2
	topHeight := body - bottomHeight
	if bottomHeight < minPanelHeight {
		bottomHeight = minPanelHeight
	}
	if topHeight < minPanelHeight {
		topHeight = minPanelHeight
	}

	m.panelFor(m.state.Active()).SetSize(m.width, topHeight)
	m.panelFor(m.state.Derived()).SetSize(m.width, bottomHeight)
}
