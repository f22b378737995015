package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
	"github.com/zhubert/caesar/internal/keys"
	"github.com/zhubert/caesar/internal/logger"
	"github.com/zhubert/caesar/internal/ui"
)

// handleModalKey routes a key press while a modal is open.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.CtrlC {
		return m, tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *ui.HelpState:
		return m.handleHelpModal(msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(msg, s)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpModal(msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// The list owns enter and esc while its filter is being typed
	if state.IsFiltering() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case keys.Escape, keys.Enter, keys.F1:
		m.modal.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) showSettings() {
	m.modal.Show(ui.NewSettingsState(string(ui.CurrentThemeName()), m.state.Direction, m.state.Shift))
}

func (m *Model) handleSettingsModal(msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		if string(ui.CurrentThemeName()) != state.OriginalTheme {
			m.applyTheme(state.OriginalTheme)
		}
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		shift, ok := state.Shift()
		if !ok {
			m.modal.SetError(errors.ShiftInvalid(state.ShiftText()).Error())
			return m, nil
		}

		if state.Theme() != string(ui.CurrentThemeName()) {
			m.applyTheme(state.Theme())
		}
		m.apply(controller.DirectionChanged{Direction: state.Direction()})
		m.apply(controller.ShiftChanged{Shift: shift})
		if m.focus != FocusShift {
			m.setFocus(focusFor(m.state.Active()))
		}
		m.modal.Hide()
		logger.Info("App: settings applied theme=%s direction=%s shift=%d", state.Theme(), m.state.Direction, m.state.Shift)
		return m, m.ShowFlashSuccess("Settings applied")
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// applyTheme switches the theme and refreshes widgets that cache styles.
func (m *Model) applyTheme(name string) {
	ui.SetThemeByName(name)
	m.plaintext.RefreshStyles()
	m.ciphertext.RefreshStyles()
}
