package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/keys"
	"github.com/zhubert/caesar/internal/logger"
	"github.com/zhubert/caesar/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not a global shortcut, fall through to the focused widget
		return m, m.updateFocused(msg)

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			var cmd tea.Cmd
			m.modal, cmd = m.modal.Update(msg)
			return m, cmd
		}
		return m, m.updateFocused(msg)
	}

	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, m.updateFocused(msg)
}

// handleKeyPress handles the global shortcuts. It returns a nil model when
// the key is not one of them.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlC, keys.Escape:
		logger.Info("App: quit")
		return m, tea.Quit

	case keys.Tab:
		m.cycleFocus(1)
		return m, nil

	case keys.ShiftTab:
		m.cycleFocus(-1)
		return m, nil

	case keys.CtrlT:
		m.toggleDirection()
		return m, nil

	case keys.CtrlUp:
		m.stepShift(1)
		return m, nil

	case keys.CtrlDown:
		m.stepShift(-1)
		return m, nil

	case keys.CtrlL:
		m.clearActive()
		return m, nil

	case keys.CtrlY:
		return m, m.copyOutput()

	case keys.CtrlS:
		m.showSettings()
		return m, nil

	case keys.F1:
		m.modal.Show(ui.NewHelpState(ui.DefaultHelpSections()))
		return m, nil
	}
	return nil, nil
}

// updateFocused forwards msg to the focused widget and turns any change in
// its value into a controller event.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if m.focus == FocusShift {
		cmd := m.shift.Update(msg)
		if shift, ok := m.shift.Parsed(); ok {
			m.apply(controller.ShiftChanged{Shift: shift})
		}
		return cmd
	}

	field := controller.FieldPlaintext
	if m.focus == FocusCiphertext {
		field = controller.FieldCiphertext
	}
	panel := m.panelFor(field)

	before := panel.Value()
	cmd := panel.Update(msg)
	after := panel.Value()
	if after == before {
		return cmd
	}

	var ev controller.Event = controller.PlaintextEdited{Text: after}
	if field == controller.FieldCiphertext {
		ev = controller.CiphertextEdited{Text: after}
	}
	m.apply(ev)
	return cmd
}

// toggleDirection flips the active field. A focused panel hands focus to
// the field that just became editable.
func (m *Model) toggleDirection() {
	m.apply(controller.DirectionChanged{Direction: m.state.Direction.Toggle()})
	if m.focus != FocusShift {
		m.setFocus(focusFor(m.state.Active()))
	}
}

// stepShift moves the committed shift by delta without wrapping.
func (m *Model) stepShift(delta int) {
	m.apply(controller.ShiftChanged{Shift: cipher.Clamp(m.state.Shift + delta)})
}

func (m *Model) clearActive() {
	if m.state.Active() == controller.FieldPlaintext {
		m.apply(controller.PlaintextEdited{Text: ""})
	} else {
		m.apply(controller.CiphertextEdited{Text: ""})
	}
}

// copyOutput puts the derived field on the clipboard.
func (m *Model) copyOutput() tea.Cmd {
	text := m.state.Text(m.state.Derived())
	if text == "" {
		return m.ShowFlashWarning("Nothing to copy")
	}
	if err := m.clipboard.WriteText(text); err != nil {
		logger.Warn("App: copy failed: %v", err)
		return m.ShowFlashError(err.Error())
	}
	return m.ShowFlashSuccess("Copied " + m.state.Derived().String() + " to clipboard")
}
