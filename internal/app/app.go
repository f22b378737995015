package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/caesar/internal/clipboard"
	"github.com/zhubert/caesar/internal/config"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/logger"
	"github.com/zhubert/caesar/internal/ui"
)

// Focus represents which widget receives keystrokes
type Focus int

const (
	FocusShift Focus = iota
	FocusPlaintext
	FocusCiphertext
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusShift:
		return "Shift"
	case FocusPlaintext:
		return "Plaintext"
	case FocusCiphertext:
		return "Ciphertext"
	default:
		return "Unknown"
	}
}

// focusFor maps a cipher field to the focus that selects its panel.
func focusFor(f controller.Field) Focus {
	if f == controller.FieldCiphertext {
		return FocusCiphertext
	}
	return FocusPlaintext
}

// Model is the main Bubble Tea model
type Model struct {
	config *config.Config
	state  *controller.State

	header     *ui.Header
	footer     *ui.Footer
	shift      *ui.ShiftInput
	plaintext  *ui.TextPanel
	ciphertext *ui.TextPanel
	modal      *ui.Modal

	clipboard clipboard.Writer

	width  int
	height int
	focus  Focus
}

// New creates a new app model. A nil clipboard uses the system clipboard.
func New(cfg *config.Config, cb clipboard.Writer) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if cb == nil {
		cb = clipboard.System{}
	}
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}

	state := controller.New(cfg.InitialDirection(), cfg.Shift)

	m := &Model{
		config:     cfg,
		state:      state,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		shift:      ui.NewShiftInput(state.Shift),
		plaintext:  ui.NewTextPanel("Plaintext", false),
		ciphertext: ui.NewTextPanel("Ciphertext", true),
		modal:      ui.NewModal(),
		clipboard:  cb,
	}
	m.setFocus(focusFor(state.Active()))
	m.syncWidgets()

	logger.Info("App: started direction=%s shift=%d theme=%s", state.Direction, state.Shift, ui.CurrentThemeName())
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// State returns a copy of the cipher state.
func (m *Model) State() controller.State {
	return *m.state
}

// Focus returns the focused widget.
func (m *Model) Focus() Focus {
	return m.focus
}

// ModalVisible reports whether a modal is open.
func (m *Model) ModalVisible() bool {
	return m.modal.IsVisible()
}

// panelFor returns the panel showing a cipher field.
func (m *Model) panelFor(f controller.Field) *ui.TextPanel {
	if f == controller.FieldCiphertext {
		return m.ciphertext
	}
	return m.plaintext
}

// setFocus moves focus and updates the widgets' focus state.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.shift.SetFocused(f == FocusShift)
	m.plaintext.SetFocused(f == FocusPlaintext)
	m.ciphertext.SetFocused(f == FocusCiphertext)
}

// focusOrder is the tab order: shift, then the active field, then the output.
func (m *Model) focusOrder() []Focus {
	return []Focus{
		FocusShift,
		focusFor(m.state.Active()),
		focusFor(m.state.Derived()),
	}
}

func (m *Model) cycleFocus(delta int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	next := (idx + delta + len(order)) % len(order)
	m.setFocus(order[next])
}

// syncWidgets re-renders every widget from the cipher state.
func (m *Model) syncWidgets() {
	m.plaintext.SetValue(m.state.Plaintext)
	m.ciphertext.SetValue(m.state.Ciphertext)
	m.plaintext.SetActive(m.state.Active() == controller.FieldPlaintext)
	m.ciphertext.SetActive(m.state.Active() == controller.FieldCiphertext)
	m.shift.SetCommitted(m.state.Shift)
	m.header.SetStatus(m.state.Direction.Label(), m.state.Shift)
}

// apply feeds one event to the controller and re-syncs the widgets.
func (m *Model) apply(ev controller.Event) controller.Outcome {
	outcome := controller.Apply(m.state, ev)
	if outcome != controller.Unchanged {
		logger.Debug("App: %T -> %s", ev, outcome)
	}
	// Panels swap places when the direction flips
	if _, ok := ev.(controller.DirectionChanged); ok && outcome == controller.Accepted && m.width > 0 {
		m.updateSizes()
	}
	m.syncWidgets()
	return outcome
}
