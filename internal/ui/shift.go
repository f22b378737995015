package ui

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/keys"
)

// ShiftInput is the one-line shift entry with stepper keys.
// It never commits on its own: the app reads Parsed after each update
// and tells the input what was committed through SetCommitted.
type ShiftInput struct {
	input     textinput.Model
	committed int
	focused   bool
}

// NewShiftInput creates a shift input showing the given committed value.
func NewShiftInput(shift int) *ShiftInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.SetWidth(ShiftInputWidth)
	ti.SetValue(strconv.Itoa(shift))

	return &ShiftInput{
		input:     ti,
		committed: shift,
	}
}

// SetFocused sets the focus state. Blurring re-renders the committed value.
func (s *ShiftInput) SetFocused(focused bool) {
	s.focused = focused
	if focused {
		s.input.Focus()
		s.input.CursorEnd()
		return
	}
	s.input.Blur()
	s.input.SetValue(strconv.Itoa(s.committed))
}

// IsFocused returns the focus state
func (s *ShiftInput) IsFocused() bool {
	return s.focused
}

// SetCommitted records the shift in effect. The text is rewritten unless the
// user is mid-edit on text that already means this value or is not a shift.
func (s *ShiftInput) SetCommitted(shift int) {
	s.committed = shift
	if !s.focused {
		s.input.SetValue(strconv.Itoa(shift))
		return
	}
	if v, ok := s.Parsed(); ok && v != shift {
		s.input.SetValue(strconv.Itoa(shift))
		s.input.CursorEnd()
	}
}

// Committed returns the shift last recorded by SetCommitted.
func (s *ShiftInput) Committed() int {
	return s.committed
}

// Value returns the raw text.
func (s *ShiftInput) Value() string {
	return s.input.Value()
}

// Parsed returns the typed shift when the text is a valid shift.
func (s *ShiftInput) Parsed() (int, bool) {
	return controller.ParseShift(s.input.Value())
}

// Step moves the shown value by delta from the committed shift, stopping at
// the range ends.
func (s *ShiftInput) Step(delta int) {
	next := cipher.Clamp(s.committed + delta)
	s.input.SetValue(strconv.Itoa(next))
	s.input.CursorEnd()
}

// Update handles stepper keys and forwards everything else to the textinput.
func (s *ShiftInput) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "+":
			s.Step(1)
			return nil
		case keys.Down, "-":
			s.Step(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the shift row
func (s *ShiftInput) View() string {
	label := ShiftLabelStyle.Render("Shift")

	box := lipgloss.NewStyle().Foreground(ColorText)
	if s.focused {
		box = box.Underline(true).Foreground(ColorBorderFocus)
	}

	hint := FooterDescStyle.Render(fmt.Sprintf("(%d-%d)", cipher.MinShift, cipher.MaxShift))
	if _, ok := s.Parsed(); !ok {
		hint = ShiftInvalidStyle.Render(fmt.Sprintf("not a shift, using %d", s.committed))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, " ", label, " ", box.Render(s.input.View()), " ", hint)
}
