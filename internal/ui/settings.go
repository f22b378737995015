package ui

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
)

// SettingsState is the settings modal: theme, direction and shift.
type SettingsState struct {
	// OriginalTheme is restored if the modal is cancelled after a preview.
	OriginalTheme string

	selectedTheme string
	direction     string
	shift         string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Up/Down: navigate  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Theme returns the selected theme name.
func (s *SettingsState) Theme() string {
	return s.selectedTheme
}

// Direction returns the selected direction.
func (s *SettingsState) Direction() controller.Direction {
	d, err := controller.ParseDirection(s.direction)
	if err != nil {
		return controller.Encrypt
	}
	return d
}

// Shift returns the entered shift. ok is false when the text is not a
// shift in range, in which case the modal should stay open.
func (s *SettingsState) Shift() (shift int, ok bool) {
	return controller.ParseShift(s.shift)
}

// ShiftText returns the raw shift text as typed.
func (s *SettingsState) ShiftText() string {
	return s.shift
}

// validateShift backs the form's inline error message.
func validateShift(input string) error {
	if _, ok := controller.ParseShift(input); !ok {
		return errors.ShiftInvalid(input)
	}
	return nil
}

// NewSettingsState creates the settings modal seeded with the current values.
func NewSettingsState(theme string, direction controller.Direction, shift int) *SettingsState {
	s := &SettingsState{
		OriginalTheme: theme,
		selectedTheme: theme,
		direction:     direction.String(),
		shift:         strconv.Itoa(shift),
	}

	names := ThemeNames()
	themeOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		themeOptions[i] = huh.NewOption(GetTheme(name).Name, string(name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewSelect[string]().
				Title("Direction").
				Options(
					huh.NewOption(controller.Encrypt.Label(), controller.Encrypt.String()),
					huh.NewOption(controller.Decrypt.Label(), controller.Decrypt.String()),
				).
				Value(&s.direction),
			huh.NewInput().
				Title("Shift").
				Description("Whole number from "+strconv.Itoa(cipher.MinShift)+" to "+strconv.Itoa(cipher.MaxShift)).
				CharLimit(2).
				Validate(validateShift).
				Value(&s.shift),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
