package controller

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/logger"
)

// Event is a committed user edit. The set of events is closed.
type Event interface {
	event()
}

// DirectionChanged switches which field is editable. Text is left alone.
type DirectionChanged struct {
	Direction Direction
}

// ShiftChanged commits a new shift. Out-of-range values are clamped.
type ShiftChanged struct {
	Shift int
}

// PlaintextEdited carries the full new contents of the plaintext field.
type PlaintextEdited struct {
	Text string
}

// CiphertextEdited carries the full new contents of the ciphertext field.
type CiphertextEdited struct {
	Text string
}

func (DirectionChanged) event() {}
func (ShiftChanged) event()     {}
func (PlaintextEdited) event()  {}
func (CiphertextEdited) event() {}

// Outcome reports what Apply did with an event.
type Outcome int

const (
	Unchanged Outcome = iota // event matched current state
	Accepted                 // state changed
	Rejected                 // edit to the derived field; state kept its prior value
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unchanged"
	}
}

func log() *slog.Logger {
	return logger.ComponentLogger("Controller")
}

// Apply performs the transition for ev on s. Edits to the field that is
// not active for s.Direction are rejected regardless of their content.
func Apply(s *State, ev Event) Outcome {
	switch e := ev.(type) {
	case DirectionChanged:
		if e.Direction == s.Direction {
			return Unchanged
		}
		log().Debug("direction changed", "from", s.Direction, "to", e.Direction)
		s.Direction = e.Direction
		return Accepted

	case ShiftChanged:
		shift := cipher.Clamp(e.Shift)
		if shift == s.Shift {
			return Unchanged
		}
		log().Debug("shift changed", "from", s.Shift, "to", shift, "direction", s.Direction)
		s.Shift = shift
		s.recompute()
		return Accepted

	case PlaintextEdited:
		return applyEdit(s, FieldPlaintext, e.Text)

	case CiphertextEdited:
		return applyEdit(s, FieldCiphertext, e.Text)
	}
	return Unchanged
}

func applyEdit(s *State, field Field, text string) Outcome {
	if text == s.Text(field) {
		return Unchanged
	}
	if field != s.Active() {
		log().Debug("edit rejected", "field", field, "direction", s.Direction)
		return Rejected
	}

	if field == FieldPlaintext {
		s.Plaintext = text
	} else {
		s.Ciphertext = text
	}
	s.recompute()
	log().Debug("edit accepted", "field", field, "runes", len([]rune(text)))
	return Accepted
}

// ParseShift parses typed shift input. It reports false for anything that
// is not an integer in [cipher.MinShift, cipher.MaxShift]; such input is
// not committed and the prior shift stays in effect.
func ParseShift(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	if n < cipher.MinShift || n > cipher.MaxShift {
		return 0, false
	}
	return n, true
}
