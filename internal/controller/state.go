// Package controller keeps the plaintext, ciphertext, shift and direction
// of a cipher session mutually consistent.
//
// The controller is a two-state machine over Direction. Within a state the
// field that matches the direction is the editable source and the other is
// derived from it. Every change arrives as an Event and is applied by Apply
// in a single update, so recomputing a derived field never looks like a new
// edit.
package controller

import (
	"strings"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/errors"
)

// Direction selects which field is the source of truth.
type Direction int

const (
	Encrypt Direction = iota // plaintext is edited, ciphertext is derived
	Decrypt                  // ciphertext is edited, plaintext is derived
)

// String returns the config/flag spelling of the direction.
func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Label returns the human-readable name shown in the UI.
func (d Direction) Label() string {
	if d == Decrypt {
		return "Decryption"
	}
	return "Encryption"
}

// Toggle returns the other direction.
func (d Direction) Toggle() Direction {
	if d == Encrypt {
		return Decrypt
	}
	return Encrypt
}

// ParseDirection accepts "encrypt"/"decrypt" and their common short forms,
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "encryption", "enc", "e":
		return Encrypt, nil
	case "decrypt", "decryption", "dec", "d":
		return Decrypt, nil
	default:
		return Encrypt, errors.DirectionInvalid(s)
	}
}

// Field names one of the two text fields.
type Field int

const (
	FieldPlaintext Field = iota
	FieldCiphertext
)

func (f Field) String() string {
	if f == FieldCiphertext {
		return "ciphertext"
	}
	return "plaintext"
}

// State is the single owned record for a cipher session. It is mutated
// only through Apply.
type State struct {
	Direction  Direction
	Shift      int
	Plaintext  string
	Ciphertext string
}

// New returns a State with empty text. The shift is clamped into range.
func New(direction Direction, shift int) *State {
	return &State{
		Direction: direction,
		Shift:     cipher.Clamp(shift),
	}
}

// NewDefault returns the startup state: encrypting with the default shift.
func NewDefault() *State {
	return New(Encrypt, cipher.DefaultShift)
}

// Active returns the field the user may edit in the current direction.
func (s *State) Active() Field {
	if s.Direction == Decrypt {
		return FieldCiphertext
	}
	return FieldPlaintext
}

// Derived returns the field computed from the active one.
func (s *State) Derived() Field {
	if s.Direction == Decrypt {
		return FieldPlaintext
	}
	return FieldCiphertext
}

// Text returns the current contents of f.
func (s *State) Text(f Field) string {
	if f == FieldCiphertext {
		return s.Ciphertext
	}
	return s.Plaintext
}

// Consistent reports whether the derived field matches the active field
// under the current shift. It can be false right after a direction toggle.
func (s *State) Consistent() bool {
	if s.Direction == Decrypt {
		return s.Plaintext == cipher.Decrypt(s.Ciphertext, s.Shift)
	}
	return s.Ciphertext == cipher.Encrypt(s.Plaintext, s.Shift)
}

// recompute rewrites the derived field from the active one.
func (s *State) recompute() {
	if s.Direction == Decrypt {
		s.Plaintext = cipher.Decrypt(s.Ciphertext, s.Shift)
	} else {
		s.Ciphertext = cipher.Encrypt(s.Plaintext, s.Shift)
	}
}
