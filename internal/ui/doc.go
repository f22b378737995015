// Package ui provides the user interface components for the caesar TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling. Components render state they are given;
// none of them decide whether an edit is allowed. That decision belongs to
// the controller package.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): title, direction, shift            │
//	│ Shift row (1 line)                                  │
//	├─────────────────────────────────────────────────────┤
//	│ Active panel   (Plaintext or Ciphertext, "Input")   │
//	├─────────────────────────────────────────────────────┤
//	│ Derived panel  (the other field, "Output")          │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line): bindings or flash                  │
//	└─────────────────────────────────────────────────────┘
//
// The active panel is always drawn on top. Toggling direction swaps the
// order without touching the text.
//
// # Components
//
// Header: title with a theme gradient, current direction and shift.
//
// ShiftInput: one-line numeric input with stepper semantics (no wraparound).
//
// TextPanel: a textarea for one cipher field with a colored title, an
// Input/Output role label and a character count.
//
// Footer: context-aware key bindings, replaced by a flash message for
// FlashDuration after clipboard copies and similar actions.
//
// Modal: popup dialogs (help, settings) behind the ModalState interface.
package ui
