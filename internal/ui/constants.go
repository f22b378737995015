package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// ShiftRowHeight is the height of the shift input row
	ShiftRowHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelPaddingWidth is the horizontal padding inside a panel (Padding(0, 1))
	PanelPaddingWidth = 2

	// PanelTitleHeight is the title line above each textarea
	PanelTitleHeight = 1

	// MinTextareaHeight keeps both panels usable on short terminals
	MinTextareaHeight = 2

	// DefaultWidth is used before the first WindowSizeMsg arrives
	DefaultWidth = 80

	// ShiftInputWidth is the width of the shift text input
	ShiftInputWidth = 4
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// HelpModalMaxVisible is the number of help rows shown at once
	HelpModalMaxVisible = 12
)

// FlashDuration is how long a flash message stays in the footer.
const FlashDuration = 3 * time.Second
