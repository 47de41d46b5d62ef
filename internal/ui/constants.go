package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCancel   = "×"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	PosterWidth  float32 = 150
	PosterHeight float32 = 220

	DetailsMinWidth float32 = 360
)
