package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconLoading  = "⏳"
	IconRadio    = "📻"
	IconClose    = "×"

	// Favorite toggle glyphs
	IconStarFilled = "★"
	IconStarEmpty  = "☆"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	VolumeLabelFormat  = "%d%%"
)

// Layout sizing (StationRow / lists)
const (
	CountryLabelWidth float32 = 120
	MetaLabelWidth    float32 = 110

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 52
)

// Now-playing bar sizing
const (
	VolumeSliderWidth float32 = 140
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	VolumeSaveDebounce = 400 * time.Millisecond
)
