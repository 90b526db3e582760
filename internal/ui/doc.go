package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the directory API and the playback controller,
// and renders the station list, now-playing bar, notifications, and settings.
// All UI strings are localized via Localization.
