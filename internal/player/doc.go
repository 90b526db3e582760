package player

// Package player implements the playback controller around a single audio
// output handle (libVLC). It owns the current station, the play state
// machine, and volume, and propagates state changes to the UI via callbacks.
