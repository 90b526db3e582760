package platform

// Package platform contains external format glue for stream delivery:
// M3U and PLS wrapper playlists are fetched and unwrapped to the direct
// stream URL the audio output can play.
