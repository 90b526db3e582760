package model

// PlayerStatus represents the playback state of the audio player
type PlayerStatus string

const (
	// PlayerStatusStopped means no stream is loaded or playing
	PlayerStatusStopped PlayerStatus = "Stopped"

	// PlayerStatusLoading means a stream source is being opened
	PlayerStatusLoading PlayerStatus = "Loading"

	// PlayerStatusPlaying means audio output is running
	PlayerStatusPlaying PlayerStatus = "Playing"

	// PlayerStatusPaused means playback is suspended and can resume without reloading
	PlayerStatusPaused PlayerStatus = "Paused"
)

// String returns the string representation of PlayerStatus
func (ps PlayerStatus) String() string {
	return string(ps)
}

// IsActive returns true if the player is loading or playing
func (ps PlayerStatus) IsActive() bool {
	return ps == PlayerStatusLoading || ps == PlayerStatusPlaying
}

// IsEngaged returns true if a stream is loaded (loading, playing, or paused)
func (ps PlayerStatus) IsEngaged() bool {
	return ps == PlayerStatusLoading || ps == PlayerStatusPlaying || ps == PlayerStatusPaused
}
