package player

import "context"

// Output defines the audio backend behind the playback controller.
type Output interface {
	// Load opens a stream source, replacing any previously loaded one
	Load(ctx context.Context, streamURL string) error

	// Play starts playback of the loaded source
	Play() error

	// SetPause suspends or resumes playback without unloading the source
	SetPause(paused bool) error

	// Stop halts playback
	Stop() error

	// SetVolume sets the output volume in percent (0-100)
	SetVolume(volume int) error

	// SetEventHandlers registers callbacks for end-of-stream and stream errors
	SetEventHandlers(onEnd func(), onError func(err error))

	// Release frees the underlying audio resources
	Release()
}
