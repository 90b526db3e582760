package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	vlc "github.com/adrg/libvlc-go/v3"
)

// ErrStreamFailed is reported when libVLC signals a playback error on the
// active stream without further detail
var ErrStreamFailed = errors.New("stream playback failed")

// VLCOutput implements Output on top of libVLC
type VLCOutput struct {
	player  *vlc.Player
	manager *vlc.EventManager
	events  []vlc.EventID

	handlerMutex sync.Mutex
	media        *vlc.Media
	onEnd        func()
	onError      func(err error)
}

// NewVLCOutput initializes libVLC and creates the single audio player handle
func NewVLCOutput() (*VLCOutput, error) {
	if err := vlc.Init("--no-video", "--quiet"); err != nil {
		return nil, fmt.Errorf("init libvlc: %w", err)
	}

	vlcPlayer, err := vlc.NewPlayer()
	if err != nil {
		if rerr := vlc.Release(); rerr != nil {
			log.Printf("Failed to release libvlc: %v", rerr)
		}
		return nil, fmt.Errorf("create libvlc player: %w", err)
	}

	out := &VLCOutput{player: vlcPlayer}

	manager, err := vlcPlayer.EventManager()
	if err != nil {
		// Playback still works, end/error transitions just go unnoticed
		log.Printf("Stream events unavailable: %v", err)
		return out, nil
	}
	out.manager = manager

	for _, event := range []vlc.Event{vlc.MediaPlayerEndReached, vlc.MediaPlayerEncounteredError} {
		id, err := manager.Attach(event, out.handleEvent, nil)
		if err != nil {
			log.Printf("Failed to attach stream event %v: %v", event, err)
			continue
		}
		out.events = append(out.events, id)
	}

	return out, nil
}

// SetEventHandlers registers the end-of-stream and stream error callbacks
func (o *VLCOutput) SetEventHandlers(onEnd func(), onError func(err error)) {
	o.handlerMutex.Lock()
	defer o.handlerMutex.Unlock()
	o.onEnd = onEnd
	o.onError = onError
}

// handleEvent dispatches libVLC player events to the registered handlers
func (o *VLCOutput) handleEvent(event vlc.Event, userData interface{}) {
	o.handlerMutex.Lock()
	onEnd := o.onEnd
	onError := o.onError
	o.handlerMutex.Unlock()

	switch event {
	case vlc.MediaPlayerEndReached:
		if onEnd != nil {
			onEnd()
		}
	case vlc.MediaPlayerEncounteredError:
		if onError != nil {
			onError(ErrStreamFailed)
		}
	}
}

// Load opens a stream URL as the player's media, replacing the previous one
func (o *VLCOutput) Load(ctx context.Context, streamURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.handlerMutex.Lock()
	defer o.handlerMutex.Unlock()

	if o.media != nil {
		if err := o.media.Release(); err != nil {
			log.Printf("Failed to release previous media: %v", err)
		}
		o.media = nil
	}

	media, err := o.player.LoadMediaFromURL(streamURL)
	if err != nil {
		return fmt.Errorf("load media: %w", err)
	}
	o.media = media

	return nil
}

// Play starts playback of the loaded media
func (o *VLCOutput) Play() error {
	if err := o.player.Play(); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// SetPause suspends or resumes playback
func (o *VLCOutput) SetPause(paused bool) error {
	if err := o.player.SetPause(paused); err != nil {
		return fmt.Errorf("set pause: %w", err)
	}
	return nil
}

// Stop halts playback
func (o *VLCOutput) Stop() error {
	if err := o.player.Stop(); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

// SetVolume sets the output volume in percent
func (o *VLCOutput) SetVolume(volume int) error {
	if err := o.player.SetVolume(volume); err != nil {
		return fmt.Errorf("set volume: %w", err)
	}
	return nil
}

// Release frees the media, the player, and the libVLC runtime
func (o *VLCOutput) Release() {
	if o.manager != nil && len(o.events) > 0 {
		o.manager.Detach(o.events...)
	}

	o.handlerMutex.Lock()
	if o.media != nil {
		if err := o.media.Release(); err != nil {
			log.Printf("Failed to release media: %v", err)
		}
		o.media = nil
	}
	o.handlerMutex.Unlock()

	if err := o.player.Stop(); err != nil {
		log.Printf("Failed to stop player on release: %v", err)
	}
	if err := o.player.Release(); err != nil {
		log.Printf("Failed to release player: %v", err)
	}
	if err := vlc.Release(); err != nil {
		log.Printf("Failed to release libvlc: %v", err)
	}
}
