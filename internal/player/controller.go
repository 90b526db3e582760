package player

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wavedial/wavedial/internal/model"
	"github.com/wavedial/wavedial/internal/platform"
)

const (
	// LoadTimeout bounds how long opening a stream source may take
	LoadTimeout = 10 * time.Second

	// DefaultVolume is used until a caller applies a stored preference
	DefaultVolume = 80
)

// Controller owns the single audio output handle and the playback state
type Controller struct {
	output   Output
	resolver *platform.PlaylistResolverService

	stateMutex sync.RWMutex
	current    *model.Station
	status     model.PlayerStatus
	volume     int

	// loadSeq numbers start requests; outputSeq records which of them last
	// claimed the audio output. A load whose seq falls behind loadSeq is
	// superseded and must leave the output alone.
	loadSeq    uint64
	outputSeq  uint64
	loadCancel context.CancelFunc

	// onUpdate is invoked after every state change; onStreamError carries
	// playback failures the UI surfaces as a blocking notice
	onUpdate      func()
	onStreamError func(station *model.Station, err error)
}

// NewController creates a playback controller around an audio output. A nil
// output keeps the controller usable; start attempts then fail with an error
// the UI can surface.
func NewController(output Output) *Controller {
	c := &Controller{
		output:   output,
		resolver: platform.NewPlaylistResolverService(),
		status:   model.PlayerStatusStopped,
		volume:   DefaultVolume,
	}

	if output != nil {
		output.SetEventHandlers(c.handleStreamEnd, c.handleStreamError)
	}

	return c
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func()) {
	c.onUpdate = callback
}

// SetStreamErrorCallback sets the callback invoked when a stream fails to
// start or errors while playing
func (c *Controller) SetStreamErrorCallback(callback func(station *model.Station, err error)) {
	c.onStreamError = callback
}

// Toggle starts, pauses, or resumes playback of a station. Requesting the
// already-current playing station pauses it; requesting it while paused
// resumes without reloading the source. Any other station starts fresh.
func (c *Controller) Toggle(station *model.Station) error {
	if station == nil {
		return fmt.Errorf("no station selected")
	}

	c.stateMutex.RLock()
	sameStation := c.current != nil && c.current.StationUUID == station.StationUUID
	status := c.status
	c.stateMutex.RUnlock()

	if sameStation {
		switch status {
		case model.PlayerStatusPlaying:
			return c.pause()
		case model.PlayerStatusPaused:
			return c.resume()
		case model.PlayerStatusLoading:
			// Load already in flight for this station
			return nil
		}
	}

	return c.start(station)
}

// start assigns a new stream source and begins loading it in the background
func (c *Controller) start(station *model.Station) error {
	if c.output == nil {
		return fmt.Errorf("audio output is not available")
	}

	streamURL := station.GetStreamURL()
	if streamURL == "" {
		return fmt.Errorf("station %s has no stream URL", station.GetDisplayName())
	}

	ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)

	c.stateMutex.Lock()
	wasEngaged := c.status.IsEngaged()
	c.current = station
	c.status = model.PlayerStatusLoading
	c.loadSeq++
	seq := c.loadSeq
	prevCancel := c.loadCancel
	c.loadCancel = cancel
	c.stateMutex.Unlock()

	// Abort a load still in flight; its goroutine bails out once it sees the
	// newer sequence
	if prevCancel != nil {
		prevCancel()
	}

	if wasEngaged {
		if err := c.output.Stop(); err != nil {
			log.Printf("Failed to stop previous stream: %v", err)
		}
	}

	c.notifyUpdate()
	go c.startStream(ctx, cancel, seq, station, streamURL)

	return nil
}

// startStream loads and plays a stream, then commits the outcome. A load
// superseded by a newer one backs off before every output side effect, so a
// slow resolve or open can never reassign the output behind the newer stream.
func (c *Controller) startStream(ctx context.Context, cancel context.CancelFunc, seq uint64, station *model.Station, streamURL string) {
	defer cancel()

	// M3U and PLS station URLs wrap the actual stream location. On a failed
	// resolve the raw URL still goes to the output, which may cope on its own.
	target, err := c.resolver.Resolve(ctx, streamURL)

	if !c.claimOutput(seq) {
		return
	}

	if err != nil {
		log.Printf("Failed to resolve playlist for %s: %v", station.GetDisplayName(), err)
		target = streamURL
	}

	err = c.output.Load(ctx, target)
	if err == nil {
		if verr := c.output.SetVolume(c.Volume()); verr != nil {
			log.Printf("Failed to apply volume to new stream: %v", verr)
		}
		if c.superseded(seq) {
			return
		}
		err = c.output.Play()
	}

	c.stateMutex.Lock()
	if c.loadSeq != seq {
		c.stateMutex.Unlock()
		return
	}

	if err != nil {
		c.status = model.PlayerStatusStopped
		c.stateMutex.Unlock()

		log.Printf("Playback failed for %s: %v", station.GetDisplayName(), err)
		c.notifyUpdate()
		c.notifyStreamError(station, err)
		return
	}

	c.status = model.PlayerStatusPlaying
	c.stateMutex.Unlock()

	log.Printf("Playing %s (%s)", station.GetDisplayName(), target)
	c.notifyUpdate()
}

// claimOutput marks the load identified by seq as the one driving the audio
// output. The claim fails when a newer load superseded seq.
func (c *Controller) claimOutput(seq uint64) bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()

	if c.loadSeq != seq {
		return false
	}
	c.outputSeq = seq
	return true
}

// superseded reports whether a newer load replaced the one identified by seq
func (c *Controller) superseded(seq uint64) bool {
	c.stateMutex.RLock()
	defer c.stateMutex.RUnlock()
	return c.loadSeq != seq
}

// pause suspends the current stream
func (c *Controller) pause() error {
	if err := c.output.SetPause(true); err != nil {
		return fmt.Errorf("pause stream: %w", err)
	}

	c.stateMutex.Lock()
	c.status = model.PlayerStatusPaused
	c.stateMutex.Unlock()

	c.notifyUpdate()
	return nil
}

// resume continues the paused stream without reloading the source
func (c *Controller) resume() error {
	if err := c.output.SetPause(false); err != nil {
		return fmt.Errorf("resume stream: %w", err)
	}

	c.stateMutex.Lock()
	c.status = model.PlayerStatusPlaying
	c.stateMutex.Unlock()

	c.notifyUpdate()
	return nil
}

// SetVolume stores the volume and applies it to the output when a stream is
// loaded. With no stream loaded the value is kept for the next start.
func (c *Controller) SetVolume(volume int) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}

	c.stateMutex.Lock()
	c.volume = volume
	engaged := c.status.IsEngaged()
	c.stateMutex.Unlock()

	if c.output != nil && engaged {
		if err := c.output.SetVolume(volume); err != nil {
			return fmt.Errorf("set volume: %w", err)
		}
	}

	return nil
}

// Volume returns the current volume in percent
func (c *Controller) Volume() int {
	c.stateMutex.RLock()
	defer c.stateMutex.RUnlock()
	return c.volume
}

// Current returns the current station, or nil when none was started yet
func (c *Controller) Current() *model.Station {
	c.stateMutex.RLock()
	defer c.stateMutex.RUnlock()
	return c.current
}

// Status returns the playback status
func (c *Controller) Status() model.PlayerStatus {
	c.stateMutex.RLock()
	defer c.stateMutex.RUnlock()
	return c.status
}

// IsCurrent reports whether the given station id is the current one
func (c *Controller) IsCurrent(stationUUID string) bool {
	c.stateMutex.RLock()
	defer c.stateMutex.RUnlock()
	return c.current != nil && c.current.StationUUID == stationUUID
}

// handleStreamEnd resets the play state when the output reaches end of
// stream. Events arriving after a newer load took over belong to the
// superseded stream and are dropped.
func (c *Controller) handleStreamEnd() {
	c.stateMutex.Lock()
	if !c.status.IsEngaged() || c.outputSeq != c.loadSeq {
		c.stateMutex.Unlock()
		return
	}
	c.status = model.PlayerStatusStopped
	station := c.current
	c.stateMutex.Unlock()

	if station != nil {
		log.Printf("Stream ended for %s", station.GetDisplayName())
	}
	c.notifyUpdate()
}

// handleStreamError resets the play state and surfaces the failure. Errors
// from a superseded stream are dropped rather than pinned on the station
// loading in its place.
func (c *Controller) handleStreamError(err error) {
	c.stateMutex.Lock()
	if !c.status.IsEngaged() || c.outputSeq != c.loadSeq {
		c.stateMutex.Unlock()
		return
	}
	c.status = model.PlayerStatusStopped
	station := c.current
	c.stateMutex.Unlock()

	if station != nil {
		log.Printf("Stream error for %s: %v", station.GetDisplayName(), err)
	}
	c.notifyUpdate()
	c.notifyStreamError(station, err)
}

// Release stops playback and frees the audio output. Any load still in
// flight is orphaned so it cannot touch the freed output.
func (c *Controller) Release() {
	c.stateMutex.Lock()
	engaged := c.status.IsEngaged()
	c.status = model.PlayerStatusStopped
	c.loadSeq++
	cancel := c.loadCancel
	c.loadCancel = nil
	c.stateMutex.Unlock()

	if cancel != nil {
		cancel()
	}

	if c.output == nil {
		return
	}

	if engaged {
		if err := c.output.Stop(); err != nil {
			log.Printf("Failed to stop stream on release: %v", err)
		}
	}
	c.output.Release()
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// notifyStreamError calls the stream error callback if set
func (c *Controller) notifyStreamError(station *model.Station, err error) {
	if c.onStreamError != nil {
		c.onStreamError(station, err)
	}
}
