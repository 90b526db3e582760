package model

import (
	"fmt"
	"strings"
)

// Station represents a single radio station served by the directory
type Station struct {
	StationUUID string `json:"stationuuid"`       // unique identifier assigned by the directory
	Name        string `json:"name"`              // display name
	URL         string `json:"url"`               // stream URL as registered
	URLResolved string `json:"url_resolved"`      // resolved stream URL, preferred for playback
	Country     string `json:"country"`           // country of origin
	Tags        string `json:"tags"`              // comma separated free-text tags
	Favicon     string `json:"favicon,omitempty"` // optional station icon URL
	Bitrate     int    `json:"bitrate,omitempty"` // kbps, 0 if unknown
	Codec       string `json:"codec,omitempty"`   // e.g. "MP3", "AAC"
}

// GetStreamURL returns the playable stream URL, preferring the resolved one
func (s *Station) GetStreamURL() string {
	if s.URLResolved != "" {
		return s.URLResolved
	}
	return s.URL
}

// HasStream returns true if the station carries any stream URL to play
func (s *Station) HasStream() bool {
	return s.GetStreamURL() != ""
}

// GetDisplayName returns the station name, falling back to the stream URL
func (s *Station) GetDisplayName() string {
	name := strings.TrimSpace(s.Name)
	if name != "" {
		return name
	}
	return s.GetStreamURL()
}

// GetBitrateString returns the bitrate formatted as "128 kbps", or "—" if unknown
func (s *Station) GetBitrateString() string {
	if s.Bitrate <= 0 {
		return "—"
	}
	return fmt.Sprintf("%d kbps", s.Bitrate)
}

// GetTagList returns the tags split into trimmed non-empty entries
func (s *Station) GetTagList() []string {
	if s.Tags == "" {
		return nil
	}

	parts := strings.Split(s.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
