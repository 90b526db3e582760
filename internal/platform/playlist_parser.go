package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Timeout constants
const (
	DefaultResolveTimeout = 10 * time.Second
)

// Fetch limits
const (
	MaxPlaylistBytes = 256 * 1024
)

// Wrapper playlist extensions. HLS manifests (.m3u8) are not wrappers, the
// audio output streams them directly.
const (
	ExtM3U = ".m3u"
	ExtPLS = ".pls"
)

// PlaylistResolverService unwraps M3U and PLS stream playlists. Radio
// directories often publish a station's URL as a tiny playlist file wrapping
// the actual stream location.
type PlaylistResolverService struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewPlaylistResolverService creates a new playlist resolver service
func NewPlaylistResolverService() *PlaylistResolverService {
	return &PlaylistResolverService{
		httpClient: &http.Client{},
		timeout:    DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for playlist fetching
func (p *PlaylistResolverService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether the URL points at a wrapper playlist rather
// than a direct stream
func IsPlaylistURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	path := strings.ToLower(parsed.Path)
	return strings.HasSuffix(path, ExtM3U) || strings.HasSuffix(path, ExtPLS)
}

// Resolve returns the direct stream URL behind a wrapper playlist. URLs that
// are not playlists pass through unchanged.
func (p *PlaylistResolverService) Resolve(ctx context.Context, rawURL string) (string, error) {
	if !IsPlaylistURL(rawURL) {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse playlist URL: %w", err)
	}
	isPLS := strings.HasSuffix(strings.ToLower(parsed.Path), ExtPLS)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build playlist request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch playlist: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPlaylistBytes))
	if err != nil {
		return "", fmt.Errorf("read playlist: %w", err)
	}

	var entries []string
	if isPLS {
		entries = ParsePLS(string(data))
	} else {
		entries = ParseM3U(string(data))
	}

	if len(entries) == 0 {
		return "", fmt.Errorf("playlist %s has no stream entries", rawURL)
	}

	return absoluteEntry(rawURL, entries[0]), nil
}

// ParseM3U extracts stream entries from M3U playlist content. Directive and
// comment lines starting with # are skipped.
func ParseM3U(content string) []string {
	entries := make([]string, 0)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}

	return entries
}

// ParsePLS extracts FileN entries from PLS playlist content in order of
// appearance
func ParsePLS(content string) []string {
	entries := make([]string, 0)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" || !strings.HasPrefix(key, "file") {
			continue
		}
		if !digitsOnly(key[len("file"):]) {
			continue
		}

		entries = append(entries, value)
	}

	return entries
}

// digitsOnly reports whether s is a non-empty run of ASCII digits
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// absoluteEntry resolves a playlist entry against the playlist location.
// Entries that do not parse are returned as found.
func absoluteEntry(playlistURL, entry string) string {
	base, err := url.Parse(playlistURL)
	if err != nil {
		return entry
	}
	ref, err := url.Parse(entry)
	if err != nil {
		return entry
	}
	return base.ResolveReference(ref).String()
}
