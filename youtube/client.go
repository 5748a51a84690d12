package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	ythttp "ytscribe/http"
)

const defaultWatchBase = "https://www.youtube.com/watch"

// Client retrieves transcripts by scraping the watch page for the player's
// caption track list and downloading tracks from the timedtext endpoint.
// It implements Service.
type Client struct {
	httpClient *ythttp.Client
	logger     *slog.Logger
	watchBase  string
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for retrieval diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithWatchBase overrides the watch page endpoint. Used in tests.
func WithWatchBase(base string) ClientOption {
	return func(c *Client) {
		c.watchBase = base
	}
}

// NewClient creates a transcript client on top of the given HTTP client.
func NewClient(httpClient *ythttp.Client, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: httpClient,
		logger:     slog.Default(),
		watchBase:  defaultWatchBase,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// playerCaptions mirrors the "captions" object embedded in the watch page's
// player response. Only the fields we read are declared.
type playerCaptions struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// FetchTranscript retrieves the transcript in the given language code.
// It returns ErrNoTranscript (wrapped) when the video has captions but none
// in that language.
func (c *Client) FetchTranscript(ctx context.Context, videoID, languageCode string) ([]Segment, error) {
	if languageCode == "" {
		languageCode = "en"
	}

	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	for _, track := range tracks {
		if track.LanguageCode == languageCode {
			return c.FetchTrack(ctx, track)
		}
	}

	return nil, &TranscriptError{VideoID: videoID, Language: languageCode, Err: ErrNoTranscript}
}

// ListTracks fetches the watch page and extracts the caption track list.
// It returns ErrTranscriptsDisabled (wrapped) when the player response
// carries no caption data at all.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}

	response, err := c.httpClient.Get(ctx, c.watchBase+"?v="+videoID)
	if err != nil {
		return nil, &TranscriptError{VideoID: videoID, Err: classifyHTTPError(err)}
	}

	tracks, err := extractTracks(response.Body)
	if err != nil {
		return nil, &TranscriptError{VideoID: videoID, Err: err}
	}

	c.logger.Debug("listed caption tracks", "video_id", videoID, "tracks", len(tracks))
	return tracks, nil
}

// FetchTrack downloads a track's segments in the timedtext json3 format.
func (c *Client) FetchTrack(ctx context.Context, track Track) ([]Segment, error) {
	if track.BaseURL == "" {
		return nil, fmt.Errorf("track %q has no fetch url", track.LanguageCode)
	}

	fetchURL := track.BaseURL
	if strings.Contains(fetchURL, "?") {
		fetchURL += "&fmt=json3"
	} else {
		fetchURL += "?fmt=json3"
	}

	response, err := c.httpClient.Get(ctx, fetchURL)
	if err != nil {
		return nil, &TranscriptError{Language: track.LanguageCode, Err: classifyHTTPError(err)}
	}

	segments, err := parseTimedtext(response.Body)
	if err != nil {
		return nil, &TranscriptError{Language: track.LanguageCode, Err: err}
	}

	return segments, nil
}

// Close releases the underlying HTTP client's resources.
func (c *Client) Close() error {
	if c.httpClient != nil {
		return c.httpClient.Close()
	}
	return nil
}

// extractTracks pulls the caption track list out of a watch page body.
// YouTube inlines the player response as JSON; the "captions" object sits
// between the `"captions":` key and the following `,"videoDetails` key.
func extractTracks(page []byte) ([]Track, error) {
	content := string(page)

	if strings.Contains(content, `action="https://consent.youtube.com/s"`) {
		return nil, fmt.Errorf("got consent form instead of watch page")
	}

	_, rawCaptions, found := strings.Cut(content, `"captions":`)
	if !found {
		if strings.Contains(content, `class="g-recaptcha"`) {
			return nil, ErrRateLimited
		}
		if strings.Contains(content, `"playabilityStatus"`) && strings.Contains(content, `"ERROR"`) {
			return nil, ErrVideoUnavailable
		}
		return nil, ErrTranscriptsDisabled
	}

	rawCaptions, _, _ = strings.Cut(rawCaptions, `,"videoDetails`)
	rawCaptions = strings.ReplaceAll(rawCaptions, "\n", "")

	var captions playerCaptions
	if err := json.Unmarshal([]byte(rawCaptions), &captions); err != nil {
		return nil, fmt.Errorf("parse caption track list: %w", err)
	}

	raw := captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(raw) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	tracks := make([]Track, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, Track{
			Name:          t.Name.SimpleText,
			LanguageCode:  t.LanguageCode,
			AutoGenerated: t.Kind == "asr",
			BaseURL:       t.BaseURL,
		})
	}

	return tracks, nil
}

// classifyHTTPError maps transport-level failures onto the retrieval error
// taxonomy where possible.
func classifyHTTPError(err error) error {
	var rateErr *ythttp.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	var httpErr *ythttp.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
		return fmt.Errorf("%w: %v", ErrVideoUnavailable, err)
	}

	return err
}
