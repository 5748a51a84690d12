package ytscribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ytscribe/config"
	ythttp "ytscribe/http"
	"ytscribe/storage"
	"ytscribe/youtube"
)

// Fixed messages carried in error records.
const (
	msgInvalidInput = "Invalid YouTube URL or video ID."
	msgDisabled     = "Transcripts are disabled for this video."
)

// Fetcher turns a user-supplied URL or video ID into exactly one retrieval
// result. It prefers a configured language and falls back to the first
// retrievable track the service lists.
type Fetcher struct {
	service  youtube.Service
	language string
	logger   *slog.Logger
	now      func() time.Time
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithLanguage sets the preferred transcript language code (default "en").
func WithLanguage(code string) FetcherOption {
	return func(f *Fetcher) {
		if code != "" {
			f.language = code
		}
	}
}

// WithFetcherLogger sets the logging sink for retrieval diagnostics.
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithClock overrides the time source stamped into records. Used in tests.
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFetcher creates a Fetcher on top of a transcript service.
func NewFetcher(service youtube.Service, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		service:  service,
		language: "en",
		logger:   slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch resolves the input and retrieves a transcript. It always returns a
// usable result: failures of any kind become error records, never faults.
func (f *Fetcher) Fetch(ctx context.Context, input string) storage.Result {
	logger := f.logger.With("retrieval_id", uuid.NewString())

	videoID, err := youtube.ResolveVideoID(input)
	if err != nil {
		logger.Error("invalid input", "input", input)
		return errorResult("", msgInvalidInput)
	}
	logger = logger.With("video_id", videoID)

	segments, err := f.service.FetchTranscript(ctx, videoID, f.language)
	switch {
	case err == nil:
		logger.Info("fetched transcript", "language", f.language)
		return f.transcriptResult(videoID, f.language, segments)
	case errors.Is(err, youtube.ErrNoTranscript):
		logger.Warn("no transcript in preferred language, trying alternatives",
			"language", f.language)
		return f.fetchFallback(ctx, logger, videoID)
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		logger.Error("transcripts disabled")
		return errorResult(videoID, msgDisabled)
	default:
		logger.Error("transcript fetch failed", "error", err)
		return errorResult(videoID, fmt.Sprintf("Error fetching transcript: %v", err))
	}
}

// fetchFallback enumerates the video's tracks and returns the first one that
// fetches successfully, in the order the service lists them.
func (f *Fetcher) fetchFallback(ctx context.Context, logger *slog.Logger, videoID string) storage.Result {
	tracks, err := f.service.ListTracks(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptsDisabled) {
			logger.Error("transcripts disabled")
			return errorResult(videoID, msgDisabled)
		}
		logger.Error("listing transcripts failed", "error", err)
		return errorResult(videoID, fmt.Sprintf("Error fetching alternative transcript: %v", err))
	}

	names := make([]string, 0, len(tracks))
	for _, track := range tracks {
		names = append(names, track.Name)
	}
	logger.Info("available languages", "languages", strings.Join(names, ", "))

	var lastErr error
	for _, track := range tracks {
		segments, err := f.service.FetchTrack(ctx, track)
		if err != nil {
			lastErr = err
			logger.Warn("fallback track failed", "language", track.LanguageCode, "error", err)
			continue
		}
		logger.Info("fetched fallback transcript", "language", track.LanguageCode)
		return f.transcriptResult(videoID, track.LanguageCode, segments)
	}

	if lastErr == nil {
		lastErr = youtube.ErrNoTranscript
	}
	return errorResult(videoID, fmt.Sprintf("Error fetching alternative transcript: %v", lastErr))
}

func (f *Fetcher) transcriptResult(videoID, language string, segments []youtube.Segment) storage.Result {
	lines := make([]string, 0, len(segments))
	for _, segment := range segments {
		lines = append(lines, segment.Text)
	}

	return storage.Result{Transcript: &storage.TranscriptRecord{
		VideoID:     videoID,
		Language:    language,
		Transcript:  strings.Join(lines, "\n"),
		URL:         youtube.VideoURL(videoID),
		DateFetched: f.now().Format(storage.TimeLayout),
	}}
}

func errorResult(videoID, message string) storage.Result {
	return storage.Result{Error: &storage.ErrorRecord{Message: message, VideoID: videoID}}
}

// Fetch retrieves a transcript using default configuration. It is a
// convenience wrapper; repeated calls should build a Fetcher once instead.
func Fetch(ctx context.Context, input string) (storage.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return storage.Result{}, err
	}

	httpCfg := ythttp.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.UserAgent = cfg.UserAgent
	httpCfg.RateLimiter.RequestsPerSecond = cfg.RequestsPerSecond

	client := ythttp.New(httpCfg)
	defer client.Close()

	fetcher := NewFetcher(youtube.NewClient(client), WithLanguage(cfg.Language))
	return fetcher.Fetch(ctx, input), nil
}
