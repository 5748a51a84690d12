// Package youtube retrieves video transcripts from YouTube.
//
// The Client implementation works the way a browser does: it loads the watch
// page to discover the available caption tracks, then downloads individual
// tracks from the timedtext endpoint. The optional DataAPILister enumerates
// tracks through the official Data API v3 instead.
package youtube

import "context"

// Segment is a single timed transcript segment.
type Segment struct {
	// Text is the segment content.
	Text string `json:"text"`
	// Start is the start time in seconds.
	Start float64 `json:"start"`
	// Duration is the display duration in seconds.
	Duration float64 `json:"duration"`
}

// Track describes one caption track available for a video.
type Track struct {
	// Name is the human-readable language name (e.g. "German").
	Name string
	// LanguageCode is the ISO 639-1 code (e.g. "de").
	LanguageCode string
	// AutoGenerated marks speech-recognition (ASR) tracks.
	AutoGenerated bool
	// BaseURL is the timedtext URL the track is fetched from. Listers that
	// cannot produce a fetchable URL (the Data API) leave it empty.
	BaseURL string
}

// Service is the transcript retrieval capability consumers depend on.
// Implementations must return ErrNoTranscript when the requested language has
// no track and ErrTranscriptsDisabled when the video has no captions at all,
// so callers can tell the recoverable condition from the permanent one.
type Service interface {
	// FetchTranscript retrieves the transcript in the given language code.
	FetchTranscript(ctx context.Context, videoID, languageCode string) ([]Segment, error)
	// ListTracks enumerates the caption tracks available for a video.
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	// FetchTrack downloads the segments of a previously listed track.
	FetchTrack(ctx context.Context, track Track) ([]Segment, error)
}

// TrackLister is the listing subset of Service, implemented additionally by
// DataAPILister.
type TrackLister interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
}
