package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// DataAPILister lists caption tracks through the YouTube Data API v3.
// Listing works with a plain API key, but downloading caption bodies requires
// OAuth, so the tracks it returns carry no fetch URL and fetches still go
// through Client.
type DataAPILister struct {
	service *ytapi.Service
}

// NewDataAPILister creates a Data API-backed track lister.
func NewDataAPILister(ctx context.Context, apiKey string) (*DataAPILister, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &DataAPILister{service: service}, nil
}

// ListTracks enumerates the caption tracks for a video. Uses ~50 quota units
// per call.
func (l *DataAPILister) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}

	resp, err := l.service.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		return nil, &TranscriptError{VideoID: videoID, Err: err}
	}

	if len(resp.Items) == 0 {
		return nil, &TranscriptError{VideoID: videoID, Err: ErrTranscriptsDisabled}
	}

	tracks := make([]Track, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		tracks = append(tracks, Track{
			Name:          item.Snippet.Name,
			LanguageCode:  item.Snippet.Language,
			AutoGenerated: item.Snippet.TrackKind == "asr",
		})
	}

	return tracks, nil
}
