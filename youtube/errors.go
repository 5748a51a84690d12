package youtube

import (
	"errors"
	"fmt"
)

// Sentinel errors for transcript retrieval.
var (
	// ErrInvalidInput indicates a string that is neither a video ID nor a
	// supported YouTube URL shape.
	ErrInvalidInput = errors.New("invalid youtube url or video id")
	// ErrNoTranscript indicates no transcript exists in the requested language.
	ErrNoTranscript = errors.New("no transcript found for language")
	// ErrTranscriptsDisabled indicates the video has captions turned off entirely.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	// ErrRateLimited indicates YouTube refused the request as abusive.
	ErrRateLimited = errors.New("rate limited by youtube")
	// ErrVideoUnavailable indicates the video is private, deleted, or region locked.
	ErrVideoUnavailable = errors.New("video unavailable")
)

// TranscriptError wraps a failure while retrieving transcripts for a video.
type TranscriptError struct {
	// VideoID is the video the retrieval was for.
	VideoID string
	// Language is the requested language code, if the failure was language-specific.
	Language string
	// Err is the underlying cause.
	Err error
}

// Error returns a string representation of the transcript error.
func (e *TranscriptError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("transcript for %s in %q: %v", e.VideoID, e.Language, e.Err)
	}
	return fmt.Sprintf("transcript for %s: %v", e.VideoID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *TranscriptError) Unwrap() error {
	return e.Err
}
