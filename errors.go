package ytscribe

import (
	ythttp "ytscribe/http"
	"ytscribe/storage"
	"ytscribe/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscribe.ErrNoTranscript) {
//		fmt.Println("no transcript in that language")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var terr *ytscribe.TranscriptError
//	if errors.As(err, &terr) {
//		fmt.Printf("retrieval for %s failed: %v\n", terr.VideoID, terr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// TranscriptError wraps errors during transcript retrieval.
	TranscriptError = youtube.TranscriptError
	// StorageError wraps errors during result persistence.
	StorageError = storage.StorageError
	// RateLimitError wraps rate limit responses from YouTube.
	RateLimitError = ythttp.RateLimitError
	// HTTPError wraps non-2xx responses from YouTube.
	HTTPError = ythttp.HTTPError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrInvalidInput indicates an unresolvable URL or video ID.
	ErrInvalidInput = youtube.ErrInvalidInput
	// ErrNoTranscript indicates no transcript exists in the requested language.
	ErrNoTranscript = youtube.ErrNoTranscript
	// ErrTranscriptsDisabled indicates the video has captions turned off.
	ErrTranscriptsDisabled = youtube.ErrTranscriptsDisabled
	// ErrRateLimited indicates YouTube refused the request as abusive.
	ErrRateLimited = youtube.ErrRateLimited
	// ErrVideoUnavailable indicates the video is private, deleted, or region locked.
	ErrVideoUnavailable = youtube.ErrVideoUnavailable
)
