package storage

import (
	"encoding/json"
	"fmt"
)

// TimeLayout is the ISO-8601 local timestamp (no offset) used for the
// date_fetched field.
const TimeLayout = "2006-01-02T15:04:05"

// TranscriptRecord is the persisted result of a successful retrieval.
type TranscriptRecord struct {
	// VideoID is the canonical 11-character YouTube video ID.
	VideoID string `json:"video_id"`
	// Language is the ISO 639-1 code of the transcript actually retrieved.
	Language string `json:"language"`
	// Transcript is the full transcript text, one segment per line.
	Transcript string `json:"transcript"`
	// URL is the canonical watch URL for the video.
	URL string `json:"url"`
	// DateFetched is the local retrieval time in TimeLayout format.
	DateFetched string `json:"date_fetched"`
}

// ErrorRecord is the persisted result of a failed retrieval.
type ErrorRecord struct {
	// Message describes what went wrong.
	Message string `json:"error"`
	// VideoID is set when the input resolved to an ID before the failure.
	VideoID string `json:"video_id,omitempty"`
}

// Result is the outcome of one retrieval. Exactly one of Transcript or Error
// is set; Save and MarshalJSON enforce this.
type Result struct {
	Transcript *TranscriptRecord
	Error      *ErrorRecord
}

// Succeeded reports whether the result carries transcript text, which is the
// caller's signal to echo it.
func (r Result) Succeeded() bool {
	return r.Transcript != nil
}

// VideoID returns the identifier from whichever record is present, or "" when
// the input never resolved.
func (r Result) VideoID() string {
	if r.Transcript != nil {
		return r.Transcript.VideoID
	}
	if r.Error != nil {
		return r.Error.VideoID
	}
	return ""
}

// MarshalJSON emits the flat one-object form of whichever record is present.
func (r Result) MarshalJSON() ([]byte, error) {
	switch {
	case r.Transcript != nil && r.Error != nil:
		return nil, fmt.Errorf("result holds both a transcript and an error record")
	case r.Transcript != nil:
		return json.Marshal(r.Transcript)
	case r.Error != nil:
		return json.Marshal(r.Error)
	}
	return nil, fmt.Errorf("result holds no record")
}
