package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
)

// timedtextResponse is the json3 payload served by the timedtext endpoint.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

// timedtextEvent is a single timed event. Events without segs carry window
// styling rather than text.
type timedtextEvent struct {
	StartMs    int64              `json:"tStartMs"`
	DurationMs int64              `json:"dDurationMs"`
	Segs       []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// parseTimedtext converts a json3 timedtext body into transcript segments.
// Styling events and the bare-newline separators that ASR tracks emit are
// dropped.
func parseTimedtext(data []byte) ([]Segment, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal timedtext json: %w", err)
	}

	var segments []Segment
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		line := strings.TrimSpace(text.String())
		if line == "" {
			continue
		}

		segments = append(segments, Segment{
			Text:     line,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}

	return segments, nil
}
