package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ythttp "ytscribe/http"
)

func testHTTPClient(t *testing.T) *ythttp.Client {
	t.Helper()
	client := ythttp.New(&ythttp.Config{
		Timeout:   5 * time.Second,
		UserAgent: "ytscribe-test",
		RateLimiter: ythttp.RateLimiterConfig{
			RequestsPerSecond: 1000,
			Burst:             100,
		},
	})
	t.Cleanup(func() { client.Close() })
	return client
}

// watchPage builds a minimal watch page body embedding the given caption
// tracks the way the player response inlines them.
func watchPage(tracks string) string {
	return `<html><body><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},` +
		`"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` + tracks + `]}},` +
		`"videoDetails":{"videoId":"test"}};</script></body></html>`
}

func newCaptionServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		tracks := fmt.Sprintf(
			`{"baseUrl":"%s/timedtext?v=test&lang=de","name":{"simpleText":"German"},"languageCode":"de","kind":""},`+
				`{"baseUrl":"%s/timedtext?v=test&lang=fr","name":{"simpleText":"French"},"languageCode":"fr","kind":"asr"}`,
			server.URL, server.URL)
		fmt.Fprint(w, watchPage(tracks))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fmt") != "json3" {
			http.Error(w, "bad format", http.StatusBadRequest)
			return
		}
		switch r.URL.Query().Get("lang") {
		case "de":
			fmt.Fprint(w, `{"events":[{"tStartMs":0,"dDurationMs":2000,"segs":[{"utf8":"Guten Tag"}]},{"tStartMs":2000,"dDurationMs":1000,"segs":[{"utf8":"Welt"}]}]}`)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	client := NewClient(testHTTPClient(t), WithWatchBase(server.URL+"/watch"))
	return server, client
}

func TestListTracks(t *testing.T) {
	_, client := newCaptionServer(t)

	tracks, err := client.ListTracks(context.Background(), "test")
	if err != nil {
		t.Fatalf("ListTracks failed: %v", err)
	}

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].LanguageCode != "de" || tracks[0].Name != "German" {
		t.Errorf("tracks[0] = %+v, want German/de", tracks[0])
	}
	if tracks[0].AutoGenerated {
		t.Error("tracks[0] marked auto-generated, want manual")
	}
	if !tracks[1].AutoGenerated {
		t.Error("tracks[1] not marked auto-generated, want asr")
	}
	if tracks[0].BaseURL == "" {
		t.Error("tracks[0] has no base URL")
	}
}

func TestFetchTranscript(t *testing.T) {
	_, client := newCaptionServer(t)

	segments, err := client.FetchTranscript(context.Background(), "test", "de")
	if err != nil {
		t.Fatalf("FetchTranscript failed: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "Guten Tag" {
		t.Errorf("segments[0].Text = %q, want %q", segments[0].Text, "Guten Tag")
	}
}

func TestFetchTranscriptLanguageMissing(t *testing.T) {
	_, client := newCaptionServer(t)

	_, err := client.FetchTranscript(context.Background(), "test", "en")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("error = %v, want ErrNoTranscript", err)
	}

	var terr *TranscriptError
	if !errors.As(err, &terr) {
		t.Fatal("error is not a *TranscriptError")
	}
	if terr.Language != "en" {
		t.Errorf("TranscriptError.Language = %q, want %q", terr.Language, "en")
	}
}

func TestListTracksDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>{"playabilityStatus":{"status":"OK"},"videoDetails":{"videoId":"test"}}</body></html>`)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(t), WithWatchBase(server.URL+"/watch"))

	_, err := client.ListTracks(context.Background(), "test")
	if !errors.Is(err, ErrTranscriptsDisabled) {
		t.Fatalf("error = %v, want ErrTranscriptsDisabled", err)
	}
}

func TestListTracksEmptyTrackList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage(""))
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(t), WithWatchBase(server.URL+"/watch"))

	_, err := client.ListTracks(context.Background(), "test")
	if !errors.Is(err, ErrTranscriptsDisabled) {
		t.Fatalf("error = %v, want ErrTranscriptsDisabled", err)
	}
}

func TestListTracksCaptcha(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="g-recaptcha"></div></body></html>`)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(t), WithWatchBase(server.URL+"/watch"))

	_, err := client.ListTracks(context.Background(), "test")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
}

func TestListTracksRateLimitedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testHTTPClient(t), WithWatchBase(server.URL+"/watch"))

	_, err := client.ListTracks(context.Background(), "test")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
}

func TestFetchTrackWithoutURL(t *testing.T) {
	client := NewClient(testHTTPClient(t))

	_, err := client.FetchTrack(context.Background(), Track{LanguageCode: "en"})
	if err == nil {
		t.Fatal("expected error for track without fetch URL")
	}
}

func TestListTracksEmptyVideoID(t *testing.T) {
	client := NewClient(testHTTPClient(t))

	if _, err := client.ListTracks(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty video ID")
	}
}
