// Package ytscribe fetches YouTube video transcripts and saves them as JSON.
//
// # Overview
//
// ytscribe resolves a user-supplied URL or video ID, retrieves the transcript
// in a preferred language (English by default), falls back to the first
// retrievable alternative language when the preferred one has no track, and
// produces exactly one result record per attempt: a transcript record or an
// error record, never both.
//
// # Quick Start
//
// Fetch a transcript with default configuration:
//
//	ctx := context.Background()
//	result, err := ytscribe.Fetch(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Succeeded() {
//		fmt.Println(result.Transcript.Transcript)
//	}
//
// For more control, build the pieces yourself:
//
//	client := ythttp.New(nil)
//	defer client.Close()
//	fetcher := ytscribe.NewFetcher(youtube.NewClient(client),
//		ytscribe.WithLanguage("de"))
//	result := fetcher.Fetch(ctx, "dQw4w9WgXcQ")
//
// # Configuration
//
// Configuration is loaded from multiple sources:
//
//  1. Environment variables (highest priority)
//  2. Config file (ytscribe.json or ~/.config/ytscribe/ytscribe.json)
//  3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTSCRIBE_OUTPUT_DIR: Directory transcript JSON files are written to
//   - YTSCRIBE_LANGUAGE: Preferred transcript language code
//   - YTSCRIBE_API_KEY: YouTube Data API key for caption listing
//   - YTSCRIBE_USER_AGENT: User agent for YouTube requests
//   - YTSCRIBE_HTTP_TIMEOUT: Per-request timeout
//   - YTSCRIBE_REQUESTS_PER_SECOND: Request rate cap per YouTube domain
//   - YTSCRIBE_LOG_LEVEL: debug, info, warn, or error
//
// # Error Handling
//
// Retrieval failures never escape as faults: Fetcher.Fetch converts every
// failure into an error record. The underlying sentinel errors are exported
// for callers using the youtube package directly:
//
//	if errors.Is(err, ytscribe.ErrTranscriptsDisabled) {
//		fmt.Println("this video has captions turned off")
//	}
//
// # Sub-packages
//
//   - youtube: video ID resolution and transcript retrieval clients
//   - storage: result records and per-video JSON persistence
//   - config: configuration management
//   - http: rate-limited HTTP client used against YouTube
package ytscribe
