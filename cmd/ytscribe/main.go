package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"ytscribe"
	"ytscribe/config"
	ythttp "ytscribe/http"
	"ytscribe/storage"
	"ytscribe/youtube"
)

func main() {
	if len(os.Args) < 2 {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "fetch":
		cmdFetch(args)
	case "languages":
		cmdLanguages(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Assume a bare URL or ID for backward compatibility
		cmdFetch(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytscribe - YouTube transcript fetcher

Usage:
  ytscribe                              Interactive mode: read URLs/IDs from stdin
  ytscribe fetch [flags] <url-or-id>    Fetch one transcript and save it
  ytscribe languages <url-or-id>        List available caption languages
  ytscribe help                         Show this help message

Examples:
  ytscribe fetch dQw4w9WgXcQ
  ytscribe fetch --lang de https://youtu.be/dQw4w9WgXcQ
  ytscribe languages dQw4w9WgXcQ

Transcripts are saved as <output-dir>/<video_id>.json. The output directory,
preferred language, and Data API key come from ytscribe.json or YTSCRIBE_*
environment variables.
`)
}

// app bundles the pieces a command needs, built once from configuration.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *ythttp.Client
	service *youtube.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	httpCfg := ythttp.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.UserAgent = cfg.UserAgent
	httpCfg.RateLimiter.RequestsPerSecond = cfg.RequestsPerSecond

	client := ythttp.New(httpCfg)
	service := youtube.NewClient(client, youtube.WithLogger(logger))

	return &app{cfg: cfg, logger: logger, client: client, service: service}, nil
}

func (a *app) close() {
	a.client.Close()
}

func (a *app) fetcher(language string) *ytscribe.Fetcher {
	if language == "" {
		language = a.cfg.Language
	}
	return ytscribe.NewFetcher(a.service,
		ytscribe.WithLanguage(language),
		ytscribe.WithFetcherLogger(a.logger),
	)
}

// runInteractive reads one URL or ID per line from stdin until "exit", EOF,
// or an interrupt. Every line produces exactly one saved record.
func runInteractive() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	store, err := storage.New(a.cfg.OutputDir, a.logger)
	if err != nil {
		return err
	}

	fetcher := a.fetcher("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("\nEnter YouTube video URL or ID (or 'exit' to quit): ")

		select {
		case <-ctx.Done():
			fmt.Println()
			a.logger.Info("interrupted, exiting")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			input := strings.TrimSpace(line)
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "exit") {
				a.logger.Info("exiting")
				return nil
			}

			result := fetcher.Fetch(ctx, input)

			// A failed save is logged but never aborts the loop; the
			// in-memory result is still shown.
			if err := store.Save(result); err != nil {
				a.logger.Error("could not save result", "error", err)
			}

			if result.Succeeded() {
				fmt.Println("\nTranscript:")
				fmt.Println(result.Transcript.Transcript)
			}
		}
	}
}

func cmdFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	lang := fs.String("lang", "", "Preferred language code (default from config)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe fetch [flags] <url-or-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing url-or-id\n")
		fs.Usage()
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	store, err := storage.New(a.cfg.OutputDir, a.logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := a.fetcher(*lang).Fetch(ctx, argv[0])

	if err := store.Save(result); err != nil {
		a.logger.Error("could not save result", "error", err)
	}

	if !result.Succeeded() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error.Message)
		os.Exit(1)
	}

	fmt.Println(result.Transcript.Transcript)
	fmt.Fprintf(os.Stderr, "Saved to: %s\n", store.Path(result))
}

func cmdLanguages(args []string) {
	fs := flag.NewFlagSet("languages", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe languages <url-or-id>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing url-or-id\n")
		fs.Usage()
		os.Exit(1)
	}

	videoID, err := youtube.ResolveVideoID(argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracks, err := listTracks(ctx, a, videoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing caption tracks: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tAUTO")
	for _, track := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%v\n", track.LanguageCode, track.Name, track.AutoGenerated)
	}
	w.Flush()
}

// listTracks prefers the Data API when a key is configured and falls back to
// the watch-page client when the API call fails.
func listTracks(ctx context.Context, a *app, videoID string) ([]youtube.Track, error) {
	if a.cfg.APIKey != "" {
		lister, err := youtube.NewDataAPILister(ctx, a.cfg.APIKey)
		if err == nil {
			tracks, err := lister.ListTracks(ctx, videoID)
			if err == nil {
				return tracks, nil
			}
			a.logger.Warn("data api listing failed, falling back", "error", err)
		} else {
			a.logger.Warn("data api unavailable, falling back", "error", err)
		}
	}

	return a.service.ListTracks(ctx, videoID)
}
