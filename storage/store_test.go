package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testRecord() *TranscriptRecord {
	return &TranscriptRecord{
		VideoID:     "dQw4w9WgXcQ",
		Language:    "de",
		Transcript:  "Grüße und <Willkommen>\nzweite Zeile",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		DateFetched: "2026-08-29T10:30:00",
	}
}

func TestSaveTranscriptRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result := Result{Transcript: testRecord()}
	if err := store.Save(result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(dir, "dQw4w9WgXcQ.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}

	// Pretty-printed, non-ASCII and HTML characters preserved un-escaped.
	if !bytes.Contains(data, []byte("\n    \"")) {
		t.Error("saved JSON is not indented")
	}
	if !bytes.Contains(data, []byte("Grüße")) {
		t.Error("non-ASCII text was escaped")
	}
	if !bytes.Contains(data, []byte("<Willkommen>")) {
		t.Error("angle brackets were escaped")
	}

	var got TranscriptRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal saved file: %v", err)
	}
	if got != *result.Transcript {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, *result.Transcript)
	}
}

func TestSaveErrorRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result := Result{Error: &ErrorRecord{
		Message: "Transcripts are disabled for this video.",
		VideoID: "dQw4w9WgXcQ",
	}}
	if err := store.Save(result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "dQw4w9WgXcQ.json"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal saved file: %v", err)
	}
	if got["error"] != "Transcripts are disabled for this video." {
		t.Errorf("error field = %q", got["error"])
	}
	if _, ok := got["transcript"]; ok {
		t.Error("error record must not carry a transcript field")
	}
}

func TestSaveWithoutVideoID(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result := Result{Error: &ErrorRecord{Message: "Invalid YouTube URL or video ID."}}
	if err := store.Save(result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "unknown.json")); err != nil {
		t.Errorf("unknown.json not written: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "unknown.json"))
	if strings.Contains(string(data), "video_id") {
		t.Error("video_id field present despite missing identifier")
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := New(dir, nil); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestNewEmptyDir(t *testing.T) {
	if _, err := New("", nil); err == nil {
		t.Fatal("expected error for empty output directory")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.Save(Result{Transcript: testRecord()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestResultMarshalInvariant(t *testing.T) {
	if _, err := json.Marshal(Result{}); err == nil {
		t.Error("marshaling an empty result should fail")
	}

	both := Result{
		Transcript: testRecord(),
		Error:      &ErrorRecord{Message: "boom"},
	}
	if _, err := json.Marshal(both); err == nil {
		t.Error("marshaling a result with both records should fail")
	}
}
