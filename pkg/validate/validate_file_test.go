package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

const (
	validEvent   = `{"type":"trick_created","user_id":"u1","trick_id":"t1","category_ids":["c1"]}`
	invalidEvent = `{"type":"category_created","user_id":"u1"}`
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	if err := os.WriteFile(path, []byte(validEvent), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ValidateFile(context.Background(), NewEventValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != (Result{Valid: 1}) {
		t.Fatalf("unexpected result: %s", res)
	}
	var e domain.LibraryEvent
	if err := json.Unmarshal(out.Bytes(), &e); err != nil || e.TrickID != "t1" {
		t.Fatalf("unexpected output %q err=%v", out.String(), err)
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(invalidEvent), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ValidateFile(context.Background(), NewEventValidator(), path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if res.String() != "0 valid / 1 invalid" {
		t.Fatalf("unexpected result: %s", res)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	content := validEvent + "\n" + invalidEvent + "\n\n" + validEvent + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ValidateFile(context.Background(), NewEventValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != (Result{Valid: 2, Invalid: 1}) {
		t.Fatalf("unexpected result: %s", res)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	_, err := ValidateFile(context.Background(), NewEventValidator(), filepath.Join(t.TempDir(), "nope.json"), FormatAuto, &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	big := strings.Repeat("c", 200_000) // > 64KB
	line := `{"type":"category_deleted","user_id":"u1","category_id":"` + big + `"}`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(context.Background(), NewEventValidator(), strings.NewReader(line), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != (Result{Valid: 1}) {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

func TestValidateReader_Stdin(t *testing.T) {
	in := strings.NewReader(validEvent + "\n" + "not json\n")
	var out bytes.Buffer
	res, err := ValidateReader(context.Background(), NewEventValidator(), in, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != (Result{Valid: 1, Invalid: 1}) {
		t.Fatalf("unexpected result: %s", res)
	}

	if _, err := ValidateReader(context.Background(), NewEventValidator(), in, InputFormat("xml"), &out); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestValidateJSONLStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ValidateJSONLStream(ctx, NewEventValidator(), strings.NewReader(validEvent+"\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]InputFormat{
		"a.jsonl":  FormatJSONL,
		"A.JSONL":  FormatJSONL,
		"a.json":   FormatJSON,
		"events":   FormatJSON,
		"dir/x.gz": FormatJSON,
	}
	for in, want := range cases {
		if got := DetectFormat(in); got != want {
			t.Fatalf("%s: want %s, got %s", in, want, got)
		}
	}
}
