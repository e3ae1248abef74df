package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/trickbook/internal/ports"
)

// InputFormat — формат входа офлайн-проверки событий.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"  // один объект
	FormatJSONL InputFormat = "jsonl" // объект на строку
)

// Result — сколько событий прошло проверку.
type Result struct {
	Valid   int
	Invalid int
}

func (r Result) String() string { return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid) }

// DetectFormat — формат по расширению; всё, кроме .jsonl, читается как JSON.
func DetectFormat(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — открывает файл и проверяет его через ValidateReader.
func ValidateFile(ctx context.Context, validator ports.EventValidator, path string, format InputFormat, w io.Writer) (Result, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return ValidateReader(ctx, validator, f, format, w)
}

// ValidateReader — валидные события пишутся в w каноническим JSON, по одному на строку.
// Для FormatJSON невалидный объект возвращается ошибкой.
func ValidateReader(ctx context.Context, validator ports.EventValidator, r io.Reader, format InputFormat, w io.Writer) (Result, error) {
	switch format {
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, r, w)
	case FormatJSON:
		raw, err := io.ReadAll(r)
		if err != nil {
			return Result{}, fmt.Errorf("read input: %w", err)
		}
		event, err := EventFromJSON(ctx, validator, raw)
		if err != nil {
			return Result{Invalid: 1}, err
		}
		canonical, err := json.Marshal(event)
		if err != nil {
			return Result{}, fmt.Errorf("encode event: %w", err)
		}
		if _, err := w.Write(append(canonical, '\n')); err != nil {
			return Result{}, fmt.Errorf("write event: %w", err)
		}
		return Result{Valid: 1}, nil
	default:
		return Result{}, fmt.Errorf("unsupported format: %q", format)
	}
}
