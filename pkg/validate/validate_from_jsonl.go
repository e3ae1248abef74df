package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/trickbook/internal/ports"
)

// ValidateJSONLStream — события по одному на строку; валидные пишутся в writer
// каноническим JSON, невалидные считаются и пропускаются. Пустые строки игнорируются.
func ValidateJSONLStream(ctx context.Context, validator ports.EventValidator, ir io.Reader, ow io.Writer) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	enc := json.NewEncoder(ow)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		event, err := EventFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.Invalid++
			continue
		}

		if err := enc.Encode(event); err != nil {
			return res, fmt.Errorf("write line %d: %w", lineNo, err)
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
