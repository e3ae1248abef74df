package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/trickbook/pkg/validate"
)

// CLI для проверки файлов с событиями библиотеки перед отправкой в Kafka.
// Валидные события печатаются в stdout, итог — в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl); empty reads JSONL from stdin")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, *inputPath, validate.InputFormat(*formatStr), os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, res)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", res)
	if res.Invalid > 0 {
		os.Exit(2)
	}
}

func run(ctx context.Context, path string, format validate.InputFormat, stdin io.Reader, stdout io.Writer) (validate.Result, error) {
	v := validate.NewEventValidator()
	if path != "" {
		return validate.ValidateFile(ctx, v, path, format, stdout)
	}
	if format == validate.FormatAuto {
		format = validate.FormatJSONL
	}
	return validate.ValidateReader(ctx, v, stdin, format, stdout)
}
