// Package convert orchestrates QHF-to-JSON/TXT conversion for single
// files and whole directories. Decoding itself stays pure; all filesystem
// work and logging happens here.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"qhfkit/internal/render"
	"qhfkit/pkg/qhf"
	"qhfkit/pkg/types"
)

// Format selects the output rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "txt":
		return FormatTXT, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json or txt)", s)
}

// Options configures a conversion run.
type Options struct {
	Format Format
	Decode types.DecodeOptions
	Jobs   int          // max concurrent file conversions in Dir; <=0 means GOMAXPROCS
	Logger *slog.Logger // nil discards all logging
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) format() Format {
	if o.Format == "" {
		return FormatJSON
	}
	return o.Format
}

// Render decodes one QHF file and renders it in the requested format.
func Render(path string, opts Options) ([]byte, error) {
	hist, err := qhf.DecodeFile(path, opts.Decode)
	if err != nil {
		return nil, err
	}
	if opts.format() == FormatTXT {
		return render.Text(hist), nil
	}
	return render.JSON(hist)
}

// File converts one QHF file into outPath. On decode failure no output
// file is written.
func File(inPath, outPath string, opts Options) error {
	out, err := Render(inPath, opts)
	if err != nil {
		return fmt.Errorf("convert %s: %w", inPath, err)
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("convert %s: %w", inPath, err)
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("convert %s: %w", inPath, err)
	}
	return nil
}
