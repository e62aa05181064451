// Package pdftext turns an uploaded statement file into trimmed text lines.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnreadable is returned for documents that cannot be converted to text.
var ErrUnreadable = errors.New("failed to parse document")

// Extractor produces the text lines of a stored document.
type Extractor interface {
	Lines(ctx context.Context, path string) ([]string, error)
}

// Pdftotext extracts text with the poppler pdftotext tool. Plain .txt
// files are read directly.
type Pdftotext struct {
	Binary  string
	Timeout time.Duration
}

// New returns a Pdftotext using binary, or "pdftotext" from PATH when empty.
func New(binary string, timeout time.Duration) *Pdftotext {
	if binary == "" {
		binary = "pdftotext"
	}
	return &Pdftotext{Binary: binary, Timeout: timeout}
}

// Lines returns the non-empty trimmed lines of the document at path.
func (p *Pdftotext) Lines(ctx context.Context, path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		return SplitLines(string(data)), nil
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.Binary, "-enc", "UTF-8", path, "-")
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: pdftotext: %s", ErrUnreadable, msg)
	}
	return SplitLines(string(out)), nil
}

// SplitLines splits text on line breaks and form feeds, trims each line and
// drops the empty ones.
func SplitLines(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\f'
	})
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if line := strings.TrimSpace(f); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
