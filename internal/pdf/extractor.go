// Package pdf pulls raw text out of PDF resumes. Two engines are
// provided: a pure-Go reader that works everywhere, and a docconv
// engine that shells out to pdftotext and handles a wider range of
// documents when the binary is installed.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	ledongthuc "github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document parses but yields no text,
// e.g. a scanned image-only PDF.
var ErrNoText = errors.New("pdf: document contains no extractable text")

// TextExtractor converts a PDF into page-ordered plain text.
type TextExtractor interface {
	ExtractFile(ctx context.Context, path string) (string, error)
	ExtractBytes(ctx context.Context, data []byte) (string, error)
}

// NewExtractor returns the extractor for the configured engine.
// Unknown engine names fall back to the native one.
func NewExtractor(engine string) TextExtractor {
	if engine == "docconv" {
		return &DocconvExtractor{}
	}
	return &NativeExtractor{}
}

// NativeExtractor reads PDFs with github.com/ledongthuc/pdf.
type NativeExtractor struct{}

func (e *NativeExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	return e.ExtractBytes(ctx, data)
}

func (e *NativeExtractor) ExtractBytes(_ context.Context, data []byte) (string, error) {
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	text := normalizeWhitespace(buf.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// DocconvExtractor reads PDFs through code.sajari.com/docconv.
// Requires pdftotext on PATH.
type DocconvExtractor struct{}

func (e *DocconvExtractor) ExtractFile(_ context.Context, path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}
	text := normalizeWhitespace(res.Body)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (e *DocconvExtractor) ExtractBytes(_ context.Context, data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), "application/pdf", true)
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}
	text := normalizeWhitespace(res.Body)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n{2,}`)
)

// normalizeWhitespace collapses runs of spaces and blank lines while
// keeping line boundaries, which the field extractor relies on.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
