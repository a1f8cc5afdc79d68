// Package image extracts text from raster images via optical character
// recognition. Recognition is delegated to the tesseract CLI, which
// must be installed separately.
package image

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// CommandRunner runs an external command with the payload on stdin and
// returns its stdout. Abstracted for testing.
type CommandRunner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(string(stdin))

	var out strings.Builder
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return []byte(out.String()), nil
}

// Extractor handles image payloads through tesseract.
type Extractor struct {
	runner CommandRunner
}

// New creates an image extractor using the real tesseract binary.
func New() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewWithRunner creates an image extractor with a custom runner.
// Used in tests.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
// Tesseract decodes the common raster formats itself, so any image/*
// type is routed here; an undecodable one fails at recognition time.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"image/png",
		"image/jpeg",
		"image/gif",
		"image/tiff",
		"image/bmp",
		"image/webp",
	}
}

// Extract runs OCR over the payload and returns the recognized text
// with surrounding whitespace trimmed.
func (e *Extractor) Extract(ctx context.Context, payload []byte) (string, error) {
	out, err := e.runner.Run(ctx, payload, "tesseract", "stdin", "stdout")
	if err != nil {
		return "", fmt.Errorf("%w: tesseract: %v", domain.ErrDecodeFailed, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// InstallInstructions returns guidance for installing tesseract.
func InstallInstructions() string {
	return "OCR requires the tesseract binary:\n" +
		"  macOS:  brew install tesseract\n" +
		"  Debian: apt install tesseract-ocr"
}
