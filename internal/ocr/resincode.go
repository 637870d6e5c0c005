// Package ocr reads recycling resin codes from photos.
//
// The resin identification code is the digit 1-7 printed inside the
// chasing-arrows triangle molded into most plastic products. When the digit
// is legible it identifies the material outright, so a successful read is a
// high-confidence vote for the classifier.
//
// Recognition uses the Tesseract engine (via gosseract/v2) restricted to
// the digits 1-7. Tesseract and its English training data must be installed
// on the system; on platforms without CGO the reader reports itself
// unavailable and the pipeline simply classifies without it.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"

	"github.com/plastiscan/plastiscan/internal/classify"
	"github.com/plastiscan/plastiscan/internal/material"
)

// ErrUnavailable is returned when no OCR engine is compiled in or the
// engine cannot run on this system.
var ErrUnavailable = errors.New("resin code OCR unavailable on this platform")

// Resin-code digits are engraved and low-contrast; a read is treated as a
// strong but not decisive vote.
const codeConfidence = 0.70

// Small embossed digits recognize poorly at native resolution, so images
// below this edge length are upscaled before OCR.
const minOCREdge = 600

// Reader extracts resin codes from images. The zero value uses the
// platform OCR engine; tests substitute Recognize to avoid a Tesseract
// dependency.
type Reader struct {
	// Recognize runs the OCR engine over a PNG file and returns the raw
	// recognized text. Nil selects the platform engine.
	Recognize func(path string) (string, error)
}

var _ classify.CodeReader = (*Reader)(nil)

// Available reports whether the platform OCR engine was compiled in.
func Available() bool {
	return engineAvailable
}

// ReadResinCode scans the image for a legible resin code digit and turns
// it into a material vote. A nil signal with a nil error means no digit
// between 1 and 7 was recognized.
func (r *Reader) ReadResinCode(ctx context.Context, img image.Image) (*classify.Signal, error) {
	if img == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recognize := r.Recognize
	if recognize == nil {
		if !engineAvailable {
			return nil, ErrUnavailable
		}
		recognize = recognizeDigits
	}

	path, err := saveTempPNG(prepare(img))
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	text, err := recognize(path)
	if err != nil {
		return nil, fmt.Errorf("resin code OCR: %w", err)
	}

	mat, ok := parseResinDigit(text)
	if !ok {
		return nil, nil
	}
	return &classify.Signal{
		Material:   mat,
		Confidence: codeConfidence,
		Source:     "resin code",
	}, nil
}

// prepare upscales small images so embossed digits cover enough pixels for
// the engine to latch onto.
func prepare(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() >= minOCREdge || b.Dy() >= minOCREdge {
		return img
	}
	if b.Dx() >= b.Dy() {
		return imaging.Resize(img, minOCREdge, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, minOCREdge, imaging.Lanczos)
}

// parseResinDigit returns the material for the first digit 1-7 in the
// recognized text. Whitelisting keeps the engine from emitting letters,
// but stray whitespace and repeated digits still occur.
func parseResinDigit(text string) (material.Material, bool) {
	for _, r := range text {
		if r >= '1' && r <= '7' {
			return material.FromCode(string(r))
		}
	}
	return 0, false
}

func saveTempPNG(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "resincode-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
