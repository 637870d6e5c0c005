//go:build cgo && linux

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

const engineAvailable = true

// recognizeDigits runs Tesseract over the image restricted to the resin
// digit alphabet. Single-block segmentation works better than full page
// layout analysis for a lone molded symbol.
func recognizeDigits(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist("1234567"); err != nil {
		return "", fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set segmentation mode: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
