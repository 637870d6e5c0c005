//go:build !cgo || !linux

package ocr

const engineAvailable = false

func recognizeDigits(path string) (string, error) {
	return "", ErrUnavailable
}
