package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// encodePNG renders a test image to PNG bytes.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := createInMemoryImage(width, height, color.RGBA{10, 160, 80, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBytes(t *testing.T) {
	data := encodePNG(t, 32, 24)

	img, format, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %s, want png", format)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("dimensions: got %dx%d, want 32x24", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecodeBytes_Empty(t *testing.T) {
	if _, _, err := DecodeBytes(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty buffer: got %v, want ErrInvalidInput", err)
	}
}

func TestDecodeBytes_Garbage(t *testing.T) {
	if _, _, err := DecodeBytes([]byte("not an image")); err == nil {
		t.Error("expected decode error for garbage input")
	}
}

func TestDecodeBase64(t *testing.T) {
	data := encodePNG(t, 16, 16)
	encoded := base64.StdEncoding.EncodeToString(data)

	tests := []struct {
		name  string
		input string
	}{
		{"bare base64", encoded},
		{"data URL prefix", "data:image/png;base64," + encoded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := DecodeBase64(tt.input)
			if err != nil {
				t.Fatalf("DecodeBase64 failed: %v", err)
			}
			if format != "png" {
				t.Errorf("format: got %s, want png", format)
			}
			if img.Bounds().Dx() != 16 {
				t.Errorf("width: got %d, want 16", img.Bounds().Dx())
			}
		})
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	if _, _, err := DecodeBase64("!!!not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestImageCache_LoadAndEvict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	if err := os.WriteFile(path, encodePNG(t, 20, 20), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("width: got %d, want 20", img.Bounds().Dx())
	}

	// Second load hits the cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove test file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("expected load failure after eviction of deleted file")
	}
}

func TestLoadImageInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.png")
	data := encodePNG(t, 48, 32)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 48 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 48x32", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes != int64(len(data)) {
		t.Errorf("file size: got %d, want %d", info.FileSizeBytes, len(data))
	}
}
