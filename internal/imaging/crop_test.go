package imaging

import (
	"image/color"
	"testing"
)

func TestCropRegion(t *testing.T) {
	img := createSplitImage(100, 100, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255})

	cropped, err := CropRegion(img, 0, 0, 50, 100)
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}
	if cropped.Bounds().Dx() != 50 || cropped.Bounds().Dy() != 100 {
		t.Errorf("dimensions: got %dx%d, want 50x100", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}

func TestCropRegion_InvalidRegions(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{10, 10, 10, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"outside bounds", 0, 0, 60, 60},
		{"negative origin", -5, 0, 20, 20},
		{"inverted x", 30, 0, 10, 20},
		{"zero area", 10, 10, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.x1, tt.y1, tt.x2, tt.y2); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCropScaled(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{40, 40, 40, 255})

	scaled, err := CropScaled(img, 25, 25, 75, 75, 200, 200)
	if err != nil {
		t.Fatalf("CropScaled failed: %v", err)
	}
	if scaled.Bounds().Dx() != 200 || scaled.Bounds().Dy() != 200 {
		t.Errorf("dimensions: got %dx%d, want 200x200", scaled.Bounds().Dx(), scaled.Bounds().Dy())
	}

	// Zero target size keeps the cropped resolution.
	unscaled, err := CropScaled(img, 25, 25, 75, 75, 0, 0)
	if err != nil {
		t.Fatalf("CropScaled failed: %v", err)
	}
	if unscaled.Bounds().Dx() != 50 {
		t.Errorf("unscaled width: got %d, want 50", unscaled.Bounds().Dx())
	}
}
