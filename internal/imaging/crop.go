package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropRegion extracts a rectangular region from an image.
//
// Coordinates follow the standard convention: (x1,y1) inclusive top-left,
// (x2,y2) exclusive bottom-right. The region must lie within the image
// bounds and have positive area.
func CropRegion(img image.Image, x1, y1, x2, y2 int) (image.Image, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

// CropScaled extracts a region and rescales the result to targetWidth ×
// targetHeight. The detector uses this to bring a grid cell back to a
// resolution the classifier's statistics are stable at.
func CropScaled(img image.Image, x1, y1, x2, y2, targetWidth, targetHeight int) (image.Image, error) {
	cropped, err := CropRegion(img, x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	if targetWidth <= 0 || targetHeight <= 0 {
		return cropped, nil
	}
	return imaging.Resize(cropped, targetWidth, targetHeight, imaging.Lanczos), nil
}
