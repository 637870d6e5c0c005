package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// EdgeMap is a binary per-pixel edge mask at a fixed analysis resolution.
// true marks a pixel whose right neighbor differs strongly in color.
type EdgeMap struct {
	Size  int
	Edges [][]bool
}

// segmentEdgeThreshold is the summed per-channel difference between a pixel
// and its right neighbor above which the pixel is marked as an edge.
const segmentEdgeThreshold = 50

// BinaryEdgeMap downsamples the image to size×size, denoises it with a light
// Gaussian blur, and marks every pixel whose right neighbor differs by more
// than the fixed channel-delta threshold.
//
// The blur keeps sensor noise in flat areas (plastic film, foam) from
// registering as object boundaries. A nil image yields an all-false map so
// the segmenter can fall through to its fallback region.
func BinaryEdgeMap(img image.Image, size int) *EdgeMap {
	edges := make([][]bool, size)
	for y := range edges {
		edges[y] = make([]bool, size)
	}
	em := &EdgeMap{Size: size, Edges: edges}

	if img == nil || img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return em
	}

	small := imaging.Resize(img, size, size, imaging.Lanczos)
	blurred := blur.Gaussian(small, 1.0)
	data := blurred.Pix
	stride := blurred.Stride

	for y := 0; y < size; y++ {
		for x := 0; x < size-1; x++ {
			i := y*stride + x*4
			j := i + 4
			diff := absDiff(data[i], data[j]) +
				absDiff(data[i+1], data[j+1]) +
				absDiff(data[i+2], data[j+2])
			edges[y][x] = diff > segmentEdgeThreshold
		}
	}
	return em
}

// Density returns the fraction of edge pixels inside the rectangle
// [x0,x1)×[y0,y1), clamped to the map bounds. An empty intersection
// reports zero.
func (m *EdgeMap) Density(x0, y0, x1, y1 int) float64 {
	x0 = clamp(x0, 0, m.Size)
	y0 = clamp(y0, 0, m.Size)
	x1 = clamp(x1, 0, m.Size)
	y1 = clamp(y1, 0, m.Size)

	count := 0
	total := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Edges[y][x] {
				count++
			}
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
