package imaging

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidInput reports a nil or zero-sized pixel buffer. It is the only
// feature-extraction failure that surfaces to callers.
var ErrInvalidInput = errors.New("invalid input: empty pixel buffer")

// VisualFeatures is a compact set of visual statistics derived from an
// image's raw pixels. All values are ratios in [0,1]. It is a pure value
// object, recomputed per image.
type VisualFeatures struct {
	Brightness   float64 `json:"brightness"`
	Saturation   float64 `json:"saturation"`
	Contrast     float64 `json:"contrast"`
	EdgeDensity  float64 `json:"edge_density"`
	Transparency float64 `json:"transparency"`
}

// edgeDeltaThreshold is the summed per-channel difference between adjacent
// pixels above which the pair counts as an edge.
const edgeDeltaThreshold = 40

// ExtractFeatures computes VisualFeatures in a single pass over the image's
// RGBA pixels.
//
// Brightness is the mean of (r+g+b)/3/255; saturation the mean of
// (max-min)/max per pixel. Contrast and edge density both approximate local
// variation by counting adjacent-pixel channel deltas above a fixed
// threshold. A pixel counts toward transparency when its alpha is below 200,
// or when it is near-white while the saturation average accumulated so far
// is below 0.1. That second test uses the running average mid-pass rather
// than the final value; the streaming behavior is kept deliberately, and the
// tests pin it.
//
// Returns ErrInvalidInput for a nil or zero-sized image.
func ExtractFeatures(img image.Image) (*VisualFeatures, error) {
	if img == nil {
		return nil, ErrInvalidInput
	}
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= 0 {
		return nil, ErrInvalidInput
	}

	// Clone normalizes any image type to NRGBA with a flat Pix buffer.
	nrgba := imaging.Clone(img)
	data := nrgba.Pix

	var totalBrightness, totalSaturation float64
	var edges, transparent, seen int

	for i := 0; i < len(data); i += 4 {
		r := data[i]
		g := data[i+1]
		b := data[i+2]
		a := data[i+3]

		max := r
		if g > max {
			max = g
		}
		if b > max {
			max = b
		}
		min := r
		if g < min {
			min = g
		}
		if b < min {
			min = b
		}

		totalBrightness += float64(int(r)+int(g)+int(b)) / 3 / 255
		if max > 0 {
			totalSaturation += float64(max-min) / float64(max)
		}
		seen++

		if a < 200 || (max > 240 && totalSaturation/float64(seen) < 0.1) {
			transparent++
		}

		if i >= 4 {
			diff := absDiff(r, data[i-4]) + absDiff(g, data[i-3]) + absDiff(b, data[i-2])
			if diff > edgeDeltaThreshold {
				edges++
			}
		}
	}

	fp := float64(pixels)
	return &VisualFeatures{
		Brightness:   totalBrightness / fp,
		Saturation:   totalSaturation / fp,
		Contrast:     float64(edges) / fp,
		EdgeDensity:  float64(edges) / fp,
		Transparency: float64(transparent) / fp,
	}, nil
}

// absDiff returns |a-b| for two 8-bit channel values.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
