package imaging

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// Texture is a coarse surface-finish category derived from brightness and
// variance statistics.
type Texture string

const (
	TextureGlossy   Texture = "glossy"
	TextureMatte    Texture = "matte"
	TextureTextured Texture = "textured"
	TextureFoam     Texture = "foam"
)

// Shape is a coarse object-shape category derived from edge statistics and
// color coverage. This is a heuristic bucket, not geometric detection.
type Shape string

const (
	ShapeBottle    Shape = "bottle"
	ShapeBag       Shape = "bag"
	ShapeContainer Shape = "container"
	ShapeTube      Shape = "tube"
	ShapeCup       Shape = "cup"
	ShapeIrregular Shape = "irregular"
)

// ColorShare is one dominant color with the percentage of pixels it covers.
type ColorShare struct {
	R          uint8   `json:"r"`
	G          uint8   `json:"g"`
	B          uint8   `json:"b"`
	Percentage float64 `json:"percentage"` // 0-100
}

// HSV returns the color in HSV space: hue in degrees (0-360), saturation and
// value in [0,1].
func (c ColorShare) HSV() (h, s, v float64) {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return col.Hsv()
}

// Analysis is the profiler's summary of an image: dominant colors, overall
// statistics, and categorical texture and shape. Dominant colors are sorted
// by coverage descending, and their percentages sum to at most 100.
type Analysis struct {
	DominantColors []ColorShare `json:"dominant_colors"`
	Brightness     float64      `json:"brightness"`
	Saturation     float64      `json:"saturation"`
	Transparency   float64      `json:"transparency"`
	Texture        Texture      `json:"texture"`
	Shape          Shape        `json:"shape"`
	EdgeRatio      float64      `json:"edge_ratio"`
	ColorVariance  float64      `json:"color_variance"`
}

const (
	// profileSize is the fixed analysis resolution. Profiling accuracy
	// barely changes above this while cost grows quadratically.
	profileSize = 100

	// profileEdgeThreshold is the diagonal-gradient channel-delta sum
	// above which a pixel counts as an edge during profiling.
	profileEdgeThreshold = 50

	// quantStep is the RGB bucket width for dominant-color grouping.
	quantStep = 32

	maxDominantColors = 5
)

// DefaultAnalysis returns the degraded-mode profile used when an image
// cannot be analyzed: medium brightness and saturation, matte texture,
// irregular shape, no dominant colors. Callers tolerate this instead of a
// failed pipeline.
func DefaultAnalysis() *Analysis {
	return &Analysis{
		Brightness: 0.5,
		Saturation: 0.5,
		Texture:    TextureMatte,
		Shape:      ShapeIrregular,
	}
}

// Profile computes an Analysis from an image. It never fails: a nil or
// zero-sized image yields DefaultAnalysis.
//
// The image is downsampled to a fixed resolution, then a single pass
// accumulates per-bucket color counts (RGB rounded to the nearest 32),
// brightness and saturation sums, a diagonal-gradient edge counter, and
// per-pixel brightness samples for the variance estimate. Texture and shape
// fall out of threshold rules over those statistics.
func Profile(img image.Image) *Analysis {
	if img == nil {
		return DefaultAnalysis()
	}
	srcBounds := img.Bounds()
	if srcBounds.Dx() <= 0 || srcBounds.Dy() <= 0 {
		return DefaultAnalysis()
	}
	aspect := float64(srcBounds.Dx()) / float64(srcBounds.Dy())

	small := imaging.Resize(img, profileSize, profileSize, imaging.Lanczos)
	data := small.Pix
	width := profileSize
	pixels := profileSize * profileSize

	type bucket struct {
		r, g, b uint8
		count   int
	}
	buckets := make(map[uint32]*bucket)

	var totalBrightness, totalSaturation float64
	var edges, transparent int
	brightnessSamples := make([]float64, 0, pixels)

	for i := 0; i < len(data); i += 4 {
		r := data[i]
		g := data[i+1]
		b := data[i+2]
		a := data[i+3]

		max := maxU8(r, g, b)
		min := minU8(r, g, b)

		brightness := float64(int(r)+int(g)+int(b)) / 3 / 255
		totalBrightness += brightness
		brightnessSamples = append(brightnessSamples, brightness)

		var sat float64
		if max > 0 {
			sat = float64(max-min) / float64(max)
		}
		totalSaturation += sat

		if a < 128 || (max > 240 && sat < 0.1) {
			transparent++
		}

		// Quantize to the nearest 32 per channel to group similar colors.
		qr := quantize(r)
		qg := quantize(g)
		qb := quantize(b)
		key := uint32(qr)<<16 | uint32(qg)<<8 | uint32(qb)
		if bk, ok := buckets[key]; ok {
			bk.count++
		} else {
			buckets[key] = &bucket{r: qr, g: qg, b: qb, count: 1}
		}

		// Diagonal gradient against the upper-left neighbor.
		px := (i / 4) % width
		py := (i / 4) / width
		if px > 0 && py > 0 {
			j := i - 4 - width*4
			diff := absDiff(r, data[j]) + absDiff(g, data[j+1]) + absDiff(b, data[j+2])
			if diff > profileEdgeThreshold {
				edges++
			}
		}
	}

	dominant := make([]ColorShare, 0, len(buckets))
	for _, bk := range buckets {
		dominant = append(dominant, ColorShare{
			R:          bk.r,
			G:          bk.g,
			B:          bk.b,
			Percentage: float64(bk.count) / float64(pixels) * 100,
		})
	}
	sort.Slice(dominant, func(i, j int) bool {
		return dominant[i].Percentage > dominant[j].Percentage
	})
	if len(dominant) > maxDominantColors {
		dominant = dominant[:maxDominantColors]
	}

	fp := float64(pixels)
	analysis := &Analysis{
		DominantColors: dominant,
		Brightness:     totalBrightness / fp,
		Saturation:     totalSaturation / fp,
		Transparency:   float64(transparent) / fp,
		EdgeRatio:      float64(edges) / fp,
		ColorVariance:  stat.Variance(brightnessSamples, nil),
	}
	analysis.Texture = classifyTexture(analysis)
	analysis.Shape = classifyShape(analysis, aspect)
	return analysis
}

// classifyTexture buckets surface finish from variance, brightness and
// saturation thresholds.
func classifyTexture(a *Analysis) Texture {
	switch {
	case a.ColorVariance < 0.02 && a.Brightness > 0.8:
		return TextureGlossy
	case a.ColorVariance > 0.1 && a.Brightness > 0.75 && a.Saturation < 0.15:
		return TextureFoam
	case a.ColorVariance > 0.1:
		return TextureTextured
	default:
		return TextureMatte
	}
}

// classifyShape buckets object shape from edge ratio, color coverage and the
// source aspect ratio. Coarse heuristics: a single-color blob reads as a
// container, a flat low-detail frame as a bag, a busy frame as irregular.
func classifyShape(a *Analysis, aspect float64) Shape {
	topCoverage := 0.0
	if len(a.DominantColors) > 0 {
		topCoverage = a.DominantColors[0].Percentage
	}

	switch {
	case aspect > 0 && aspect < 0.2:
		return ShapeTube
	case a.EdgeRatio < 0.1 && a.ColorVariance < 0.05:
		return ShapeBag
	case a.EdgeRatio > 0.3:
		return ShapeIrregular
	case topCoverage > 50:
		return ShapeContainer
	case aspect >= 0.7 && aspect <= 1.0:
		return ShapeCup
	default:
		return ShapeBottle
	}
}

// quantize rounds an 8-bit channel value to the nearest multiple of 32,
// clamped to 255.
func quantize(v uint8) uint8 {
	q := (int(v) + quantStep/2) / quantStep * quantStep
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

func maxU8(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minU8(a, b, c uint8) uint8 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
