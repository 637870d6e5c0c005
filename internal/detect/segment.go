// Package detect finds and classifies multiple plastic objects in one photo.
//
// Detection is two-stage: a cheap edge-density segmentation proposes
// candidate regions, then each region is cropped back out of the source
// image and run through the full classification pipeline. The whole image
// is always classified first, so detection degrades to single-object
// classification on photos the segmenter cannot split.
package detect

import (
	"image"
	"sort"

	"github.com/plastiscan/plastiscan/internal/imaging"
)

// Segmentation works on a fixed-size edge map split into a coarse grid.
// Cells with enough edge activity become candidate regions.
const (
	segmentSize      = 200
	gridCells        = 3
	minRegionDensity = 0.05
	maxRegionConf    = 0.9
)

// Region is a candidate object location in source-image pixel coordinates,
// with a confidence derived from the edge activity inside it.
type Region struct {
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Confidence float64 `json:"confidence"`
}

// SegmentRegions proposes object regions by measuring edge density in each
// cell of a 3×3 grid over a downsampled edge map. Cells below the density
// floor are dropped. If nothing clears the floor (a flat or uniform photo),
// a single centered region covering half the image is returned so the
// detector always has at least one candidate.
//
// Regions are returned most-confident first.
func SegmentRegions(img image.Image) []Region {
	if img == nil || img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil
	}

	em := imaging.BinaryEdgeMap(img, segmentSize)

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	cell := segmentSize / gridCells

	var regions []Region
	for gy := 0; gy < gridCells; gy++ {
		for gx := 0; gx < gridCells; gx++ {
			x0 := gx * cell
			y0 := gy * cell
			x1 := x0 + cell
			y1 := y0 + cell
			if gx == gridCells-1 {
				x1 = segmentSize
			}
			if gy == gridCells-1 {
				y1 = segmentSize
			}

			density := em.Density(x0, y0, x1, y1)
			if density <= minRegionDensity {
				continue
			}

			conf := density * 5
			if conf > maxRegionConf {
				conf = maxRegionConf
			}
			regions = append(regions, Region{
				X1:         x0 * srcW / segmentSize,
				Y1:         y0 * srcH / segmentSize,
				X2:         x1 * srcW / segmentSize,
				Y2:         y1 * srcH / segmentSize,
				Confidence: conf,
			})
		}
	}

	if len(regions) == 0 {
		// Uniform photo: assume one centered object.
		return []Region{{
			X1:         srcW / 4,
			Y1:         srcH / 4,
			X2:         srcW * 3 / 4,
			Y2:         srcH * 3 / 4,
			Confidence: 0.5,
		}}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Confidence > regions[j].Confidence
	})
	return regions
}
