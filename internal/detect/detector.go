package detect

import (
	"context"
	"image"
	"log"

	"github.com/plastiscan/plastiscan/internal/classify"
	"github.com/plastiscan/plastiscan/internal/imaging"
	"github.com/plastiscan/plastiscan/internal/material"
)

// At most this many segmented regions are classified per photo. Region
// classification is the expensive stage, and real photos rarely hold more
// distinct plastic items than this.
const defaultMaxRegions = 3

// Sub-region classifications below this confidence are discarded; crops
// carry less context than the full photo and produce weaker evidence.
const minObjectConfidence = 0.5

// Detector finds every distinct plastic material in a photo.
type Detector struct {
	// Classifier runs on the full photo and on each candidate region.
	Classifier *classify.Classifier

	// MaxRegions caps how many segmented regions are classified.
	// Zero means the default.
	MaxRegions int
}

// NewDetector builds a detector around the given classifier.
func NewDetector(c *classify.Classifier) *Detector {
	return &Detector{Classifier: c}
}

// Detection is the result of one multi-object pass: the distinct objects
// found and the candidate regions that were considered.
type Detection struct {
	Objects []material.DetectedObject `json:"objects"`
	Regions []Region                  `json:"regions"`
}

// Detect classifies the whole photo, then segments it and classifies the
// strongest candidate regions, collecting one object per distinct material
// found. The whole-photo result always leads the list, so Detect never
// returns an empty object list for a decodable image.
//
// Region failures are logged and skipped; a photo the segmenter cannot
// split still yields the whole-photo object.
func (d *Detector) Detect(ctx context.Context, img image.Image, filename string) *Detection {
	primary := d.Classifier.Classify(ctx, img, filename)
	objects := []material.DetectedObject{primary.Material.Object("", primary.Confidence)}
	seen := map[material.Material]bool{primary.Material: true}

	if img == nil {
		return &Detection{Objects: objects}
	}

	maxRegions := d.MaxRegions
	if maxRegions <= 0 {
		maxRegions = defaultMaxRegions
	}

	regions := SegmentRegions(img)
	candidates := regions
	if len(candidates) > maxRegions {
		candidates = candidates[:maxRegions]
	}

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	for _, r := range candidates {
		// Scale the crop back up so region features are measured at the
		// same resolution as the full photo.
		cropped, err := imaging.CropScaled(img, r.X1, r.Y1, r.X2, r.Y2, srcW, srcH)
		if err != nil {
			log.Printf("detect: skipping region (%d,%d)-(%d,%d): %v", r.X1, r.Y1, r.X2, r.Y2, err)
			continue
		}

		res := d.Classifier.Classify(ctx, cropped, filename)
		if res.Confidence <= minObjectConfidence || seen[res.Material] {
			continue
		}
		seen[res.Material] = true
		objects = append(objects, regionObject(res))
	}

	return &Detection{Objects: objects, Regions: regions}
}

// regionObject labels a sub-region classification so it is distinguishable
// from the whole-photo object in the result list.
func regionObject(res *classify.Result) material.DetectedObject {
	name := res.Material.Info().Name + " (Region)"
	return res.Material.Object(name, res.Confidence)
}
