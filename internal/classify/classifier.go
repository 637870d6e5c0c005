package classify

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand"

	"github.com/plastiscan/plastiscan/internal/imaging"
	"github.com/plastiscan/plastiscan/internal/material"
)

// Predictor is a learned vision model that votes on the material of an
// image. A nil signal with a nil error means the model declined to vote.
type Predictor interface {
	Predict(ctx context.Context, img image.Image) (*Signal, error)
}

// CodeReader extracts the recycling resin code (the digit inside the
// chasing-arrows triangle) from an image. A nil signal with a nil error
// means no code was found.
type CodeReader interface {
	ReadResinCode(ctx context.Context, img image.Image) (*Signal, error)
}

// Classifier runs the full classification pipeline. All collaborator
// fields are optional: a zero Classifier still classifies using the
// visual heuristics alone.
type Classifier struct {
	// Predictor supplies learned-model votes. Optional.
	Predictor Predictor

	// CodeReader supplies resin-code OCR votes. Optional.
	CodeReader CodeReader

	// Rand jitters filename-match confidence. When nil the fixed
	// deterministic confidence is used.
	Rand *rand.Rand
}

// Classify resolves an image (and optionally its filename) to exactly one
// material result. It never returns an error: every failure degrades to a
// lower-confidence answer so the caller always has something to show.
//
// Two decision paths run over the same visual evidence. The rule-score
// path matches the image profile against per-material visual profiles;
// the additive path accumulates threshold bonuses and folds in external
// votes from the model and the resin-code reader. The higher-confidence
// path wins, and a filename keyword match overrides both when its own
// confidence is higher still.
func (c *Classifier) Classify(ctx context.Context, img image.Image, filename string) *Result {
	match := MatchFilename(filename, c.Rand)

	features, err := imaging.ExtractFeatures(img)
	if err != nil {
		log.Printf("classify: feature extraction failed: %v", err)
		if match != nil {
			return newResult(match.Material, match.Confidence,
				[]string{fmt.Sprintf("filename keyword %q indicates %s", match.Keyword, match.Material)})
		}
		return newResult(material.Other, confidenceFloor,
			[]string{"insufficient visual data"})
	}

	analysis := imaging.Profile(img)
	ruled := classifyFromAnalysis(analysis)

	best := ruled
	if fused := FuseSignals(features, c.collectSignals(ctx, img)); fused.Confidence > best.Confidence {
		best = fused
	}

	if match != nil && match.Confidence > best.Confidence {
		reasoning := append([]string{fmt.Sprintf("filename keyword %q indicates %s", match.Keyword, match.Material)},
			best.Reasoning...)
		return newResult(match.Material, match.Confidence, reasoning)
	}
	return best
}

// collectSignals gathers external votes, logging and skipping any source
// that fails. Vote order does not matter to the additive fusion.
func (c *Classifier) collectSignals(ctx context.Context, img image.Image) []Signal {
	var signals []Signal
	if c.Predictor != nil {
		sig, err := c.Predictor.Predict(ctx, img)
		switch {
		case err != nil:
			log.Printf("classify: model vote unavailable: %v", err)
		case sig != nil:
			signals = append(signals, *sig)
		}
	}
	if c.CodeReader != nil {
		sig, err := c.CodeReader.ReadResinCode(ctx, img)
		switch {
		case err != nil:
			log.Printf("classify: resin code read failed: %v", err)
		case sig != nil:
			signals = append(signals, *sig)
		}
	}
	return signals
}
