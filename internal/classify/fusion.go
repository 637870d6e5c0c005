package classify

import (
	"fmt"

	"github.com/plastiscan/plastiscan/internal/imaging"
	"github.com/plastiscan/plastiscan/internal/material"
)

// Result is one material classification with its confidence and the
// reasoning trail explaining which signals contributed. Results are
// immutable once created and are not persisted by this package.
type Result struct {
	Material   material.Material `json:"material"`
	Confidence float64           `json:"confidence"`
	Reasoning  []string          `json:"reasoning"`
}

// Confidence floor and ceiling for every reported result.
const (
	confidenceFloor   = 0.40
	confidenceCeiling = 0.95
)

// newResult clamps the confidence into the reporting band and builds the
// immutable result value.
func newResult(mat material.Material, confidence float64, reasoning []string) *Result {
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}
	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}
	return &Result{Material: mat, Confidence: confidence, Reasoning: reasoning}
}

// Signal is one external classification vote (learned vision model,
// resin-code OCR). Votes are advisory: fusion weights them so a single
// wrong vote cannot deterministically override strong visual evidence.
type Signal struct {
	Material   material.Material
	Confidence float64
	Source     string
}

// Additive fusion tuning. Visual threshold bonuses mirror the heuristic
// rules the profiles encode; vote folding is soft-competitive.
const (
	voteOwnWeight     = 0.5
	votePenaltyWeight = 0.1
	nonPlasticBonus   = 0.6
)

// FuseSignals runs additive fusion: all material scores start at zero,
// fixed bonuses are added when visual-feature thresholds are crossed, then
// each external vote adds confidence×0.5 to its own material and subtracts
// confidence×0.1 from every other. A NON_PLASTIC vote above 0.8 confidence
// earns a large extra bonus since the model is far better than the visual
// heuristics at telling plastic from everything else.
//
// The winning material is the highest final score, ties resolved by
// declaration order; confidence is the winning score clamped into
// [0.40, 0.95].
func FuseSignals(f *imaging.VisualFeatures, signals []Signal) *Result {
	scores := make(map[material.Material]float64, len(material.All()))
	for _, m := range material.All() {
		scores[m] = 0
	}

	var reasoning []string

	if f != nil {
		if f.Transparency > 0.45 {
			scores[material.PET] += 0.4
			scores[material.PP] += 0.2
			reasoning = append(reasoning, "transparent object detected")
		}
		if f.EdgeDensity < 0.25 && f.Contrast < 0.3 {
			scores[material.LDPE] += 0.45
			reasoning = append(reasoning, "thin flexible surface")
		}
		if f.EdgeDensity > 0.6 {
			scores[material.HDPE] += 0.4
			reasoning = append(reasoning, "rigid thick structure")
		}
		if f.Saturation < 0.15 && f.Contrast < 0.2 {
			scores[material.PS] += 0.5
			reasoning = append(reasoning, "styrofoam-like characteristics")
		}
	}

	for _, sig := range signals {
		reasoning = append(reasoning, fmt.Sprintf("%s indicates %s (%.0f%%)",
			sig.Source, sig.Material, sig.Confidence*100))

		scores[sig.Material] += sig.Confidence * voteOwnWeight
		for _, m := range material.All() {
			if m != sig.Material {
				scores[m] -= sig.Confidence * votePenaltyWeight
			}
		}

		if sig.Material == material.NonPlastic && sig.Confidence > 0.8 {
			scores[material.NonPlastic] += nonPlasticBonus
			reasoning = append(reasoning, "object is most likely not plastic")
		}
	}

	winner := material.PET
	best := scores[winner]
	for _, m := range material.All()[1:] {
		if scores[m] > best { // strict: earlier declaration wins ties
			best = scores[m]
			winner = m
		}
	}

	return newResult(winner, best, reasoning)
}
