// Package ecoscore rates detected objects on a 0-100 environmental scale.
//
// The score starts from a per-resin base reflecting how recyclable the
// material is in practice, then subtracts penalties for microplastic risk,
// decomposition time, and shaky classification confidence. Higher is
// better; a reusable steel bottle would score near 100, a styrofoam cup
// near zero.
package ecoscore

import (
	"strings"

	"github.com/plastiscan/plastiscan/internal/material"
)

// Level buckets a score for display.
type Level string

const (
	LevelPoor   Level = "poor"
	LevelReduce Level = "needs reduction"
	LevelBetter Level = "better choice"
)

// Score is the eco rating of one detected object. Confidence carries
// the classification confidence the rating was computed from, so a
// caller can tell a solid "poor" from a shaky one.
type Score struct {
	Value       int     `json:"value"`
	Level       Level   `json:"level"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
}

// Base scores per resin code. Widely recycled resins (PET, HDPE, PP)
// start high; resins with no real recycling path (PS, PVC) start low.
// Code 0 is non-plastic.
var baseByCode = map[string]int{
	"0": 90,
	"1": 60,
	"2": 70,
	"3": 20,
	"4": 50,
	"5": 70,
	"6": 10,
	"7": 30,
}

const defaultBase = 30

// Compute rates one detected object.
//
// Penalties stack: microplastic risk costs up to 30 points, decomposition
// bands cost 5-20, and low classification confidence costs up to 10 since
// an uncertain identification should not earn the cleaner material's full
// score.
func Compute(obj material.DetectedObject) Score {
	value, ok := baseByCode[obj.PlasticCode]
	if !ok {
		value = defaultBase
	}

	switch obj.MicroplasticRisk {
	case material.RiskMedium:
		value -= 15
	case material.RiskHigh:
		value -= 30
	}

	decomp := obj.DecompositionTime
	switch {
	case strings.Contains(decomp, "1000"):
		value -= 20
	case strings.Contains(decomp, "500"):
		value -= 10
	case strings.Contains(decomp, "450"):
		value -= 5
	}

	switch {
	case obj.Confidence < 0.6:
		value -= 10
	case obj.Confidence < 0.7:
		value -= 5
	}

	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	level := levelOf(value)
	return Score{
		Value:       value,
		Level:       level,
		Explanation: explanationOf(level),
		Confidence:  obj.Confidence,
	}
}

// Average rates a whole detection: the mean of the per-object scores and
// confidences, rounded down. An empty detection rates a neutral 50 with
// zero confidence.
func Average(objects []material.DetectedObject) Score {
	if len(objects) == 0 {
		return Score{
			Value:       50,
			Level:       LevelReduce,
			Explanation: "No objects were detected to rate.",
		}
	}
	total := 0
	confidence := 0.0
	for _, obj := range objects {
		s := Compute(obj)
		total += s.Value
		confidence += s.Confidence
	}
	value := total / len(objects)
	level := levelOf(value)
	return Score{
		Value:       value,
		Level:       level,
		Explanation: averageExplanationOf(level),
		Confidence:  confidence / float64(len(objects)),
	}
}

func explanationOf(level Level) string {
	switch level {
	case LevelPoor:
		return "This plastic is highly harmful to the environment. It decomposes extremely slowly and carries a high microplastic risk, so avoid it where possible."
	case LevelReduce:
		return "This plastic has a substantial environmental footprint. Even where recycling exists, cut back on it and look for friendlier alternatives."
	default:
		return "This plastic is relatively safer than other resins. It still needs proper recycling, and a non-plastic substitute is better when one is available."
	}
}

func averageExplanationOf(level Level) string {
	switch level {
	case LevelPoor:
		return "The detected plastics have a damaging overall environmental impact."
	case LevelReduce:
		return "Use of the detected plastics should be reduced to limit their environmental impact."
	default:
		return "The detected plastics are relatively safer, but they still need proper handling."
	}
}

func levelOf(value int) Level {
	switch {
	case value < 40:
		return LevelPoor
	case value < 65:
		return LevelReduce
	default:
		return LevelBetter
	}
}
