package ecoscore

import (
	"testing"

	"github.com/plastiscan/plastiscan/internal/material"
)

func TestCompute_PerMaterial(t *testing.T) {
	tests := []struct {
		mat  material.Material
		want int
	}{
		// base − risk − decomposition (confidence 0.9: no penalty)
		{material.PET, 25},        // 60 − 30 − 5
		{material.HDPE, 45},       // 70 − 15 − 10
		{material.PVC, 0},         // 20 − 30 − 20 → clamped
		{material.LDPE, 25},       // 50 − 15 − 10
		{material.PP, 45},         // 70 − 15 − 10
		{material.PS, 0},          // 10 − 30 − 20 → clamped
		{material.NonPlastic, 90}, // 90 − 0 − 0
		{material.Other, 0},       // 30 − 30 − 0
	}
	for _, tt := range tests {
		got := Compute(tt.mat.Object("", 0.9))
		if got.Value != tt.want {
			t.Errorf("Compute(%s) = %d, want %d", tt.mat, got.Value, tt.want)
		}
	}
}

func TestCompute_ConfidencePenalty(t *testing.T) {
	high := Compute(material.HDPE.Object("", 0.9))
	mid := Compute(material.HDPE.Object("", 0.65))
	low := Compute(material.HDPE.Object("", 0.5))

	if mid.Value != high.Value-5 {
		t.Errorf("mid confidence = %d, want %d", mid.Value, high.Value-5)
	}
	if low.Value != high.Value-10 {
		t.Errorf("low confidence = %d, want %d", low.Value, high.Value-10)
	}
}

func TestCompute_BoundsAndLevels(t *testing.T) {
	for _, mat := range material.All() {
		for _, conf := range []float64{0.4, 0.65, 0.95} {
			s := Compute(mat.Object("", conf))
			if s.Value < 0 || s.Value > 100 {
				t.Errorf("Compute(%s, %v) = %d, out of [0,100]", mat, conf, s.Value)
			}
			want := levelOf(s.Value)
			if s.Level != want {
				t.Errorf("Compute(%s, %v) level = %s, want %s", mat, conf, s.Level, want)
			}
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		value int
		want  Level
	}{
		{0, LevelPoor},
		{39, LevelPoor},
		{40, LevelReduce},
		{64, LevelReduce},
		{65, LevelBetter},
		{100, LevelBetter},
	}
	for _, tt := range tests {
		if got := levelOf(tt.value); got != tt.want {
			t.Errorf("levelOf(%d) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	objects := []material.DetectedObject{
		material.NonPlastic.Object("", 0.9), // 90
		material.HDPE.Object("", 0.9),       // 45
	}
	got := Average(objects)
	if got.Value != 67 {
		t.Errorf("Average = %d, want 67", got.Value)
	}
	if got.Level != LevelBetter {
		t.Errorf("Level = %s, want %s", got.Level, LevelBetter)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want mean 0.9", got.Confidence)
	}
	if got.Explanation == "" {
		t.Error("Explanation missing on average score")
	}
}

func TestAverage_Empty(t *testing.T) {
	got := Average(nil)
	if got.Value != 50 || got.Level != LevelReduce {
		t.Errorf("Average(nil) = %+v, want neutral 50/%s", got, LevelReduce)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 with no objects", got.Confidence)
	}
	if got.Explanation == "" {
		t.Error("Explanation missing on empty average")
	}
}

func TestCompute_CarriesConfidenceAndExplanation(t *testing.T) {
	for _, conf := range []float64{0.5, 0.82, 0.95} {
		s := Compute(material.PET.Object("", conf))
		if s.Confidence != conf {
			t.Errorf("Confidence = %v, want %v passed through", s.Confidence, conf)
		}
		if s.Explanation != explanationOf(s.Level) {
			t.Errorf("Explanation does not match level %s: %q", s.Level, s.Explanation)
		}
	}
}

// Holding material and confidence fixed, raising the risk tier must never
// raise the score.
func TestCompute_RiskMonotonicity(t *testing.T) {
	obj := material.HDPE.Object("", 0.9)

	obj.MicroplasticRisk = material.RiskLow
	low := Compute(obj).Value
	obj.MicroplasticRisk = material.RiskMedium
	mid := Compute(obj).Value
	obj.MicroplasticRisk = material.RiskHigh
	high := Compute(obj).Value

	if low < mid || mid < high {
		t.Errorf("risk monotonicity violated: low %d, medium %d, high %d", low, mid, high)
	}
}

// Riskier materials must never outscore cleaner ones at equal confidence.
func TestCompute_Ordering(t *testing.T) {
	nonPlastic := Compute(material.NonPlastic.Object("", 0.9)).Value
	hdpe := Compute(material.HDPE.Object("", 0.9)).Value
	ps := Compute(material.PS.Object("", 0.9)).Value

	if !(nonPlastic > hdpe && hdpe > ps) {
		t.Errorf("ordering violated: non-plastic %d, HDPE %d, PS %d", nonPlastic, hdpe, ps)
	}
}
