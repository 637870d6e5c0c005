package classify

import (
	"math/rand"
	"strings"

	"github.com/plastiscan/plastiscan/internal/material"
)

// FilenameMatch is the result of matching a user-supplied filename against
// the keyword rules.
type FilenameMatch struct {
	Material   material.Material `json:"material"`
	Confidence float64           `json:"confidence"`
	Keyword    string            `json:"keyword"`
}

// filenameRule maps a keyword set to a material. Rules are evaluated in
// order and the first matching keyword wins, so the list is authored
// most-specific-first.
type filenameRule struct {
	keywords []string
	mat      material.Material
}

// Keyword lists mix Indonesian and English photo-naming habits observed in
// real uploads (brand names included: water brands indicate PET bottles).
var filenameRules = []filenameRule{
	{[]string{"botol", "aqua", "sprite", "coca", "fanta", "mineral", "pet", "bottle"}, material.PET},
	{[]string{"galon", "jerigen", "hdpe", "susu", "deterjen", "detergent", "milk"}, material.HDPE},
	{[]string{"pipa", "pvc", "vinyl", "selang", "pipe"}, material.PVC},
	{[]string{"kresek", "kantong", "wrap", "ldpe", "bag"}, material.LDPE},
	{[]string{"sedotan", "straw", "tutup", "gelas", "cup", "cap", "pp"}, material.PP},
	{[]string{"styro", "foam", "gabus", "styrofoam", "busa", "ps"}, material.PS},
}

const (
	filenameConfLow   = 0.75
	filenameConfHigh  = 0.90
	filenameConfFixed = 0.82 // used when no jitter source is injected
)

// MatchFilename keyword-matches a filename against the per-material rules.
//
// The name is lowercased and separators are normalized before matching;
// matching is substring-based, so "aqua_botol_500ml.jpg" hits the PET rule.
// An empty name or no matching keyword returns nil.
//
// The original heuristic added random jitter to the confidence to simulate
// natural variation. Here the jitter source is injected: with a nil rng the
// match carries a fixed confidence, keeping the default path deterministic;
// a non-nil rng restores a uniform draw over the rule's confidence band.
func MatchFilename(name string, rng *rand.Rand) *FilenameMatch {
	if name == "" {
		return nil
	}
	normalized := strings.ToLower(name)
	for _, sep := range []string{"-", "_", "."} {
		normalized = strings.ReplaceAll(normalized, sep, " ")
	}

	for _, rule := range filenameRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				conf := filenameConfFixed
				if rng != nil {
					conf = filenameConfLow + rng.Float64()*(filenameConfHigh-filenameConfLow)
				}
				return &FilenameMatch{
					Material:   rule.mat,
					Confidence: conf,
					Keyword:    keyword,
				}
			}
		}
	}
	return nil
}
