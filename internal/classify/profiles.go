package classify

import (
	"fmt"
	"sort"

	"github.com/plastiscan/plastiscan/internal/imaging"
	"github.com/plastiscan/plastiscan/internal/material"
)

// hueBand is a coarse named region of the color wheel (plus the
// achromatic bands) used to match dominant colors against material
// expectations.
type hueBand string

const (
	bandWhite   hueBand = "white"
	bandBlack   hueBand = "black"
	bandGray    hueBand = "gray"
	bandRed     hueBand = "red"
	bandOrange  hueBand = "orange"
	bandYellow  hueBand = "yellow"
	bandGreen   hueBand = "green"
	bandCyan    hueBand = "cyan"
	bandBlue    hueBand = "blue"
	bandMagenta hueBand = "magenta"
	bandBrown   hueBand = "brown"
)

// bandOf buckets a dominant color into a hue band via HSV.
func bandOf(c imaging.ColorShare) hueBand {
	h, s, v := c.HSV()
	switch {
	case v < 0.15:
		return bandBlack
	case s < 0.15 && v > 0.85:
		return bandWhite
	case s < 0.15:
		return bandGray
	}
	// Browns are dark desaturated oranges.
	if h >= 15 && h < 50 && v < 0.6 {
		return bandBrown
	}
	switch {
	case h < 15 || h >= 330:
		return bandRed
	case h < 45:
		return bandOrange
	case h < 70:
		return bandYellow
	case h < 165:
		return bandGreen
	case h < 200:
		return bandCyan
	case h < 260:
		return bandBlue
	default:
		return bandMagenta
	}
}

// span is an inclusive [Lo,Hi] value range.
type span struct {
	Lo, Hi float64
}

func (s span) contains(v float64) bool {
	return v >= s.Lo && v <= s.Hi
}

// visualProfile describes the visual statistics a material is expected to
// exhibit. Scoring is a weighted sum of matched expectations, scaled by the
// profile's own base confidence factor.
type visualProfile struct {
	mat          material.Material
	brightness   span
	saturation   span
	transparency span
	textures     []imaging.Texture
	shapes       []imaging.Shape
	hues         map[hueBand]float64 // band -> pattern weight in (0,1]
	base         float64
}

// Component weights of the rule score. They sum to 1.0 when every
// expectation matches at full pattern weight.
const (
	weightBrightness   = 0.15
	weightSaturation   = 0.15
	weightTransparency = 0.20
	weightTexture      = 0.20
	weightShape        = 0.15
	weightHue          = 0.15
)

// ruleScoreMinimum is the score below which no profile is trusted and the
// hard-coded default rules take over.
const ruleScoreMinimum = 0.3

// Profiles for the seven classifiable buckets (Other carries no profile:
// it is only ever reached through explicit votes or fallback). Ranges and
// hue patterns encode common packaging appearance: clear blue-tinted
// bottles are PET, white foam is PS, dark flat film is LDPE, and so on.
// Note the transparency expectations account for the extractor's
// white-and-desaturated faux-transparency heuristic.
var visualProfiles = []visualProfile{
	{
		mat:          material.PET,
		brightness:   span{0.40, 0.90},
		saturation:   span{0.00, 0.40},
		transparency: span{0.40, 1.00},
		textures:     []imaging.Texture{imaging.TextureGlossy},
		shapes:       []imaging.Shape{imaging.ShapeBottle, imaging.ShapeTube},
		hues:         map[hueBand]float64{bandBlue: 1.0, bandCyan: 0.9, bandGreen: 0.9, bandWhite: 0.6},
		base:         0.80,
	},
	{
		mat:          material.HDPE,
		brightness:   span{0.30, 0.90},
		saturation:   span{0.00, 0.60},
		transparency: span{0.00, 0.50},
		textures:     []imaging.Texture{imaging.TextureMatte, imaging.TextureGlossy},
		shapes:       []imaging.Shape{imaging.ShapeContainer, imaging.ShapeBottle},
		hues:         map[hueBand]float64{bandWhite: 0.8, bandBlue: 0.7, bandYellow: 0.6},
		base:         0.75,
	},
	{
		mat:          material.PVC,
		brightness:   span{0.20, 0.70},
		saturation:   span{0.00, 0.50},
		transparency: span{0.00, 0.30},
		textures:     []imaging.Texture{imaging.TextureMatte},
		shapes:       []imaging.Shape{imaging.ShapeTube, imaging.ShapeContainer},
		hues:         map[hueBand]float64{bandGray: 0.9, bandWhite: 0.6, bandBlack: 0.5},
		base:         0.70,
	},
	{
		mat:          material.LDPE,
		brightness:   span{0.20, 0.80},
		saturation:   span{0.00, 0.50},
		transparency: span{0.10, 0.60},
		textures:     []imaging.Texture{imaging.TextureMatte},
		shapes:       []imaging.Shape{imaging.ShapeBag},
		hues:         map[hueBand]float64{bandBlack: 0.8, bandGray: 0.6, bandYellow: 0.6, bandWhite: 0.5, bandRed: 0.4},
		base:         0.70,
	},
	{
		mat:          material.PP,
		brightness:   span{0.30, 0.90},
		saturation:   span{0.20, 1.00},
		transparency: span{0.00, 0.60},
		textures:     []imaging.Texture{imaging.TextureGlossy, imaging.TextureMatte},
		shapes:       []imaging.Shape{imaging.ShapeCup, imaging.ShapeContainer, imaging.ShapeTube},
		hues:         map[hueBand]float64{bandRed: 0.9, bandOrange: 0.8, bandYellow: 0.7, bandGreen: 0.6},
		base:         0.75,
	},
	{
		mat:          material.PS,
		brightness:   span{0.75, 1.00},
		saturation:   span{0.00, 0.15},
		transparency: span{0.50, 1.00},
		textures:     []imaging.Texture{imaging.TextureFoam, imaging.TextureGlossy},
		shapes:       []imaging.Shape{imaging.ShapeIrregular, imaging.ShapeContainer, imaging.ShapeBag, imaging.ShapeCup},
		hues:         map[hueBand]float64{bandWhite: 1.0},
		base:         0.85,
	},
	{
		mat:          material.NonPlastic,
		brightness:   span{0.10, 0.60},
		saturation:   span{0.30, 1.00},
		transparency: span{0.00, 0.20},
		textures:     []imaging.Texture{imaging.TextureTextured},
		shapes:       []imaging.Shape{imaging.ShapeIrregular},
		hues:         map[hueBand]float64{bandBrown: 0.9, bandGreen: 0.7},
		base:         0.60,
	},
}

// ProfileScore is one material's rule score against an Analysis.
type ProfileScore struct {
	Material material.Material `json:"material"`
	Score    float64           `json:"score"`
}

// scoreProfile computes the weighted rule score of one profile against an
// Analysis, returning the score and the reasoning lines for matched
// expectations.
func scoreProfile(p visualProfile, a *imaging.Analysis) (float64, []string) {
	var score float64
	var reasons []string

	if p.brightness.contains(a.Brightness) {
		score += weightBrightness
	}
	if p.saturation.contains(a.Saturation) {
		score += weightSaturation
	}
	if p.transparency.contains(a.Transparency) {
		score += weightTransparency
		if a.Transparency >= 0.4 {
			reasons = append(reasons, fmt.Sprintf("transparency %.0f%% fits %s", a.Transparency*100, p.mat))
		}
	}
	for _, tex := range p.textures {
		if a.Texture == tex {
			score += weightTexture
			reasons = append(reasons, fmt.Sprintf("%s surface fits %s", a.Texture, p.mat))
			break
		}
	}
	for _, shape := range p.shapes {
		if a.Shape == shape {
			score += weightShape
			reasons = append(reasons, fmt.Sprintf("%s-like shape fits %s", a.Shape, p.mat))
			break
		}
	}

	// Hue pattern: the best-weighted band among the top dominant colors.
	best := 0.0
	limit := len(a.DominantColors)
	if limit > 3 {
		limit = 3
	}
	for _, c := range a.DominantColors[:limit] {
		if w, ok := p.hues[bandOf(c)]; ok && w > best {
			best = w
		}
	}
	if best > 0 {
		score += weightHue * best
	}

	return score * p.base, reasons
}

// ScoreProfiles runs rule-score fusion: every material profile is scored
// against the Analysis and the ranked list is returned, sorted descending
// with ties broken by material declaration order.
func ScoreProfiles(a *imaging.Analysis) []ProfileScore {
	scores := make([]ProfileScore, 0, len(visualProfiles))
	for _, p := range visualProfiles {
		s, _ := scoreProfile(p, a)
		scores = append(scores, ProfileScore{Material: p.mat, Score: s})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// classifyFromAnalysis is the rule-score decision path. If no profile
// clears the minimum score, a small set of hard-coded defaults picks a
// capped-confidence best guess so a result is always produced.
func classifyFromAnalysis(a *imaging.Analysis) *Result {
	var (
		bestScore   = -1.0
		bestMat     = material.PP
		bestReasons []string
	)
	for _, p := range visualProfiles {
		s, reasons := scoreProfile(p, a)
		if s > bestScore { // strict: earlier declaration wins ties
			bestScore = s
			bestMat = p.mat
			bestReasons = reasons
		}
	}

	if bestScore >= ruleScoreMinimum {
		return newResult(bestMat, bestScore, bestReasons)
	}

	// Default rules, most-distinctive first, with capped confidence.
	switch {
	case a.Texture == imaging.TextureFoam:
		return newResult(material.PS, 0.50, []string{"defaulting to PS: foam-like surface"})
	case a.Transparency > 0.45:
		return newResult(material.PET, 0.50, []string{"defaulting to PET: largely transparent"})
	case a.Shape == imaging.ShapeBag:
		return newResult(material.LDPE, 0.45, []string{"defaulting to LDPE: bag-like shape"})
	default:
		return newResult(material.PP, 0.45, []string{"defaulting to PP: no profile matched"})
	}
}
