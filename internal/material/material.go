package material

// Material identifies one of the recognized plastic (or non-plastic)
// classification buckets. The declaration order is significant: when fused
// scores tie exactly, the material declared first wins, and scoring loops
// iterate in this order via All().
type Material int

const (
	PET Material = iota // Polyethylene terephthalate (resin code 1)
	HDPE
	PVC
	LDPE
	PP
	PS
	NonPlastic
	Other
)

// All returns every material in declaration order.
func All() []Material {
	return []Material{PET, HDPE, PVC, LDPE, PP, PS, NonPlastic, Other}
}

// String returns the short label used in results and model prompts.
func (m Material) String() string {
	switch m {
	case PET:
		return "PET"
	case HDPE:
		return "HDPE"
	case PVC:
		return "PVC"
	case LDPE:
		return "LDPE"
	case PP:
		return "PP"
	case PS:
		return "PS"
	case NonPlastic:
		return "NON_PLASTIC"
	case Other:
		return "OTHER"
	}
	return "OTHER"
}

// Parse maps a label back to its Material. Matching is exact on the labels
// produced by String plus a few aliases returned by vision models.
// The second return value reports whether the label was recognized.
func Parse(label string) (Material, bool) {
	switch label {
	case "PET":
		return PET, true
	case "HDPE":
		return HDPE, true
	case "PVC":
		return PVC, true
	case "LDPE":
		return LDPE, true
	case "PP":
		return PP, true
	case "PS", "STYROFOAM":
		return PS, true
	case "NON_PLASTIC", "NON-PLASTIC", "NONPLASTIC":
		return NonPlastic, true
	case "OTHER":
		return Other, true
	}
	return Other, false
}

// FromCode maps a resin identification code digit ("1".."7") to its
// Material. Unknown codes report false.
func FromCode(code string) (Material, bool) {
	switch code {
	case "1":
		return PET, true
	case "2":
		return HDPE, true
	case "3":
		return PVC, true
	case "4":
		return LDPE, true
	case "5":
		return PP, true
	case "6":
		return PS, true
	case "7":
		return Other, true
	}
	return Other, false
}

// Risk is the baseline microplastic risk tier of a material.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// Info is the static metadata record for a material. One record exists per
// Material; records are immutable reference data.
type Info struct {
	Name              string `json:"name"`               // Default object name shown to users
	PlasticType       string `json:"plastic_type"`       // Full type label, e.g. "PET (Polyethylene Terephthalate)"
	PlasticCode       string `json:"plastic_code"`       // Resin identification code, "1".."7" ("0" for non-plastic)
	DecompositionTime string `json:"decomposition_time"` // Human-readable decomposition band
	MicroplasticRisk  Risk   `json:"microplastic_risk"`
	EcoAlternative    string `json:"eco_alternative"`
	Description       string `json:"description"`
}

var infoTable = map[Material]Info{
	PET: {
		Name:              "PET Plastic Bottle",
		PlasticType:       "PET (Polyethylene Terephthalate)",
		PlasticCode:       "1",
		DecompositionTime: "450 years",
		MicroplasticRisk:  RiskHigh,
		EcoAlternative:    "Stainless steel or glass bottles",
		Description:       "PET is commonly used for beverage bottles. Recognizable by recycling code #1.",
	},
	HDPE: {
		Name:              "HDPE Plastic Container",
		PlasticType:       "HDPE (High-Density Polyethylene)",
		PlasticCode:       "2",
		DecompositionTime: "500 years",
		MicroplasticRisk:  RiskMedium,
		EcoAlternative:    "Glass or stainless steel containers",
		Description:       "HDPE is used for milk jugs and detergent bottles. Safer than PET.",
	},
	PVC: {
		Name:              "PVC Pipe or Product",
		PlasticType:       "PVC (Polyvinyl Chloride)",
		PlasticCode:       "3",
		DecompositionTime: "1000+ years",
		MicroplasticRisk:  RiskHigh,
		EcoAlternative:    "Metal pipes or natural materials",
		Description:       "PVC is highly hazardous when burned, releasing dioxins.",
	},
	LDPE: {
		Name:              "Plastic Bag",
		PlasticType:       "LDPE (Low-Density Polyethylene)",
		PlasticCode:       "4",
		DecompositionTime: "500 years",
		MicroplasticRisk:  RiskMedium,
		EcoAlternative:    "Cloth or biodegradable bags",
		Description:       "LDPE is used for plastic bags and wraps. Difficult to recycle.",
	},
	PP: {
		Name:              "Polypropylene Product",
		PlasticType:       "PP (Polypropylene)",
		PlasticCode:       "5",
		DecompositionTime: "500 years",
		MicroplasticRisk:  RiskMedium,
		EcoAlternative:    "Glass or bamboo containers",
		Description:       "PP is used for straws, bottle caps and hot-food containers.",
	},
	PS: {
		Name:              "Styrofoam",
		PlasticType:       "PS (Polystyrene/Styrofoam)",
		PlasticCode:       "6",
		DecompositionTime: "500-1000 years",
		MicroplasticRisk:  RiskHigh,
		EcoAlternative:    "Paper or leaf-based containers",
		Description:       "Styrofoam is very hazardous; it fragments easily into microplastics.",
	},
	NonPlastic: {
		Name:              "Non-Plastic Item",
		PlasticType:       "Non-Plastic Material",
		PlasticCode:       "0",
		DecompositionTime: "Varies",
		MicroplasticRisk:  RiskLow,
		EcoAlternative:    "Already an eco-friendlier material",
		Description:       "The detected object does not appear to be plastic.",
	},
	Other: {
		Name:              "Mixed Plastic",
		PlasticType:       "Other (Mixed Plastics)",
		PlasticCode:       "7",
		DecompositionTime: "Unknown",
		MicroplasticRisk:  RiskHigh,
		EcoAlternative:    "Avoid use where possible",
		Description:       "Code #7 plastics are mixtures of several resins and hard to recycle.",
	},
}

// Info returns the static metadata record for the material.
func (m Material) Info() Info {
	if info, ok := infoTable[m]; ok {
		return info
	}
	return infoTable[Other]
}

// DetectedObject is the external-facing union of a classification result and
// its static metadata. It is the contract handed to callers; the core keeps
// no state of its own beyond this value.
type DetectedObject struct {
	Name              string  `json:"name"`
	PlasticType       string  `json:"plastic_type"`
	PlasticCode       string  `json:"plastic_code"`
	DecompositionTime string  `json:"decomposition_time"`
	MicroplasticRisk  Risk    `json:"microplastic_risk"`
	EcoAlternative    string  `json:"eco_alternative"`
	Description       string  `json:"description"`
	Confidence        float64 `json:"confidence"`
}

// Object builds a DetectedObject for the material. An empty name falls back
// to the material's default display name.
func (m Material) Object(name string, confidence float64) DetectedObject {
	info := m.Info()
	if name == "" {
		name = info.Name
	}
	return DetectedObject{
		Name:              name,
		PlasticType:       info.PlasticType,
		PlasticCode:       info.PlasticCode,
		DecompositionTime: info.DecompositionTime,
		MicroplasticRisk:  info.MicroplasticRisk,
		EcoAlternative:    info.EcoAlternative,
		Description:       info.Description,
		Confidence:        confidence,
	}
}
