package classify

import (
	"math/rand"
	"testing"

	"github.com/plastiscan/plastiscan/internal/material"
)

func TestMatchFilename(t *testing.T) {
	tests := []struct {
		name string
		want material.Material
	}{
		{"aqua_botol_500ml.jpg", material.PET},
		{"Coca-Cola-Bottle.png", material.PET},
		{"milk-jug.webp", material.HDPE},
		{"galon_air.jpg", material.HDPE},
		{"pipa-paralon.jpg", material.PVC},
		{"kantong_kresek.jpg", material.LDPE},
		{"plastic_bag.png", material.LDPE},
		{"sedotan_merah.jpg", material.PP},
		{"styrofoam_box.jpg", material.PS},
		{"gabus.png", material.PS},
	}
	for _, tt := range tests {
		match := MatchFilename(tt.name, nil)
		if match == nil {
			t.Errorf("MatchFilename(%q) = nil, want %s", tt.name, tt.want)
			continue
		}
		if match.Material != tt.want {
			t.Errorf("MatchFilename(%q) = %s, want %s", tt.name, match.Material, tt.want)
		}
		if match.Keyword == "" {
			t.Errorf("MatchFilename(%q) returned empty keyword", tt.name)
		}
	}
}

func TestMatchFilename_NoMatch(t *testing.T) {
	for _, name := range []string{"", "IMG_1234.jpg", "DSC00042.png", "scan.tiff"} {
		if match := MatchFilename(name, nil); match != nil {
			t.Errorf("MatchFilename(%q) = %+v, want nil", name, match)
		}
	}
}

func TestMatchFilename_FixedConfidenceWithoutRand(t *testing.T) {
	match := MatchFilename("botol.jpg", nil)
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Confidence != filenameConfFixed {
		t.Errorf("Confidence = %v, want %v", match.Confidence, filenameConfFixed)
	}
}

func TestMatchFilename_JitterStaysInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		match := MatchFilename("botol.jpg", rng)
		if match == nil {
			t.Fatal("expected a match")
		}
		if match.Confidence < filenameConfLow || match.Confidence > filenameConfHigh {
			t.Fatalf("Confidence = %v, want within [%v, %v]",
				match.Confidence, filenameConfLow, filenameConfHigh)
		}
	}
}
