package material

import "testing"

func TestAll_OrderAndCompleteness(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("All() returned %d materials, want 8", len(all))
	}
	if all[0] != PET {
		t.Errorf("first material: got %v, want PET", all[0])
	}
	// Every material must have a metadata record.
	for _, m := range all {
		info := m.Info()
		if info.PlasticType == "" || info.PlasticCode == "" {
			t.Errorf("%v: incomplete metadata record: %+v", m, info)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, m := range All() {
		got, ok := Parse(m.String())
		if !ok {
			t.Errorf("Parse(%q) not recognized", m.String())
		}
		if got != m {
			t.Errorf("Parse(%q): got %v, want %v", m.String(), got, m)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, ok := Parse("cardboard"); ok {
		t.Error("Parse accepted an unknown label")
	}
}

func TestFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Material
		ok   bool
	}{
		{"1", PET, true},
		{"2", HDPE, true},
		{"3", PVC, true},
		{"4", LDPE, true},
		{"5", PP, true},
		{"6", PS, true},
		{"7", Other, true},
		{"8", Other, false},
		{"", Other, false},
	}

	for _, tt := range tests {
		got, ok := FromCode(tt.code)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromCode(%q): got (%v,%v), want (%v,%v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestObject_DefaultName(t *testing.T) {
	obj := PET.Object("", 0.8)
	if obj.Name != "PET Plastic Bottle" {
		t.Errorf("default name: got %q", obj.Name)
	}
	if obj.PlasticCode != "1" {
		t.Errorf("plastic code: got %q, want 1", obj.PlasticCode)
	}
	if obj.Confidence != 0.8 {
		t.Errorf("confidence: got %v, want 0.8", obj.Confidence)
	}

	named := LDPE.Object("Shopping Bag", 0.6)
	if named.Name != "Shopping Bag" {
		t.Errorf("explicit name: got %q", named.Name)
	}
}
