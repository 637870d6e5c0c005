package imaging

import (
	"image/color"
	"testing"
)

func TestBinaryEdgeMap_UniformImageHasNoEdges(t *testing.T) {
	img := createInMemoryImage(200, 200, color.RGBA{120, 120, 120, 255})

	m := BinaryEdgeMap(img, 200)
	if m.Size != 200 {
		t.Fatalf("size: got %d, want 200", m.Size)
	}
	if d := m.Density(0, 0, 200, 200); d != 0 {
		t.Errorf("density: got %v, want 0 for uniform image", d)
	}
}

func TestBinaryEdgeMap_SplitImageHasEdgesAtBoundary(t *testing.T) {
	img := createSplitImage(200, 200, color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255})

	m := BinaryEdgeMap(img, 200)

	// The vertical boundary runs through the middle third.
	middle := m.Density(67, 0, 133, 200)
	left := m.Density(0, 0, 60, 200)
	if middle == 0 {
		t.Error("expected edges in the middle band")
	}
	if left != 0 {
		t.Errorf("left band density: got %v, want 0", left)
	}
}

func TestBinaryEdgeMap_NilImage(t *testing.T) {
	m := BinaryEdgeMap(nil, 50)
	if d := m.Density(0, 0, 50, 50); d != 0 {
		t.Errorf("density: got %v, want 0 for nil image", d)
	}
}

func TestEdgeMap_DensityClampsBounds(t *testing.T) {
	img := createCheckerImage(100, 100, 2)
	m := BinaryEdgeMap(img, 100)

	// Out-of-range rectangles clamp instead of panicking.
	if d := m.Density(-10, -10, 500, 500); d < 0 || d > 1 {
		t.Errorf("clamped density out of range: %v", d)
	}
	if d := m.Density(90, 90, 10, 10); d != 0 {
		t.Errorf("inverted rectangle: got %v, want 0", d)
	}
}
