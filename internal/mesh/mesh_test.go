package mesh

import (
	"testing"

	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

func TestSphereInvariants(t *testing.T) {
	const radius = 2.5
	m := Sphere(radius, 16, 16)

	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
	}

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range at %d", idx, i)
		}
	}

	for i, v := range m.Vertices {
		if r := v.Position.Len(); math32.Abs(r-radius) > 1e-4 {
			t.Fatalf("vertex %d at distance %v, want %v", i, r, radius)
		}
		if l := v.Normal.Len(); math32.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %v", i, l)
		}
		// Normals point outward.
		if v.Position.Normalize().Dot(v.Normal) < 0.99 {
			t.Fatalf("vertex %d normal not radial", i)
		}
	}

	// Poles are present.
	if m.Vertices[0].Position[1] != radius {
		t.Fatal("missing north pole")
	}
	if m.Vertices[len(m.Vertices)-1].Position[1] != -radius {
		t.Fatal("missing south pole")
	}
}

func TestRingInvariants(t *testing.T) {
	const inner, outer = 1.2, 2.3
	m := Ring(inner, outer, 32)

	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range at %d", idx, i)
		}
	}

	for i, v := range m.Vertices {
		if v.Position[1] != 0 {
			t.Fatalf("vertex %d off the XZ plane: %v", i, v.Position)
		}
		if v.Normal != (mathutil.Vec3{0, 1, 0}) {
			t.Fatalf("vertex %d normal %v, want +Y", i, v.Normal)
		}
		r := math32.Hypot(v.Position[0], v.Position[2])
		if r < inner-1e-4 || r > outer+1e-4 {
			t.Fatalf("vertex %d radius %v outside [%v, %v]", i, r, inner, outer)
		}
	}
}
