package shader

import (
	"testing"

	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

func TestPerlinNoiseDeterministic(t *testing.T) {
	for _, p := range [][3]float32{{0.1, 0.2, 0.3}, {5.5, -2.1, 7.9}, {100, 100, 100}} {
		a := PerlinNoise(p[0], p[1], p[2])
		b := PerlinNoise(p[0], p[1], p[2])
		if a != b {
			t.Fatalf("PerlinNoise(%v) not deterministic: %v vs %v", p, a, b)
		}
	}
}

func TestPerlinNoiseBounded(t *testing.T) {
	for x := float32(-5); x < 5; x += 0.37 {
		for y := float32(-5); y < 5; y += 0.53 {
			n := PerlinNoise(x, y, x*y)
			if math32.IsNaN(n) || n < -1 || n > 2 {
				t.Fatalf("PerlinNoise(%v, %v) = %v out of bounds", x, y, n)
			}
		}
	}
}

func TestPerlinNoiseVaries(t *testing.T) {
	seen := map[float32]bool{}
	for x := float32(0); x < 10; x += 0.77 {
		seen[PerlinNoise(x, x*0.3, x*0.7)] = true
	}
	if len(seen) < 5 {
		t.Fatalf("noise nearly constant: %d distinct values", len(seen))
	}
}

func TestCellularNoiseRange(t *testing.T) {
	for x := float32(-3); x < 3; x += 0.41 {
		n := CellularNoise(x, x*2, -x)
		if n < 0 || n > 1 {
			t.Fatalf("CellularNoise(%v) = %v outside [0, 1]", x, n)
		}
	}
}

func TestTurbulenceOctaves(t *testing.T) {
	p := mathutil.Vec3{0.5, 1.2, -0.7}

	one := Turbulence(p, 1, NoisePerlin)
	five := Turbulence(p, 5, NoisePerlin)

	if math32.IsNaN(one) || math32.IsNaN(five) {
		t.Fatal("turbulence produced NaN")
	}
	// First octave is included as-is.
	if math32.Abs(one-PerlinNoise(p[0], p[1], p[2])) > 1e-6 {
		t.Fatalf("single octave %v != base noise", one)
	}
	// Geometric amplitude decay bounds the sum.
	if five < 0 || five > 4 {
		t.Fatalf("turbulence sum %v out of bounds", five)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name         string
		edge0, edge1 float32
		x            float32
		want         float32
	}{
		{"below edge0", 0, 1, -5, 0},
		{"at edge0", 0, 1, 0, 0},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"at edge1", 0, 1, 1, 1},
		{"above edge1", 0, 1, 5, 1},
		{"shifted range", 2, 4, 3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smoothstep(tt.edge0, tt.edge1, tt.x); math32.Abs(got-tt.want) > 1e-5 {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMixEndpoints(t *testing.T) {
	a := mathutil.Vec3{1, 0, 0}
	b := mathutil.Vec3{0, 1, 0}

	if Mix(a, b, 0) != a {
		t.Fatal("Mix at t=0 is not a")
	}
	if Mix(a, b, 1) != b {
		t.Fatal("Mix at t=1 is not b")
	}
	mid := Mix(a, b, 0.5)
	if math32.Abs(mid[0]-0.5) > 1e-6 || math32.Abs(mid[1]-0.5) > 1e-6 {
		t.Fatalf("Mix midpoint %v", mid)
	}
}
