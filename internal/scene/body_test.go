package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

func TestCircularOrbitRadius(t *testing.T) {
	o := Circular(100, 10)

	for time := float32(0); time < 20; time += 0.7 {
		p := o.Position(time)
		if r := p.Len(); math32.Abs(r-100) > 0.1 {
			t.Fatalf("t=%v: radius %v, want 100", time, r)
		}
		if p[1] != 0 {
			t.Fatalf("t=%v: flat orbit left the plane: %v", time, p)
		}
	}
}

func TestOrbitPeriodic(t *testing.T) {
	o := &OrbitalParameters{
		SemiMajorAxis: 50,
		Eccentricity:  0.3,
		Period:        12,
	}

	a := o.Position(1)
	b := o.Position(1 + 12)
	if a.Sub(b).Len() > 0.01 {
		t.Fatalf("one period apart: %v vs %v", a, b)
	}
}

func TestEllipticalOrbitBounds(t *testing.T) {
	o := &OrbitalParameters{
		SemiMajorAxis: 100,
		Eccentricity:  0.5,
		Period:        10,
	}

	// Radius stays between periapsis a(1-e) and apoapsis a(1+e).
	minR, maxR := math32.Inf(1), float32(0)
	for time := float32(0); time < 10; time += 0.05 {
		r := o.Position(time).Len()
		minR = math32.Min(minR, r)
		maxR = math32.Max(maxR, r)
	}
	if minR < 49 || maxR > 151 {
		t.Fatalf("radius range [%v, %v], want within [50, 150]", minR, maxR)
	}
	if maxR-minR < 50 {
		t.Fatalf("orbit looks circular: range [%v, %v]", minR, maxR)
	}
}

func TestInclinationTiltsOrbit(t *testing.T) {
	flat := &OrbitalParameters{SemiMajorAxis: 100, Period: 10}
	tilted := &OrbitalParameters{SemiMajorAxis: 100, Period: 10, Inclination: math32.Pi / 4}

	leftPlane := false
	for time := float32(0); time < 10; time += 0.5 {
		if flat.Position(time)[1] != 0 {
			t.Fatal("flat orbit left the plane")
		}
		if math32.Abs(tilted.Position(time)[1]) > 1 {
			leftPlane = true
		}
	}
	if !leftPlane {
		t.Fatal("inclined orbit never left the plane")
	}
}

func TestWorldPositionsParenting(t *testing.T) {
	bodies := SolarSystem()

	var earth, moon int = -1, -1
	for i, b := range bodies {
		switch b.Name {
		case "Earth":
			earth = i
		case "Moon":
			moon = i
		}
	}
	if earth < 0 || moon < 0 {
		t.Fatal("catalog missing Earth or Moon")
	}
	if bodies[moon].Parent != earth {
		t.Fatalf("Moon parent = %d, want %d", bodies[moon].Parent, earth)
	}

	for _, time := range []float32{0, 57.3, 1000} {
		positions := WorldPositions(bodies, time)
		d := positions[moon].Sub(positions[earth]).Len()
		want := bodies[moon].Orbit.SemiMajorAxis
		if math32.Abs(d-want) > want*0.05 {
			t.Fatalf("t=%v: moon %v from earth, want ~%v", time, d, want)
		}
	}
}

func TestModelMatrixScale(t *testing.T) {
	b := Body{
		Name:         "test",
		Radius:       10,
		RotationAxis: mathutil.Vec3{0, 1, 0},
	}

	m := b.ModelMatrix(0, mathutil.Vec3{100, 0, 0})

	// A unit-sphere vertex lands radius units from the body center.
	p := m.MulPoint(mathutil.Vec3{1, 0, 0})
	if d := p.Sub(mathutil.Vec3{100, 0, 0}).Len(); math32.Abs(d-10) > 1e-3 {
		t.Fatalf("scaled vertex %v from center, want 10", d)
	}
}

func TestModelMatrixSpin(t *testing.T) {
	b := Body{
		Name:           "spinner",
		Radius:         1,
		RotationPeriod: 4,
		RotationAxis:   mathutil.Vec3{0, 1, 0},
	}

	p0 := b.ModelMatrix(0, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})
	p1 := b.ModelMatrix(1, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})
	p4 := b.ModelMatrix(4, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})

	if p0.Sub(p1).Len() < 0.5 {
		t.Fatal("quarter period barely moved the surface")
	}
	if p0.Sub(p4).Len() > 1e-3 {
		t.Fatalf("full period did not return to start: %v vs %v", p0, p4)
	}
}

func TestModelMatrixRetrogradeSpin(t *testing.T) {
	prograde := Body{Radius: 1, RotationPeriod: 4, RotationAxis: mathutil.Vec3{0, 1, 0}}
	retrograde := Body{Radius: 1, RotationPeriod: -4, RotationAxis: mathutil.Vec3{0, 1, 0}}

	start := retrograde.ModelMatrix(0, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})
	p := prograde.ModelMatrix(1, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})
	r := retrograde.ModelMatrix(1, mathutil.Vec3{}).MulPoint(mathutil.Vec3{1, 0, 0})

	// A negative period spins, and spins the other way.
	if start.Sub(r).Len() < 0.5 {
		t.Fatal("retrograde body did not rotate")
	}
	if p.Sub(r).Len() < 0.5 {
		t.Fatalf("retrograde matches prograde: %v vs %v", p, r)
	}
}

func TestOrbitPoints(t *testing.T) {
	bodies := SolarSystem()

	for _, b := range bodies {
		points := b.OrbitPoints(64)
		if b.Orbit == nil {
			if points != nil {
				t.Fatalf("%s: stationary body produced orbit points", b.Name)
			}
			continue
		}
		if len(points) != 64 {
			t.Fatalf("%s: got %d points", b.Name, len(points))
		}
	}
}

func TestSolarSystemCatalog(t *testing.T) {
	bodies := SolarSystem()

	if len(bodies) != 10 {
		t.Fatalf("catalog has %d bodies", len(bodies))
	}
	if bodies[0].Type != Star || bodies[0].Orbit != nil {
		t.Fatal("first body must be the stationary star")
	}
	for i, b := range bodies {
		if b.Shader == nil {
			t.Fatalf("%s has no shader", b.Name)
		}
		if b.Parent >= i {
			t.Fatalf("%s: parent %d does not precede index %d", b.Name, b.Parent, i)
		}
		if b.Radius <= 0 {
			t.Fatalf("%s: radius %v", b.Name, b.Radius)
		}
	}
}
