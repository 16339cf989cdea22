// Package scene models the simulated solar system around the renderer:
// Kepler orbits, the celestial body catalog, the spaceship camera, the
// ship trail, and the star skybox. It produces the world positions,
// matrices, and shaders the render loop feeds into internal/raster.
package scene

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// BodyType classifies a celestial body.
type BodyType int

const (
	Star BodyType = iota
	Planet
	Moon
	Asteroid
)

// OrbitalParameters describe a Keplerian elliptical orbit. Angles are in
// radians, periods in simulation time units.
type OrbitalParameters struct {
	SemiMajorAxis      float32
	Eccentricity       float32
	Inclination        float32
	AscendingNode      float32 // longitude of the ascending node (Ω)
	ArgPeriapsis       float32 // argument of periapsis (ω)
	Period             float32
	InitialMeanAnomaly float32
}

// Circular builds a flat circular orbit of the given radius and period.
func Circular(radius, period float32) *OrbitalParameters {
	return &OrbitalParameters{
		SemiMajorAxis: radius,
		Period:        period,
	}
}

// Position returns the parent-relative orbital position at the given time,
// solving Kepler's equation for the eccentric anomaly.
func (o *OrbitalParameters) Position(time float32) mathutil.Vec3 {
	if o.Period == 0 {
		return mathutil.Vec3{}
	}

	meanMotion := 2 * math32.Pi / o.Period
	meanAnomaly := o.InitialMeanAnomaly + meanMotion*time

	e := o.Eccentricity
	ecc := o.solveKepler(meanAnomaly)

	a := o.SemiMajorAxis
	x := a * (math32.Cos(ecc) - e)
	y := a * math32.Sqrt(1-e*e) * math32.Sin(ecc)

	// Orient the orbital-plane position: periapsis, inclination, node.
	pos := mathutil.Vec3{x, 0, y}
	pos = rotateAboutY(pos, o.ArgPeriapsis)
	pos = rotateAboutX(pos, o.Inclination)
	pos = rotateAboutY(pos, o.AscendingNode)
	return pos
}

// solveKepler finds the eccentric anomaly E with E - e·sin(E) = M by
// Newton-Raphson, at most 10 steps.
func (o *OrbitalParameters) solveKepler(meanAnomaly float32) float32 {
	ecc := meanAnomaly
	e := o.Eccentricity

	for i := 0; i < 10; i++ {
		f := ecc - e*math32.Sin(ecc) - meanAnomaly
		fPrime := 1 - e*math32.Cos(ecc)

		delta := f / fPrime
		ecc -= delta
		if math32.Abs(delta) < 1e-6 {
			break
		}
	}
	return ecc
}

// Body is one celestial body: its physical parameters, orbit, spin, place
// in the parent hierarchy, and surface shader.
type Body struct {
	Name           string
	Type           BodyType
	Radius         float32
	Orbit          *OrbitalParameters // nil for a stationary body
	RotationPeriod float32
	RotationAxis   mathutil.Vec3
	Parent         int // index of the parent body, -1 for none
	Shader         raster.Shader
}

// WorldPosition returns the absolute position at the given time. parentPos
// is the already-computed position of the parent body (zero for none).
func (b *Body) WorldPosition(time float32, parentPos mathutil.Vec3) mathutil.Vec3 {
	if b.Orbit == nil {
		return parentPos
	}
	return parentPos.Add(b.Orbit.Position(time))
}

// ModelMatrix builds the body's model transform: translation to its world
// position, axial spin, then uniform scale to its radius. A negative
// rotation period spins the body retrograde.
func (b *Body) ModelMatrix(time float32, worldPos mathutil.Vec3) mathutil.Mat4 {
	m := mathutil.Mat4Identity().Translate(worldPos)
	if b.RotationPeriod != 0 {
		angle := time / b.RotationPeriod * 2 * math32.Pi
		m = m.RotateAxis(angle, b.RotationAxis)
	}
	return m.ScaleUniform(b.Radius)
}

// OrbitPoints samples one full revolution for orbit-line rendering. A body
// without an orbit yields nil.
func (b *Body) OrbitPoints(n int) []mathutil.Vec3 {
	if b.Orbit == nil {
		return nil
	}
	points := make([]mathutil.Vec3, n)
	for i := range points {
		t := float32(i) / float32(n) * b.Orbit.Period
		points[i] = b.Orbit.Position(t)
	}
	return points
}

func rotateAboutY(v mathutil.Vec3, angle float32) mathutil.Vec3 {
	s, c := math32.Sincos(angle)
	return mathutil.Vec3{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}

func rotateAboutX(v mathutil.Vec3, angle float32) mathutil.Vec3 {
	s, c := math32.Sincos(angle)
	return mathutil.Vec3{v[0], v[1]*c - v[2]*s, v[1]*s + v[2]*c}
}
