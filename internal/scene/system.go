package scene

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/shader"
)

// SolarSystem builds the body catalog at an epic scale: 1 unit is roughly
// 200,000 km with radii exaggerated for visibility. Orbital elements keep
// the real eccentricities and inclinations. The Moon is parented to Earth;
// everything else orbits the Sun.
func SolarSystem() []Body {
	deg := func(d float32) float32 { return d * math32.Pi / 180 }

	return []Body{
		{
			Name:           "Sun",
			Type:           Star,
			Radius:         350,
			RotationPeriod: 25,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Sun(),
		},
		{
			Name:   "Mercury",
			Type:   Planet,
			Radius: 12,
			Orbit: &OrbitalParameters{
				SemiMajorAxis: 2895,
				Eccentricity:  0.206,
				Inclination:   deg(7),
				Period:        88,
			},
			RotationPeriod: 58.6,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Mercury(),
		},
		{
			Name:   "Venus",
			Type:   Planet,
			Radius: 30,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      5410,
				Eccentricity:       0.007,
				Inclination:        deg(3.4),
				Period:             224.7,
				InitialMeanAnomaly: math32.Pi / 4,
			},
			RotationPeriod: -243, // retrograde spin
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Venus(),
		},
		{
			Name:   "Earth",
			Type:   Planet,
			Radius: 32,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      7480,
				Eccentricity:       0.017,
				Period:             365.25,
				InitialMeanAnomaly: math32.Pi / 2,
			},
			RotationPeriod: 1,
			RotationAxis:   mathutil.Vec3{0, 1, 0.01}.Normalize(),
			Parent:         -1,
			Shader:         shader.Earth(),
		},
		{
			Name:           "Moon",
			Type:           Moon,
			Radius:         8.7,
			Orbit:          Circular(192, 27.3),
			RotationPeriod: 27.3,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         3,
			Shader:         shader.Moon(),
		},
		{
			Name:   "Mars",
			Type:   Planet,
			Radius: 17,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      11395,
				Eccentricity:       0.093,
				Inclination:        deg(1.85),
				Period:             687,
				InitialMeanAnomaly: math32.Pi,
			},
			RotationPeriod: 1.03,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Mars(),
		},
		{
			Name:   "Jupiter",
			Type:   Planet,
			Radius: 350,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      38925,
				Eccentricity:       0.048,
				Inclination:        deg(1.3),
				Period:             4332.6,
				InitialMeanAnomaly: math32.Pi * 1.5,
			},
			RotationPeriod: 0.4,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Jupiter(),
		},
		{
			Name:   "Saturn",
			Type:   Planet,
			Radius: 300,
			Orbit: &OrbitalParameters{
				SemiMajorAxis: 71675,
				Eccentricity:  0.054,
				Inclination:   deg(2.49),
				Period:        10759,
			},
			RotationPeriod: 0.45,
			RotationAxis:   mathutil.Vec3{0, 1, 0.1}.Normalize(),
			Parent:         -1,
			Shader:         shader.Saturn(),
		},
		{
			Name:   "Uranus",
			Type:   Planet,
			Radius: 127,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      143625,
				Eccentricity:       0.047,
				Inclination:        deg(0.77),
				Period:             30688.5,
				InitialMeanAnomaly: math32.Pi / 3,
			},
			RotationPeriod: -0.72,
			RotationAxis:   mathutil.Vec3{0.98, 0, 0.17}.Normalize(),
			Parent:         -1,
			Shader:         shader.Uranus(),
		},
		{
			Name:   "Neptune",
			Type:   Planet,
			Radius: 123,
			Orbit: &OrbitalParameters{
				SemiMajorAxis:      224755,
				Eccentricity:       0.009,
				Inclination:        deg(1.77),
				Period:             60182,
				InitialMeanAnomaly: math32.Pi / 6,
			},
			RotationPeriod: 0.67,
			RotationAxis:   mathutil.Vec3{0, 1, 0},
			Parent:         -1,
			Shader:         shader.Neptune(),
		},
	}
}

// WorldPositions computes the absolute position of every body at the given
// time. Parents must precede their satellites in the slice, which
// SolarSystem guarantees.
func WorldPositions(bodies []Body, time float32) []mathutil.Vec3 {
	positions := make([]mathutil.Vec3, len(bodies))
	for i := range bodies {
		var parentPos mathutil.Vec3
		if p := bodies[i].Parent; p >= 0 {
			parentPos = positions[p]
		}
		positions[i] = bodies[i].WorldPosition(time, parentPos)
	}
	return positions
}
