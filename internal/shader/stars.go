package shader

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Sun renders a self-luminous star: multi-octave surface turbulence,
// drifting dark spots, a blackbody temperature ramp, slow pulsation, and a
// fresnel corona toward the limb.
func Sun() raster.Shader {
	return func(pos, normal mathutil.Vec3, time float32) raster.Color {
		np := pos.Normalize()

		turbOffset := mathutil.Vec3{time * 0.1, time * 0.05, 0}
		turbulence := Turbulence(np.Scale(3).Add(turbOffset), 5, NoisePerlin)

		spotNoise := PerlinNoise(np[0]*8+time*0.2, np[1]*8, np[2]*8)
		solarSpots := Smoothstep(0.65, 0.75, spotNoise)

		baseTemp := 0.7 + turbulence*0.15 - solarSpots*0.3
		tempColor := TemperatureToColor(baseTemp)

		pulse := math32.Sin(time*2)*0.05 + 0.95
		emission := tempColor.Scale((1.5 + turbulence*0.5) * pulse)

		viewDir := mathutil.Vec3{0, 0, 1}
		fresnel := math32.Pow(1-math32.Abs(normal.Dot(viewDir)), 3)
		corona := mathutil.Vec3{1, 0.8, 0.3}.Scale(fresnel * 0.5)

		final := emission.Add(corona).Mul(mathutil.Vec3{1.2, 1, 0.8})
		return raster.ColorFromVec3(final)
	}
}
