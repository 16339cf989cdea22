package shader

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

// Smoothstep interpolates between 0 and 1 with a cubic Hermite curve as x
// moves across [edge0, edge1].
func Smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Mix linearly interpolates between two vectors.
func Mix(a, b mathutil.Vec3, t float32) mathutil.Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// TemperatureToColor maps a normalized temperature to a blackbody-style
// ramp: dark orange through yellow to white.
func TemperatureToColor(temp float32) mathutil.Vec3 {
	t := temp
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	switch {
	case t < 0.33:
		return Mix(mathutil.Vec3{1, 0.2, 0}, mathutil.Vec3{1, 0.5, 0}, t/0.33)
	case t < 0.66:
		return Mix(mathutil.Vec3{1, 0.5, 0}, mathutil.Vec3{1, 0.9, 0.3}, (t-0.33)/0.33)
	default:
		return Mix(mathutil.Vec3{1, 0.9, 0.3}, mathutil.Vec3{1, 1, 1}, (t-0.66)/0.34)
	}
}

// HueToRGB maps a cyclic hue to an iridescent magenta-violet-cyan ramp.
func HueToRGB(hue float32) mathutil.Vec3 {
	h := math32.Mod(hue, 1)
	if h < 0 {
		h += 1
	}

	switch {
	case h < 0.33:
		return Mix(mathutil.Vec3{1, 0, 0.5}, mathutil.Vec3{0.5, 0, 1}, h*3)
	case h < 0.66:
		return Mix(mathutil.Vec3{0.5, 0, 1}, mathutil.Vec3{0, 1, 1}, (h-0.33)*3)
	default:
		return Mix(mathutil.Vec3{0, 1, 1}, mathutil.Vec3{1, 0, 0.5}, (h-0.66)*3)
	}
}

// Fresnel approximates edge reflection intensity for a view direction and
// surface normal.
func Fresnel(viewDir, normal mathutil.Vec3, power float32) float32 {
	return math32.Pow(1-math32.Abs(viewDir.Dot(normal)), power)
}

// Pulse oscillates sinusoidally between min and max.
func Pulse(time, frequency, min, max float32) float32 {
	normalized := math32.Sin(time*frequency)*0.5 + 0.5
	return min + (max-min)*normalized
}

// PulsePow is Pulse raised to a power for a sharper attack.
func PulsePow(time, frequency, power float32) float32 {
	return math32.Pow(math32.Sin(time*frequency)*0.5+0.5, power)
}
