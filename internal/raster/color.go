package raster

import "solar-renderer/internal/mathutil"

// Color is an opaque 8-bit RGB color. Alpha is implied fully opaque; the
// framebuffer stores 255 alongside it.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// ColorFromVec3 converts a [0,1] float color, clamping each channel before
// scaling to [0,255].
func ColorFromVec3(v mathutil.Vec3) Color {
	return Color{
		R: floatChannel(v[0]),
		G: floatChannel(v[1]),
		B: floatChannel(v[2]),
	}
}

// Vec3 returns the color as [0,1] floats.
func (c Color) Vec3() mathutil.Vec3 {
	return mathutil.Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}

func floatChannel(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v * 255)
}
