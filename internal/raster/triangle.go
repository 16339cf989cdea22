package raster

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

// transformedVertex is the per-draw-call result of the vertex stage:
// screen-space position, NDC depth, and world-space attributes for
// interpolation. Instances live in the Renderer's scratch slice and are
// discarded at the end of the call that produced them.
type transformedVertex struct {
	screen      mathutil.Vec2
	depth       float32
	worldPos    mathutil.Vec3
	worldNormal mathutil.Vec3
}

type drawMode int

const (
	drawStandard drawMode = iota
	drawBiased
	drawOverlay
)

// overlayBlockDepth marks a pixel as already occupied by something at
// point-blank range; overlay fragments leave such pixels alone.
const overlayBlockDepth float32 = -0.9

// overlayAlpha is the blend weight of the overlay color over the existing
// framebuffer color.
const overlayAlpha float32 = 0.95

func validVertex(v *transformedVertex) bool {
	return v.screen.IsFinite() &&
		!math32.IsNaN(v.depth) && !math32.IsInf(v.depth, 0) &&
		v.worldPos.IsFinite()
}

// rasterizeTriangle fills one screen-space triangle under the given depth
// policy. This is the hot path: per-pixel work is barycentric evaluation,
// attribute interpolation, one shader call, and one framebuffer write, with
// no allocation.
func (r *Renderer) rasterizeTriangle(
	fb *FrameBuffer,
	v0, v1, v2 *transformedVertex,
	shader Shader,
	time float32,
	mode drawMode,
	depthBias float32,
) {
	if !validVertex(v0) || !validVertex(v1) || !validVertex(v2) {
		return
	}

	// Back-face cull: front faces wind counter-clockwise, so a
	// non-positive screen cross product means away-facing or degenerate.
	edge1 := v1.screen.Sub(v0.screen)
	edge2 := v2.screen.Sub(v0.screen)
	if edge1.Cross(edge2) <= 0 {
		return
	}

	// Vertices outside the NDC depth range come from geometry straddling
	// the near or far plane; without full clipping the whole triangle is
	// dropped.
	if v0.depth < -1 || v0.depth > 1 ||
		v1.depth < -1 || v1.depth > 1 ||
		v2.depth < -1 || v2.depth > 1 {
		return
	}

	minX := int(math32.Floor(min3(v0.screen[0], v1.screen[0], v2.screen[0])))
	maxX := int(math32.Ceil(max3(v0.screen[0], v1.screen[0], v2.screen[0])))
	minY := int(math32.Floor(min3(v0.screen[1], v1.screen[1], v2.screen[1])))
	maxY := int(math32.Ceil(max3(v0.screen[1], v1.screen[1], v2.screen[1])))

	w, h := fb.Width, fb.Height
	if minX < 0 {
		minX = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}
	// Guard against numerical blow-ups producing absurd boxes.
	if maxX-minX > w*2 || maxY-minY > h*2 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := mathutil.Vec2{float32(x) + 0.5, float32(y) + 0.5}

			w0, w1, w2, ok := barycentric(p, v0.screen, v1.screen, v2.screen)
			if !ok || w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*v0.depth + w1*v1.depth + w2*v2.depth
			if mode == drawBiased {
				depth += depthBias
			}
			if math32.IsNaN(depth) || math32.IsInf(depth, 0) || depth < -1 || depth > 1 {
				continue
			}

			if mode == drawOverlay {
				// Something already at point-blank range keeps priority.
				index := y*fb.Width + x
				if fb.Depth[index] < overlayBlockDepth {
					continue
				}
			}

			worldPos := v0.worldPos.Scale(w0).
				Add(v1.worldPos.Scale(w1)).
				Add(v2.worldPos.Scale(w2))
			if !worldPos.IsFinite() {
				continue
			}

			worldNormal := v0.worldNormal.Scale(w0).
				Add(v1.worldNormal.Scale(w1)).
				Add(v2.worldNormal.Scale(w2)).
				Normalize()

			color := shader(worldPos, worldNormal, time)

			if mode == drawOverlay {
				blendPixel(fb, x, y, color)
			} else {
				fb.SetPixel(x, y, color, depth)
			}
		}
	}
}

// blendPixel mixes the shaded color into the existing color buffer without
// touching the depth buffer, so later depth-tested draws are unaffected.
func blendPixel(fb *FrameBuffer, x, y int, c Color) {
	idx := (y*fb.Width + x) * 4
	inv := 1 - overlayAlpha
	fb.Color[idx] = uint8(float32(c.R)*overlayAlpha + float32(fb.Color[idx])*inv)
	fb.Color[idx+1] = uint8(float32(c.G)*overlayAlpha + float32(fb.Color[idx+1])*inv)
	fb.Color[idx+2] = uint8(float32(c.B)*overlayAlpha + float32(fb.Color[idx+2])*inv)
	fb.Color[idx+3] = 255
}

// barycentric computes area-ratio weights of p against triangle (a, b, c).
// ok is false when the triangle is too thin to invert, in which case the
// point counts as outside.
func barycentric(p, a, b, c mathutil.Vec2) (w0, w1, w2 float32, ok bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if math32.Abs(denom) < 1e-8 {
		return 0, 0, 0, false
	}

	w1 = (d11*d20 - d01*d21) / denom
	w2 = (d00*d21 - d01*d20) / denom
	w0 = 1 - w1 - w2
	return w0, w1, w2, true
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
