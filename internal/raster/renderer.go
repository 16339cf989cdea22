package raster

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
)

// Renderer is the software rasterization pipeline: it transforms mesh
// vertices through model/view/projection matrices, culls and fills
// triangles with depth testing, and projects points for line drawing.
//
// A Renderer is not safe for concurrent use; it reuses a per-call vertex
// scratch buffer. Parallel rendering wants one Renderer per goroutine,
// which also keeps the framebuffer's nearest-wins compositing race-free.
type Renderer struct {
	width   float32
	height  float32
	scratch []transformedVertex
}

// lineDepth is the depth written for orbit and trail lines: the nearest
// valid NDC value, so lines stay visible over geometry at their pixels.
const lineDepth float32 = -1.0

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  float32(width),
		height: float32(height),
	}
}

// RenderMesh draws a mesh with the standard nearer-wins depth test.
func (r *Renderer) RenderMesh(
	fb *FrameBuffer,
	m *mesh.Mesh,
	shader Shader,
	model, view, projection mathutil.Mat4,
	time float32,
) {
	r.drawMesh(fb, m, shader, model, view, projection, time, drawStandard, 0)
}

// RenderMeshWithBias draws a mesh with the given bias added to every
// fragment's depth before testing and storing. A negative bias pulls the
// mesh toward the camera, forcing it to win against geometry that would
// otherwise occlude it.
func (r *Renderer) RenderMeshWithBias(
	fb *FrameBuffer,
	m *mesh.Mesh,
	shader Shader,
	model, view, projection mathutil.Mat4,
	time float32,
	depthBias float32,
) {
	r.drawMesh(fb, m, shader, model, view, projection, time, drawBiased, depthBias)
}

// RenderMeshOverlay draws a mesh without depth testing, alpha-blending over
// whatever the opaque passes produced and leaving the depth buffer intact.
// Pixels whose stored depth is already closer than the overlay threshold
// are skipped. Overlay draws belong at the end of a frame, after all
// standard and biased draws.
func (r *Renderer) RenderMeshOverlay(
	fb *FrameBuffer,
	m *mesh.Mesh,
	shader Shader,
	model, view, projection mathutil.Mat4,
	time float32,
) {
	r.drawMesh(fb, m, shader, model, view, projection, time, drawOverlay, 0)
}

func (r *Renderer) drawMesh(
	fb *FrameBuffer,
	m *mesh.Mesh,
	shader Shader,
	model, view, projection mathutil.Mat4,
	time float32,
	mode drawMode,
	depthBias float32,
) {
	mvp := mathutil.Mat4Mul(projection, mathutil.Mat4Mul(view, model))
	verts := r.transformVertices(m, model, mvp)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])

		if i0 >= len(verts) || i1 >= len(verts) || i2 >= len(verts) {
			continue
		}
		r.rasterizeTriangle(fb, &verts[i0], &verts[i1], &verts[i2], shader, time, mode, depthBias)
	}
}

// transformVertices runs the vertex stage once per vertex into a scratch
// slice reused across calls, so steady-state rendering does not allocate.
func (r *Renderer) transformVertices(m *mesh.Mesh, model, mvp mathutil.Mat4) []transformedVertex {
	if cap(r.scratch) < len(m.Vertices) {
		r.scratch = make([]transformedVertex, 0, len(m.Vertices))
	}
	r.scratch = r.scratch[:0]
	for i := range m.Vertices {
		r.scratch = append(r.scratch, r.transformVertex(&m.Vertices[i], model, mvp))
	}
	return r.scratch
}

func (r *Renderer) transformVertex(v *mesh.Vertex, model, mvp mathutil.Mat4) transformedVertex {
	pos4 := mathutil.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}

	worldPos := model.MulPoint(v.Position)
	// Normals go through the model matrix directly (w=0) and are
	// renormalized. The inverse-transpose would be required for
	// non-uniform scale; this scene only scales uniformly.
	worldNormal := model.MulDir(v.Normal).Normalize()

	clip := mvp.MulVec4(pos4)
	w := clip[3]
	if math32.Abs(w) < 1e-6 {
		// Degenerate perspective divide: park the vertex off-screen at
		// far depth so triangles touching it are rejected later.
		return transformedVertex{
			screen:      mathutil.Vec2{-1000, -1000},
			depth:       1,
			worldPos:    worldPos,
			worldNormal: worldNormal,
		}
	}

	ndc := clip.XYZ().Scale(1 / w)
	return transformedVertex{
		screen: mathutil.Vec2{
			(ndc[0] + 1) * 0.5 * r.width,
			(1 - ndc[1]) * 0.5 * r.height, // screen origin is top-left
		},
		depth:       ndc[2],
		worldPos:    worldPos,
		worldNormal: worldNormal,
	}
}

// RenderOrbit projects a closed loop of points offset by the parent body's
// position and connects consecutive projections with lines, wrapping last
// to first. Segments with an unprojectable endpoint are skipped.
func (r *Renderer) RenderOrbit(
	fb *FrameBuffer,
	points []mathutil.Vec3,
	parentOffset mathutil.Vec3,
	view, projection mathutil.Mat4,
	color Color,
) {
	if len(points) < 2 {
		return
	}

	vp := mathutil.Mat4Mul(projection, view)

	projected := make([]mathutil.Vec2, len(points))
	visible := make([]bool, len(points))
	for i, p := range points {
		projected[i], visible[i] = r.projectPoint(parentOffset.Add(p), vp)
	}

	for i := range projected {
		next := (i + 1) % len(projected)
		if visible[i] && visible[next] {
			r.drawLine(fb, projected[i], projected[next], color)
		}
	}
}

// RenderLine projects both world-space endpoints and draws the connecting
// line; if either endpoint fails projection nothing is drawn.
func (r *Renderer) RenderLine(
	fb *FrameBuffer,
	start, end mathutil.Vec3,
	view, projection mathutil.Mat4,
	color Color,
) {
	vp := mathutil.Mat4Mul(projection, view)

	p1, ok1 := r.projectPoint(start, vp)
	p2, ok2 := r.projectPoint(end, vp)
	if ok1 && ok2 {
		r.drawLine(fb, p1, p2, color)
	}
}

// projectPoint maps a world point to screen space through the combined
// view-projection matrix. Points behind the camera, outside the NDC depth
// range, or off the viewport report ok=false.
func (r *Renderer) projectPoint(point mathutil.Vec3, vp mathutil.Mat4) (mathutil.Vec2, bool) {
	clip := vp.MulVec4(mathutil.Vec4{point[0], point[1], point[2], 1})

	w := clip[3]
	if math32.Abs(w) < 1e-6 || w < 0 {
		return mathutil.Vec2{}, false
	}

	ndc := clip.XYZ().Scale(1 / w)
	if ndc[2] < -1 || ndc[2] > 1 {
		return mathutil.Vec2{}, false
	}

	screenX := (ndc[0] + 1) * 0.5 * r.width
	screenY := (1 - ndc[1]) * 0.5 * r.height

	if screenX < 0 || screenX >= r.width || screenY < 0 || screenY >= r.height {
		return mathutil.Vec2{}, false
	}
	return mathutil.Vec2{screenX, screenY}, true
}

// drawLine rasterizes an integer Bresenham line between two screen points,
// writing each pixel at lineDepth so lines always pass the depth test.
func (r *Renderer) drawLine(fb *FrameBuffer, p1, p2 mathutil.Vec2, color Color) {
	x0, y0 := int(p1[0]), int(p1[1])
	x1, y1 := int(p2[0]), int(p2[1])

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, color, lineDepth)

		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// IsInFrustum is a coarse visibility test, deliberately permissive: a
// false positive costs a wasted draw, a false negative pops a visible body
// out of existence. Large bodies partially behind the camera still pass.
func (r *Renderer) IsInFrustum(
	position mathutil.Vec3,
	radius float32,
	view, projection mathutil.Mat4,
) bool {
	pos4 := mathutil.Vec4{position[0], position[1], position[2], 1}
	vp := mathutil.Mat4Mul(projection, view)
	clip := vp.MulVec4(pos4)
	viewPos := view.MulVec4(pos4)

	// Farther behind the camera than twice its radius: gone for sure.
	if viewPos[2] > radius*2 {
		return false
	}

	w := clip[3]
	if w <= 0 {
		return false
	}

	screenSize := radius / math32.Abs(w)
	margin := screenSize * 2
	if margin < 1 {
		margin = 1
	} else if margin > 20 {
		margin = 20
	}

	limit := math32.Abs(w) * (1 + margin)
	return math32.Abs(clip[0]) < limit &&
		math32.Abs(clip[1]) < limit &&
		clip[2] > -limit && clip[2] < math32.Abs(w)
}

// TooClose reports whether the camera is within multiplier body radii of
// the object center. Callers use it to pick the biased or overlay draw
// policy for near geometry.
func (r *Renderer) TooClose(
	position mathutil.Vec3,
	radius float32,
	cameraPosition mathutil.Vec3,
	multiplier float32,
) bool {
	return position.Sub(cameraPosition).Len() < radius*multiplier
}

// LODLevel picks a sphere tessellation (rings and sectors per axis) from
// the camera distance relative to the body radius.
func (r *Renderer) LODLevel(distance, radius float32) int {
	switch {
	case distance < radius*5:
		return 64
	case distance < radius*20:
		return 32
	case distance < radius*100:
		return 16
	default:
		return 8
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
