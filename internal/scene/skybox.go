package scene

import (
	"math/rand"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// skyDepth places stars just inside the far plane so any real geometry
// overwrites them.
const skyDepth float32 = 0.999

type star struct {
	direction  mathutil.Vec3
	brightness uint8
	size       int
}

// Skybox is a fixed field of distant stars. Stars are stored as unit
// directions and rendered with the camera translation stripped, so they
// never parallax.
type Skybox struct {
	stars []star
}

// NewSkybox generates count stars from the given seed, uniformly spread by
// rejection sampling the unit sphere.
func NewSkybox(count int, seed int64) *Skybox {
	rng := rand.New(rand.NewSource(seed))

	stars := make([]star, 0, count)
	for len(stars) < count {
		dir := mathutil.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
		if l := dir.Len(); l < 1e-3 || l > 1 {
			continue
		}
		stars = append(stars, star{
			direction:  dir.Normalize(),
			brightness: uint8(150 + rng.Intn(106)),
			size:       1 + rng.Intn(2),
		})
	}
	return &Skybox{stars: stars}
}

// Render draws the star field. The view matrix has its translation zeroed
// so stars stay fixed relative to the camera position.
func (s *Skybox) Render(fb *raster.FrameBuffer, view, projection mathutil.Mat4) {
	rotOnly := view
	rotOnly[3] = 0
	rotOnly[7] = 0
	rotOnly[11] = 0
	vp := mathutil.Mat4Mul(projection, rotOnly)

	width := float32(fb.Width)
	height := float32(fb.Height)

	for _, st := range s.stars {
		p := st.direction.Scale(10000)
		clip := vp.MulVec4(mathutil.Vec4{p[0], p[1], p[2], 1})

		w := clip[3]
		if w < 1e-6 {
			continue
		}
		ndc := clip.XYZ().Scale(1 / w)
		if ndc[2] < -1 || ndc[2] > 1 {
			continue
		}

		x := int((ndc[0] + 1) * 0.5 * width)
		y := int((1 - ndc[1]) * 0.5 * height)

		color := raster.NewColor(st.brightness, st.brightness, st.brightness)
		for dy := 0; dy < st.size; dy++ {
			for dx := 0; dx < st.size; dx++ {
				fb.SetPixel(x+dx, y+dy, color, skyDepth)
			}
		}
	}
}
