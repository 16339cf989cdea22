// Package batch renders animation frame sequences offline with a worker
// pool and writes them as WebP or TGA images plus a JSON manifest.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/chewxy/math32"
	"github.com/ftrvxmtrx/tga"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/shader"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string // "webp" or "tga"
	Width       int
	Height      int
	Supersample int
	Frames      int
	TimeStep    float32
	StartTime   float32
	Stars       int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Time    float32
	File    string
	Success bool
	Error   string
}

// sharedScene is the read-only scene data every worker renders from.
// Shaders are pure functions and meshes are never mutated after build, so
// one copy serves all workers.
type sharedScene struct {
	bodies []scene.Body
	skybox *scene.Skybox
	lods   map[int]*mesh.Mesh
	ring   *mesh.Mesh
}

func buildScene(stars int) *sharedScene {
	lods := make(map[int]*mesh.Mesh, 4)
	for _, n := range []int{64, 32, 16, 8} {
		lods[n] = mesh.Sphere(1, uint32(n), uint32(n))
	}
	return &sharedScene{
		bodies: scene.SolarSystem(),
		skybox: scene.NewSkybox(stars, 42),
		lods:   lods,
		ring:   mesh.Ring(1.2, 2.3, 64),
	}
}

// Run renders all frames using a worker pool. Each worker owns its own
// renderer and framebuffer; only the immutable scene is shared.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	sc := buildScene(cfg.Stars)

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderW := cfg.Width * cfg.Supersample
			renderH := cfg.Height * cfg.Supersample
			r := raster.NewRenderer(renderW, renderH)
			fb := raster.NewFrameBuffer(renderW, renderH)
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, sc, r, fb, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// cameraAt places the flyby camera for a frame: a slow elliptical sweep
// around the inner system, always looking at the sun.
func cameraAt(t float32) (eye mathutil.Vec3, view mathutil.Mat4) {
	angle := t * 0.002
	eye = mathutil.Vec3{
		math32.Cos(angle) * 9000,
		2500,
		math32.Sin(angle) * 9000,
	}
	view = mathutil.LookAt(eye, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
	return eye, view
}

func renderFrame(cfg Config, sc *sharedScene, r *raster.Renderer, fb *raster.FrameBuffer, idx int) Result {
	t := cfg.StartTime + float32(idx)*cfg.TimeStep
	res := Result{Frame: idx, Time: t}

	eye, view := cameraAt(t)
	aspect := float32(cfg.Width) / float32(cfg.Height)
	projection := mathutil.Perspective(math32.Pi/4, aspect, 0.1, 1000000)

	fb.Clear(raster.NewColor(5, 5, 15))
	sc.skybox.Render(fb, view, projection)

	positions := scene.WorldPositions(sc.bodies, t)
	orbitColor := raster.NewColor(100, 100, 150)

	for i := range sc.bodies {
		b := &sc.bodies[i]

		if points := b.OrbitPoints(128); points != nil {
			var parentPos mathutil.Vec3
			if b.Parent >= 0 {
				parentPos = positions[b.Parent]
			}
			r.RenderOrbit(fb, points, parentPos, view, projection, orbitColor)
		}

		worldPos := positions[i]
		distance := worldPos.Sub(eye).Len()
		if distance > 500000 {
			continue
		}
		if !r.IsInFrustum(worldPos, b.Radius, view, projection) {
			continue
		}

		model := b.ModelMatrix(t, worldPos)
		sphere := sc.lods[r.LODLevel(distance, b.Radius)]
		r.RenderMesh(fb, sphere, b.Shader, model, view, projection, t)

		if b.Name == "Saturn" && distance < b.Radius*50 {
			ringModel := mathutil.Mat4Identity().Translate(worldPos)
			ringModel = ringModel.RotateAxis(0.35, mathutil.Vec3{1, 0, 0.3}.Normalize())
			ringModel = ringModel.ScaleUniform(b.Radius)
			ringShader := shaderForRing(b.Shader, t)
			r.RenderMesh(fb, sc.ring, ringShader, ringModel, view, projection, t)
		}
	}

	img := frameImage(fb)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	name := fmt.Sprintf("frame_%04d.%s", idx, cfg.Format)
	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	switch cfg.Format {
	case "tga":
		err = tga.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		res.Error = fmt.Sprintf("%s encode: %v", cfg.Format, err)
		return res
	}

	res.File = name
	res.Success = true
	return res
}

// shaderForRing samples the planet shader at the ring radius to tint the
// ring from the planet's own palette.
func shaderForRing(planet raster.Shader, t float32) raster.Shader {
	base := planet(mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, t)
	return shader.PlanetRing(base)
}

func frameImage(fb *raster.FrameBuffer) *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Bytes(),
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
