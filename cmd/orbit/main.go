// Command orbit is the interactive solar system viewer: fly a ship through
// the simulated system with warp, teleport, and a third-person chase
// camera, all rendered through the software rasterizer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solar-renderer/internal/config"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/shader"
)

const (
	baseTimeScale = 0.001
	shipScale     = 0.5
	shipBias      = -0.01
)

var teleportKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0,
}

type game struct {
	width  int
	height int

	renderer *raster.Renderer
	fb       *raster.FrameBuffer
	frame    *ebiten.Image

	bodies     []scene.Body
	skybox     *scene.Skybox
	lods       map[int]*mesh.Mesh
	ring       *mesh.Mesh
	shipMesh   *mesh.Mesh
	shipShader raster.Shader

	camera *scene.ShipCamera
	trail  *scene.Trail

	simTime    float32
	timeScale  float32
	paused     bool
	showOrbits bool

	lastMouseX int
	lastMouseY int
}

// loadShipMesh loads the configured OBJ model. A missing or malformed file
// is not fatal; the viewer warns and falls back to a low-poly procedural
// hull so flight continues without the custom model.
func loadShipMesh(path string) *mesh.Mesh {
	if path != "" {
		m, err := mesh.LoadOBJ(path)
		if err == nil {
			return m
		}
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in ship model\n", err)
	}
	return mesh.Sphere(1, 8, 8)
}

func newGame(cfg config.Config) *game {
	lods := make(map[int]*mesh.Mesh, 4)
	for _, n := range []int{64, 32, 16, 8} {
		lods[n] = mesh.Sphere(1, uint32(n), uint32(n))
	}

	return &game{
		width:      cfg.Width,
		height:     cfg.Height,
		renderer:   raster.NewRenderer(cfg.Width, cfg.Height),
		fb:         raster.NewFrameBuffer(cfg.Width, cfg.Height),
		frame:      ebiten.NewImage(cfg.Width, cfg.Height),
		bodies:     scene.SolarSystem(),
		skybox:     scene.NewSkybox(cfg.Stars, 42),
		lods:       lods,
		ring:       mesh.Ring(1.2, 2.3, 64),
		shipMesh:   loadShipMesh(cfg.ShipOBJ),
		shipShader: shader.Metallic(),
		camera:     scene.NewShipCamera(mathutil.Vec3{0, 500, 9000}),
		trail:      scene.NewTrail(200),
		timeScale:  baseTimeScale,
		showOrbits: true,
	}
}

func (g *game) Update() error {
	mx, my := ebiten.CursorPosition()
	in := scene.Input{
		Forward:           ebiten.IsKeyPressed(ebiten.KeyW),
		Back:              ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:        ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight:       ebiten.IsKeyPressed(ebiten.KeyD),
		Ascend:            ebiten.IsKeyPressed(ebiten.KeyR),
		Descend:           ebiten.IsKeyPressed(ebiten.KeyF),
		Boost:             ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Rotating:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		MouseDX:           float32(mx - g.lastMouseX),
		MouseDY:           float32(my - g.lastMouseY),
		RaiseCamera:       ebiten.IsKeyPressed(ebiten.KeyPageUp),
		LowerCamera:       ebiten.IsKeyPressed(ebiten.KeyPageDown),
		ToggleWarp:        inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ToggleHyperWarp:   inpututil.IsKeyJustPressed(ebiten.KeyX),
		ToggleUltraWarp:   inpututil.IsKeyJustPressed(ebiten.KeyC),
		ToggleThirdPerson: inpututil.IsKeyJustPressed(ebiten.KeyT),
	}
	_, wheelY := ebiten.Wheel()
	in.Wheel = float32(wheelY)
	g.lastMouseX, g.lastMouseY = mx, my

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOrbits = !g.showOrbits
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.timeScale *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.timeScale *= 0.5
		if g.timeScale < baseTimeScale/64 {
			g.timeScale = baseTimeScale / 64
		}
	}

	if !g.paused {
		g.simTime += g.timeScale * 60
	}

	positions := scene.WorldPositions(g.bodies, g.simTime)

	for i, key := range teleportKeys {
		if i >= len(g.bodies) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			g.camera.TeleportTo(positions[i], g.bodies[i].Radius)
			g.trail.Clear()
		}
	}

	g.camera.Update(in)
	g.camera.ResolveCollisions(g.bodies, positions)
	g.trail.Record(g.camera.ShipPosition(), g.simTime)

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := g.simTime
	positions := scene.WorldPositions(g.bodies, t)

	view := g.camera.ViewMatrix()
	eye := g.camera.Position()
	aspect := float32(g.width) / float32(g.height)
	projection := mathutil.Perspective(math32.Pi/4, aspect, 0.1, 1000000)

	g.fb.Clear(raster.NewColor(5, 5, 15))
	g.skybox.Render(g.fb, view, projection)

	if g.showOrbits {
		orbitColor := raster.NewColor(100, 100, 150)
		for i := range g.bodies {
			b := &g.bodies[i]
			points := b.OrbitPoints(128)
			if points == nil {
				continue
			}
			var parentPos mathutil.Vec3
			if b.Parent >= 0 {
				parentPos = positions[b.Parent]
			}
			g.renderer.RenderOrbit(g.fb, points, parentPos, view, projection, orbitColor)
		}
	}

	for i := range g.bodies {
		b := &g.bodies[i]
		worldPos := positions[i]
		distance := worldPos.Sub(eye).Len()

		if distance > 500000 {
			continue
		}
		if g.renderer.TooClose(worldPos, b.Radius, eye, 1.1) {
			continue
		}
		if !g.renderer.IsInFrustum(worldPos, b.Radius, view, projection) {
			continue
		}

		model := b.ModelMatrix(t, worldPos)
		sphere := g.lods[g.renderer.LODLevel(distance, b.Radius)]
		g.renderer.RenderMesh(g.fb, sphere, b.Shader, model, view, projection, t)

		if b.Name == "Saturn" && distance < b.Radius*50 {
			ringModel := mathutil.Mat4Identity().Translate(worldPos)
			ringModel = ringModel.RotateAxis(0.35, mathutil.Vec3{1, 0, 0.3}.Normalize())
			ringModel = ringModel.ScaleUniform(b.Radius)
			base := b.Shader(mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, t)
			g.renderer.RenderMesh(g.fb, g.ring, shader.PlanetRing(base), ringModel, view, projection, t)
		}
	}

	g.trail.Render(g.renderer, g.fb, view, projection)

	if g.camera.ThirdPerson {
		shipModel := g.camera.ShipModelMatrix(shipScale)
		switch g.camera.Proximity(g.bodies, positions) {
		case scene.ProximityCritical:
			g.renderer.RenderMeshOverlay(g.fb, g.shipMesh, g.shipShader, shipModel, view, projection, t)
		case scene.ProximityClose:
			g.renderer.RenderMeshWithBias(g.fb, g.shipMesh, g.shipShader, shipModel, view, projection, t, shipBias)
		default:
			g.renderer.RenderMesh(g.fb, g.shipMesh, g.shipShader, shipModel, view, projection, t)
		}
	}

	g.frame.WritePixels(g.fb.Bytes())
	screen.DrawImage(g.frame, nil)

	g.drawHUD(screen, positions)
}

func (g *game) drawHUD(screen *ebiten.Image, positions []mathutil.Vec3) {
	nearest, dist := g.camera.NearestBody(positions)
	name := "-"
	if nearest >= 0 {
		name = g.bodies[nearest].Name
	}

	status := "RUNNING"
	if g.paused {
		status = "PAUSED"
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  speed %.3f  time x%.4f  %s",
		g.camera.SpeedMode(), g.camera.Speed(), g.timeScale/baseTimeScale, status), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("nearest: %s  %.0f", name, dist), 8, 24)
	ebitenutil.DebugPrintAt(screen,
		"WASD move  R/F up/down  RMB aim  Z/X/C warp  T camera  1-0 teleport  O orbits  SPACE pause  +/- time",
		8, g.height-20)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width (default: 1280)")
	height := flag.Int("height", 0, "Window height (default: 720)")
	stars := flag.Int("stars", 0, "Skybox star count (default: 500)")
	shipOBJ := flag.String("ship", "", "Path to ship OBJ model (default: built-in)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:   *width,
		Height:  *height,
		ShipOBJ: *shipOBJ,
	})
	if *stars > 0 {
		cfg.Stars = *stars
	}

	g := newGame(cfg)

	ebiten.SetWindowTitle("Solar System")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
