package scene

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

const trailSampleInterval = 0.1

// Trail records the ship's recent positions and renders them as a fading
// line behind it.
type Trail struct {
	positions  []mathutil.Vec3
	maxPoints  int
	lastSample float32
}

func NewTrail(maxPoints int) *Trail {
	return &Trail{
		positions:  make([]mathutil.Vec3, 0, maxPoints),
		maxPoints:  maxPoints,
		lastSample: -trailSampleInterval,
	}
}

// Record appends the ship position if enough simulation time has passed
// since the last sample, dropping the oldest point once full.
func (t *Trail) Record(pos mathutil.Vec3, time float32) {
	if time-t.lastSample < trailSampleInterval {
		return
	}
	t.lastSample = time

	if len(t.positions) == t.maxPoints {
		copy(t.positions, t.positions[1:])
		t.positions = t.positions[:len(t.positions)-1]
	}
	t.positions = append(t.positions, pos)
}

// Render draws the trail as segments that fade from dim at the tail to a
// bright cyan-blue at the ship.
func (t *Trail) Render(r *raster.Renderer, fb *raster.FrameBuffer, view, projection mathutil.Mat4) {
	for i := 0; i+1 < len(t.positions); i++ {
		alpha := float32(i) / float32(len(t.positions))
		color := raster.NewColor(
			uint8(100*alpha),
			uint8(200*alpha),
			uint8(255*alpha),
		)
		r.RenderLine(fb, t.positions[i], t.positions[i+1], view, projection, color)
	}
}

// Clear drops all recorded points, used after a teleport so the trail does
// not streak across the system.
func (t *Trail) Clear() {
	t.positions = t.positions[:0]
}
