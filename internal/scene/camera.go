package scene

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

// Input is one frame of pilot input, already decoded from whatever window
// layer is in use. The camera never talks to the windowing library.
type Input struct {
	Forward, Back    bool
	StrafeLeft       bool
	StrafeRight      bool
	Ascend, Descend  bool
	Boost            bool
	Rotating         bool // right mouse button held
	MouseDX, MouseDY float32
	Wheel            float32
	RaiseCamera      bool
	LowerCamera      bool

	ToggleWarp        bool
	ToggleHyperWarp   bool
	ToggleUltraWarp   bool
	ToggleThirdPerson bool
}

// Proximity classifies how close the ship is to the nearest body, used by
// the render loop to pick the ship's draw policy (standard, depth-biased,
// or overlay).
type Proximity int

const (
	ProximityNormal Proximity = iota
	ProximityClose
	ProximityCritical
)

// ShipCamera is the player's ship and the camera attached to it: a simple
// velocity/drag flight model with yaw/pitch aiming, optional third-person
// follow with smoothing, and warp speed multipliers.
type ShipCamera struct {
	ThirdPerson bool

	position mathutil.Vec3
	velocity mathutil.Vec3
	forward  mathutil.Vec3
	right    mathutil.Vec3
	up       mathutil.Vec3

	yaw   float32
	pitch float32

	acceleration float32
	maxSpeed     float32
	drag         float32

	cameraDistance  float32
	cameraHeight    float32
	cameraSmoothing float32

	smoothedPosition mathutil.Vec3
	smoothedYaw      float32
	smoothedPitch    float32

	warpMultiplier float32
	warpMode       bool
	hyperWarp      bool
}

func NewShipCamera(position mathutil.Vec3) *ShipCamera {
	c := &ShipCamera{
		ThirdPerson:      true,
		position:         position,
		forward:          mathutil.Vec3{0, 0, -1},
		right:            mathutil.Vec3{1, 0, 0},
		up:               mathutil.Vec3{0, 1, 0},
		acceleration:     0.002,
		maxSpeed:         0.15,
		drag:             0.98,
		cameraDistance:   5,
		cameraHeight:     1.5,
		cameraSmoothing:  0.15,
		smoothedPosition: position,
		warpMultiplier:   1,
	}
	c.updateVectors()
	return c
}

// Update advances the flight model by one frame of input.
func (c *ShipCamera) Update(in Input) {
	if in.Rotating {
		const sensitivity = 0.002
		c.yaw += in.MouseDX * sensitivity
		c.pitch += in.MouseDY * sensitivity
		if c.pitch > 1.4 {
			c.pitch = 1.4
		} else if c.pitch < -1.4 {
			c.pitch = -1.4
		}
	}

	if in.ToggleWarp {
		c.warpMode = !c.warpMode
		c.hyperWarp = false
		c.warpMultiplier = 1
		if c.warpMode {
			c.warpMultiplier = 50
		}
	}
	if in.ToggleHyperWarp {
		c.hyperWarp = !c.hyperWarp
		c.warpMode = false
		c.warpMultiplier = 1
		if c.hyperWarp {
			c.warpMultiplier = 500
		}
	}
	if in.ToggleUltraWarp {
		ultra := !c.hyperWarp && !c.warpMode && c.warpMultiplier < 5000
		c.hyperWarp = false
		c.warpMode = false
		c.warpMultiplier = 1
		if ultra {
			c.warpMultiplier = 5000
		}
	}
	if in.ToggleThirdPerson {
		c.ThirdPerson = !c.ThirdPerson
	}

	if in.Wheel != 0 {
		c.cameraDistance -= in.Wheel * 0.5
		if c.cameraDistance < 2 {
			c.cameraDistance = 2
		} else if c.cameraDistance > 15 {
			c.cameraDistance = 15
		}
	}
	if in.RaiseCamera {
		c.cameraHeight = math32.Min(c.cameraHeight+0.05, 5)
	}
	if in.LowerCamera {
		c.cameraHeight = math32.Max(c.cameraHeight-0.05, -2)
	}

	var movement mathutil.Vec3
	if in.Forward {
		movement = movement.Add(c.forward)
	}
	if in.Back {
		movement = movement.Sub(c.forward)
	}
	if in.StrafeLeft {
		movement = movement.Sub(c.right)
	}
	if in.StrafeRight {
		movement = movement.Add(c.right)
	}
	if in.Ascend {
		movement = movement.Add(c.up)
	}
	if in.Descend {
		movement = movement.Sub(c.up)
	}

	speedMultiplier := c.warpMultiplier
	if in.Boost {
		speedMultiplier *= 3
	}

	if movement.Len() > 0 {
		c.velocity = c.velocity.Add(movement.Normalize().Scale(c.acceleration * speedMultiplier))
	}

	maxSpeed := c.maxSpeed * speedMultiplier
	if speed := c.velocity.Len(); speed > maxSpeed {
		c.velocity = c.velocity.Normalize().Scale(maxSpeed)
	}

	c.velocity = c.velocity.Scale(c.drag)
	c.position = c.position.Add(c.velocity)

	// Ease the follow camera toward the ship.
	c.smoothedPosition = c.smoothedPosition.Add(
		c.position.Sub(c.smoothedPosition).Scale(c.cameraSmoothing))
	c.smoothedYaw += (c.yaw - c.smoothedYaw) * c.cameraSmoothing
	c.smoothedPitch += (c.pitch - c.smoothedPitch) * c.cameraSmoothing

	c.updateVectors()
}

func (c *ShipCamera) updateVectors() {
	c.forward = mathutil.Vec3{
		math32.Cos(c.yaw) * math32.Cos(c.pitch),
		math32.Sin(c.pitch),
		math32.Sin(c.yaw) * math32.Cos(c.pitch),
	}.Normalize()
	c.right = c.forward.Cross(mathutil.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}

func (c *ShipCamera) smoothedBasis() (forward, right, up mathutil.Vec3) {
	forward = mathutil.Vec3{
		math32.Cos(c.smoothedYaw) * math32.Cos(c.smoothedPitch),
		math32.Sin(c.smoothedPitch),
		math32.Sin(c.smoothedYaw) * math32.Cos(c.smoothedPitch),
	}.Normalize()
	right = forward.Cross(mathutil.Vec3{0, 1, 0}).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// ViewMatrix returns the current view transform: a smoothed chase camera
// in third person, the ship's own viewpoint otherwise.
func (c *ShipCamera) ViewMatrix() mathutil.Mat4 {
	if c.ThirdPerson {
		forward, _, up := c.smoothedBasis()
		offset := forward.Scale(-c.cameraDistance).Add(up.Scale(c.cameraHeight))
		eye := c.smoothedPosition.Add(offset)
		target := c.smoothedPosition.Add(forward.Scale(2))
		return mathutil.LookAt(eye, target, up)
	}
	return mathutil.LookAt(c.position, c.position.Add(c.forward), c.up)
}

// Position returns the camera eye position matching ViewMatrix.
func (c *ShipCamera) Position() mathutil.Vec3 {
	if c.ThirdPerson {
		forward, _, up := c.smoothedBasis()
		offset := forward.Scale(-c.cameraDistance).Add(up.Scale(c.cameraHeight))
		return c.smoothedPosition.Add(offset)
	}
	return c.position
}

// ShipPosition returns the ship's actual position, which leads the
// smoothed camera.
func (c *ShipCamera) ShipPosition() mathutil.Vec3 {
	return c.position
}

// ShipModelMatrix builds the model transform for drawing the ship itself
// in third person.
func (c *ShipCamera) ShipModelMatrix(scale float32) mathutil.Mat4 {
	m := mathutil.Mat4Identity().Translate(c.smoothedPosition)
	m = m.RotateAxis(c.smoothedYaw+math32.Pi, mathutil.Vec3{0, 1, 0})
	m = m.RotateAxis(-c.smoothedPitch, mathutil.Vec3{1, 0, 0})
	return m.ScaleUniform(scale)
}

// TeleportTo jumps near a target, kills velocity, aims at it, and snaps
// the smoothed follow state so the camera does not swing across the system.
func (c *ShipCamera) TeleportTo(target mathutil.Vec3, offsetDistance float32) {
	safeDistance := math32.Max(offsetDistance*3, 100)

	c.position = target.Add(mathutil.Vec3{0, safeDistance * 0.3, safeDistance})
	c.velocity = mathutil.Vec3{}

	direction := target.Sub(c.position).Normalize()
	c.yaw = math32.Atan2(direction[2], direction[0])
	c.pitch = math32.Asin(direction[1])

	c.smoothedPosition = c.position
	c.smoothedYaw = c.yaw
	c.smoothedPitch = c.pitch
	c.updateVectors()
}

// ResolveCollisions pushes the ship out of any body's safety envelope and
// deflects velocity tangent to the surface with a small bounce.
func (c *ShipCamera) ResolveCollisions(bodies []Body, positions []mathutil.Vec3) {
	for i := range bodies {
		toBody := positions[i].Sub(c.position)
		distance := toBody.Len()
		safeDistance := bodies[i].Radius * 2.5

		if distance >= safeDistance {
			continue
		}
		overlap := safeDistance - distance
		if overlap <= 0 {
			continue
		}

		normal := toBody.Normalize()
		rejection := normal.Scale(-1)
		c.position = c.position.Add(rejection.Scale(overlap + 1))

		if toward := c.velocity.Dot(normal); toward > 0 {
			c.velocity = c.velocity.Sub(normal.Scale(toward * 1.2))
			c.velocity = c.velocity.Add(rejection.Scale(0.5))
		}

		c.smoothedPosition = c.position
	}
}

// NearestBody returns the index and distance of the closest body.
func (c *ShipCamera) NearestBody(positions []mathutil.Vec3) (int, float32) {
	best := -1
	bestDist := math32.Inf(1)
	for i, pos := range positions {
		if d := pos.Sub(c.position).Len(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Proximity classifies the closest approach among all bodies, relative to
// each body's surface. Thresholds sit just outside the collision envelope
// (see ResolveCollisions) so the escalation fires only when the ship is
// actually skimming a surface. Every body is checked; a critical approach
// to one body is never masked by a merely close approach to another.
func (c *ShipCamera) Proximity(bodies []Body, positions []mathutil.Vec3) Proximity {
	result := ProximityNormal
	for i := range bodies {
		distance := positions[i].Sub(c.position).Len()
		switch {
		case distance < bodies[i].Radius*1.5:
			return ProximityCritical
		case distance < bodies[i].Radius*3:
			result = ProximityClose
		}
	}
	return result
}

// SpeedMode names the active warp tier for the HUD.
func (c *ShipCamera) SpeedMode() string {
	switch {
	case c.warpMultiplier >= 5000:
		return "ULTRA WARP"
	case c.hyperWarp:
		return "HYPER WARP"
	case c.warpMode:
		return "WARP"
	default:
		return "IMPULSE"
	}
}

// Speed returns the current velocity magnitude.
func (c *ShipCamera) Speed() float32 {
	return c.velocity.Len()
}
