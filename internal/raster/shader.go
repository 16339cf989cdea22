package raster

import "solar-renderer/internal/mathutil"

// Shader computes the color of one fragment from its interpolated world
// position, unit world normal, and the simulation time. Shaders are pure:
// no state, called once per covered pixel per triangle. One function type
// covers every body in the scene.
type Shader func(worldPos, worldNormal mathutil.Vec3, time float32) Color
