// Package mesh provides the triangle geometry consumed by the renderer:
// immutable vertex/index buffers, procedural sphere and ring generators,
// and a small OBJ loader.
package mesh

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

// Vertex is a local-space position and normal. Producers are not required
// to pre-normalize normals; the renderer renormalizes after transform.
type Vertex struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
}

// Mesh is an ordered vertex list plus triangle indices, consumed in
// consecutive triples with counter-clockwise front faces. Meshes are
// immutable after construction and safe to share across render calls.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Sphere generates a pole-capped UV sphere. rings divides pole to pole,
// sectors divides the equator.
func Sphere(radius float32, rings, sectors uint32) *Mesh {
	var vertices []Vertex
	var indices []uint32

	// North pole
	vertices = append(vertices, Vertex{
		Position: mathutil.Vec3{0, radius, 0},
		Normal:   mathutil.Vec3{0, 1, 0},
	})

	for r := uint32(1); r < rings; r++ {
		for s := uint32(0); s <= sectors; s++ {
			theta := math32.Pi * float32(r) / float32(rings)
			phi := 2 * math32.Pi * float32(s) / float32(sectors)

			x := math32.Sin(theta) * math32.Cos(phi)
			y := math32.Cos(theta)
			z := math32.Sin(theta) * math32.Sin(phi)

			vertices = append(vertices, Vertex{
				Position: mathutil.Vec3{x * radius, y * radius, z * radius},
				Normal:   mathutil.Vec3{x, y, z},
			})
		}
	}

	// South pole
	vertices = append(vertices, Vertex{
		Position: mathutil.Vec3{0, -radius, 0},
		Normal:   mathutil.Vec3{0, -1, 0},
	})

	// Fan from the north pole to the first ring
	for s := uint32(0); s < sectors; s++ {
		indices = append(indices, 0, 1+s, 1+s+1)
	}

	// Quads between rings, split into two triangles
	for r := uint32(0); r+2 < rings; r++ {
		for s := uint32(0); s < sectors; s++ {
			current := 1 + r*(sectors+1) + s
			next := current + sectors + 1

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	// Fan from the last ring to the south pole
	southPole := uint32(len(vertices)) - 1
	lastRingStart := southPole - (sectors + 1)
	for s := uint32(0); s < sectors; s++ {
		indices = append(indices, lastRingStart+s, southPole, lastRingStart+s+1)
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// Ring generates a flat annulus in the XZ plane with +Y normals, used for
// planetary rings.
func Ring(innerRadius, outerRadius float32, segments uint32) *Mesh {
	var vertices []Vertex
	var indices []uint32

	for ring := 0; ring <= 1; ring++ {
		radius := innerRadius
		if ring == 1 {
			radius = outerRadius
		}
		for s := uint32(0); s <= segments; s++ {
			angle := 2 * math32.Pi * float32(s) / float32(segments)
			vertices = append(vertices, Vertex{
				Position: mathutil.Vec3{math32.Cos(angle) * radius, 0, math32.Sin(angle) * radius},
				Normal:   mathutil.Vec3{0, 1, 0},
			})
		}
	}

	for s := uint32(0); s < segments; s++ {
		i0 := s
		i1 := s + 1
		i2 := s + segments + 1
		i3 := s + segments + 2

		indices = append(indices, i0, i2, i1)
		indices = append(indices, i1, i2, i3)
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}
