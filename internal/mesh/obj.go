package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"solar-renderer/internal/mathutil"
)

// LoadOBJ reads a mesh from a Wavefront OBJ file. Supported records are
// v, vn, and f with "v", "v//vn", and "v/vt/vn" reference forms, including
// negative (relative) indices; polygons are fan-triangulated. Texture
// coordinates are parsed past and discarded. Vertices without normals fall
// back to the normalized position, which is right for sphere-like models.
//
// Errors describe what went wrong and where; callers are expected to treat
// a failed load as "model unavailable" and continue with procedural
// geometry.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	var positions []mathutil.Vec3
	var normals []mathutil.Vec3
	var vertices []Vertex
	var indices []uint32

	// Deduplicate (position, normal) pairs across faces.
	seen := make(map[[2]int]uint32)

	resolveCorner := func(ref string, lineNo int) (uint32, error) {
		parts := strings.Split(ref, "/")

		pi, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("mesh: %s:%d: bad vertex reference %q", path, lineNo, ref)
		}
		pi = absoluteIndex(pi, len(positions))
		if pi < 0 || pi >= len(positions) {
			return 0, fmt.Errorf("mesh: %s:%d: vertex index out of range in %q", path, lineNo, ref)
		}

		ni := -1
		if len(parts) == 3 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return 0, fmt.Errorf("mesh: %s:%d: bad normal reference %q", path, lineNo, ref)
			}
			n = absoluteIndex(n, len(normals))
			if n < 0 || n >= len(normals) {
				return 0, fmt.Errorf("mesh: %s:%d: normal index out of range in %q", path, lineNo, ref)
			}
			ni = n
		}

		key := [2]int{pi, ni}
		if idx, ok := seen[key]; ok {
			return idx, nil
		}

		normal := positions[pi].Normalize()
		if ni >= 0 {
			normal = normals[ni].Normalize()
		}
		idx := uint32(len(vertices))
		vertices = append(vertices, Vertex{Position: positions[pi], Normal: normal})
		seen[key] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: %w", path, lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: %w", path, lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("mesh: %s:%d: face with fewer than 3 vertices", path, lineNo)
			}
			corners := make([]uint32, len(refs))
			for i, ref := range refs {
				idx, err := resolveCorner(ref, lineNo)
				if err != nil {
					return nil, err
				}
				corners[i] = idx
			}
			for i := 1; i+1 < len(corners); i++ {
				indices = append(indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}

	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("mesh: %s contains no usable geometry", path)
	}
	return &Mesh{Vertices: vertices, Indices: indices}, nil
}

// absoluteIndex converts a 1-based OBJ index (negative means relative to
// the end of the list) to a 0-based slice index.
func absoluteIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i - 1
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		v[i] = float32(f)
	}
	return v, nil
}
