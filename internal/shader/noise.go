// Package shader implements the procedural surface appearance of every
// body in the scene: noise primitives, small shading helpers, and one
// fragment function per celestial body, all exposed as raster.Shader
// closures.
package shader

import (
	"github.com/chewxy/math32"

	"solar-renderer/internal/mathutil"
)

// NoiseKind selects the base noise for Turbulence.
type NoiseKind int

const (
	NoisePerlin NoiseKind = iota
	NoiseSimplex
	NoiseCellular
)

// PerlinNoise is a simplified 3D Perlin noise, normalized to [0, 1].
func PerlinNoise(x, y, z float32) float32 {
	xi := int32(math32.Floor(x))
	yi := int32(math32.Floor(y))
	zi := int32(math32.Floor(z))

	xf := x - math32.Floor(x)
	yf := y - math32.Floor(y)
	zf := z - math32.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	aaa := hash(xi, yi, zi)
	aba := hash(xi, yi+1, zi)
	aab := hash(xi, yi, zi+1)
	abb := hash(xi, yi+1, zi+1)
	baa := hash(xi+1, yi, zi)
	bba := hash(xi+1, yi+1, zi)
	bab := hash(xi+1, yi, zi+1)
	bbb := hash(xi+1, yi+1, zi+1)

	x1 := lerp(grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf), u)
	x2 := lerp(grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf), u)
	y1 := lerp(x1, x2, v)

	x3 := lerp(grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1), u)
	x4 := lerp(grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1), u)
	y2 := lerp(x3, x4, v)

	return (lerp(y1, y2, w) + 1) * 0.5
}

// SimplexNoise blends two Perlin octaves for a cheaper, less directional
// pattern, in roughly [0, 1].
func SimplexNoise(x, y, z float32) float32 {
	n0 := PerlinNoise(x, y, z)
	n1 := PerlinNoise(x*2+5.2, y*2+1.3, z*2+8.1)
	return (n0 + n1*0.5) / 1.5
}

// CellularNoise is Worley noise: distance to the nearest jittered lattice
// point, inverted so cell walls read bright.
func CellularNoise(x, y, z float32) float32 {
	xi := math32.Floor(x)
	yi := math32.Floor(y)
	zi := math32.Floor(z)

	minDist := float32(10)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				cx := xi + float32(i)
				cy := yi + float32(j)
				cz := zi + float32(k)

				px := cx + cellNoise(cx, cy, cz)
				py := cy + cellNoise(cx+1, cy+2, cz+3)
				pz := cz + cellNoise(cx+4, cy+5, cz+6)

				dx := x - px
				dy := y - py
				dz := z - pz
				dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)
				if dist < minDist {
					minDist = dist
				}
			}
		}
	}

	if minDist > 1 {
		minDist = 1
	}
	return 1 - minDist
}

// Turbulence sums octaves of the chosen noise, doubling frequency and
// halving amplitude each step.
func Turbulence(p mathutil.Vec3, octaves int, kind NoiseKind) float32 {
	sum := float32(0)
	freq := float32(1)
	amp := float32(1)

	for i := 0; i < octaves; i++ {
		var n float32
		switch kind {
		case NoiseSimplex:
			n = SimplexNoise(p[0]*freq, p[1]*freq, p[2]*freq)
		case NoiseCellular:
			n = CellularNoise(p[0]*freq, p[1]*freq, p[2]*freq)
		default:
			n = PerlinNoise(p[0]*freq, p[1]*freq, p[2]*freq)
		}
		sum += amp * n
		freq *= 2
		amp *= 0.5
	}
	return sum
}

// fade is the Perlin smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func hash(x, y, z int32) int32 {
	n := x*374761393 + y*668265263 + z*1274126177
	n = (n ^ (n >> 13)) * 1274126177
	return n & 0xff
}

func grad(hash int32, x, y, z float32) float32 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := z
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func cellNoise(x, y, z float32) float32 {
	s := math32.Sin(x*12.9898+y*78.233+z*45.164) * 43758.5453
	return s - math32.Floor(s)
}
