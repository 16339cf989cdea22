package mathutil

import "github.com/chewxy/math32"

// Vec2 is a 2-component float32 vector.
type Vec2 [2]float32

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (a Vec2) Dot(b Vec2) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the scalar z-component of the 2D cross product.
func (a Vec2) Cross(b Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

func (v Vec2) IsFinite() bool {
	return !math32.IsInf(v[0], 0) && !math32.IsNaN(v[0]) &&
		!math32.IsInf(v[1], 0) && !math32.IsNaN(v[1])
}
