package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecNear(t *testing.T, got, want Vec3, tol float32) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math32.Abs(got[i]-want[i]) > tol {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Identity().Translate(Vec3{1, 2, 3}).RotateAxis(0.7, Vec3{0, 1, 0})
	if got := Mat4Mul(Mat4Identity(), m); got != m {
		t.Fatalf("I*M changed the matrix: %v", got)
	}
	if got := Mat4Mul(m, Mat4Identity()); got != m {
		t.Fatalf("M*I changed the matrix: %v", got)
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Mat4Identity().Translate(Vec3{10, -5, 3})
	vecNear(t, m.MulPoint(Vec3{1, 1, 1}), Vec3{11, -4, 4}, 1e-5)

	// Directions ignore translation.
	vecNear(t, m.MulDir(Vec3{1, 1, 1}), Vec3{1, 1, 1}, 1e-5)
}

func TestRotateAxis(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		axis  Vec3
		in    Vec3
		want  Vec3
	}{
		{"quarter turn about Y", math32.Pi / 2, Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"quarter turn about X", math32.Pi / 2, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"half turn about Z", math32.Pi, Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
		{"axis is normalized", math32.Pi, Vec3{0, 0, 10}, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mat4Identity().RotateAxis(tt.angle, tt.axis)
			vecNear(t, m.MulPoint(tt.in), tt.want, 1e-5)
		})
	}
}

func TestScaleUniform(t *testing.T) {
	m := Mat4Identity().ScaleUniform(2.5)
	vecNear(t, m.MulPoint(Vec3{1, -2, 4}), Vec3{2.5, -5, 10}, 1e-5)
}

func TestComposeOrder(t *testing.T) {
	// Translate then scale on the right: point is scaled first, then moved.
	m := Mat4Identity().Translate(Vec3{100, 0, 0}).ScaleUniform(2)
	vecNear(t, m.MulPoint(Vec3{1, 0, 0}), Vec3{102, 0, 0}, 1e-5)
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 1000.0
	p := Perspective(math32.Pi/4, 16.0/9.0, near, far)

	tests := []struct {
		name  string
		z     float32
		wantZ float32
	}{
		{"near plane maps to -1", -near, -1},
		{"far plane maps to +1", -far, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := p.MulVec4(Vec4{0, 0, tt.z, 1})
			if clip[3] <= 0 {
				t.Fatalf("w = %v, want positive for point in front of camera", clip[3])
			}
			ndcZ := clip[2] / clip[3]
			if math32.Abs(ndcZ-tt.wantZ) > 1e-3 {
				t.Fatalf("ndc z = %v, want %v", ndcZ, tt.wantZ)
			}
		})
	}
}

func TestPerspectiveWEqualsViewDepth(t *testing.T) {
	p := Perspective(math32.Pi/3, 1, 0.1, 100)
	clip := p.MulVec4(Vec4{3, -2, -7, 1})
	if math32.Abs(clip[3]-7) > 1e-5 {
		t.Fatalf("w = %v, want 7", clip[3])
	}
}

func TestLookAt(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	// The look-at target lands on the -Z axis in front of the camera.
	vecNear(t, view.MulPoint(Vec3{}), Vec3{0, 0, -5}, 1e-5)
	// The eye maps to the origin.
	vecNear(t, view.MulPoint(Vec3{0, 0, 5}), Vec3{}, 1e-5)
	// A point to the camera's right stays on +X.
	vecNear(t, view.MulPoint(Vec3{1, 0, 5}), Vec3{1, 0, 0}, 1e-5)
}

func TestIsIdentity(t *testing.T) {
	if !Mat4Identity().IsIdentity() {
		t.Fatal("identity not recognized")
	}
	if Mat4Identity().Translate(Vec3{0, 0, 1e-3}).IsIdentity() {
		t.Fatal("translated matrix reported as identity")
	}
}
