package scene

import (
	"testing"

	"solar-renderer/internal/mathutil"
)

func TestTrailSampleInterval(t *testing.T) {
	tr := NewTrail(100)

	// Samples closer together than the interval are dropped.
	tr.Record(mathutil.Vec3{0, 0, 0}, 0)
	tr.Record(mathutil.Vec3{1, 0, 0}, 0.05)
	tr.Record(mathutil.Vec3{2, 0, 0}, 0.09)
	if len(tr.positions) != 1 {
		t.Fatalf("got %d samples, want 1", len(tr.positions))
	}

	tr.Record(mathutil.Vec3{3, 0, 0}, 0.2)
	if len(tr.positions) != 2 {
		t.Fatalf("got %d samples, want 2", len(tr.positions))
	}
}

func TestTrailBounded(t *testing.T) {
	tr := NewTrail(5)

	for i := 0; i < 20; i++ {
		tr.Record(mathutil.Vec3{float32(i), 0, 0}, float32(i))
	}

	if len(tr.positions) != 5 {
		t.Fatalf("got %d samples, want cap of 5", len(tr.positions))
	}
	// Oldest samples fall off the tail.
	if tr.positions[0][0] != 15 || tr.positions[4][0] != 19 {
		t.Fatalf("window %v..%v, want 15..19", tr.positions[0][0], tr.positions[4][0])
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(10)
	tr.Record(mathutil.Vec3{1, 2, 3}, 0)
	tr.Clear()
	if len(tr.positions) != 0 {
		t.Fatal("clear left samples behind")
	}
}

func TestSkyboxDeterministic(t *testing.T) {
	a := NewSkybox(100, 7)
	b := NewSkybox(100, 7)

	if len(a.stars) != 100 || len(b.stars) != 100 {
		t.Fatalf("star counts %d, %d", len(a.stars), len(b.stars))
	}
	for i := range a.stars {
		if a.stars[i] != b.stars[i] {
			t.Fatalf("star %d differs between same-seed skyboxes", i)
		}
	}

	c := NewSkybox(100, 8)
	same := 0
	for i := range a.stars {
		if a.stars[i] == c.stars[i] {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical skyboxes")
	}
}

func TestSkyboxStarProperties(t *testing.T) {
	s := NewSkybox(200, 42)
	for i, st := range s.stars {
		if l := st.direction.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("star %d direction length %v", i, l)
		}
		if st.brightness < 150 {
			t.Fatalf("star %d brightness %d below floor", i, st.brightness)
		}
		if st.size < 1 || st.size > 2 {
			t.Fatalf("star %d size %d", i, st.size)
		}
	}
}
