package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"solar-renderer/internal/mathutil"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOBJQuad(t *testing.T) {
	path := writeOBJ(t, `# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4 (dedup failed?)", len(m.Vertices))
	}
	// Fan triangulation: quad becomes two triangles.
	if len(m.Indices) != 6 {
		t.Fatalf("got %d indices, want 6", len(m.Indices))
	}

	for _, v := range m.Vertices {
		if v.Normal != (mathutil.Vec3{0, 0, 1}) {
			t.Fatalf("normal %v, want (0, 0, 1)", v.Normal)
		}
	}
}

func TestLoadOBJReferenceForms(t *testing.T) {
	tests := []struct {
		name string
		face string
	}{
		{"plain", "f 1 2 3"},
		{"with texcoords", "f 1/1/1 2/1/1 3/1/1"},
		{"negative indices", "f -3 -2 -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOBJ(t, `v 1 0 0
v 0 1 0
v 0 0 1
vt 0 0
vn 0 0 1
`+tt.face+"\n")

			m, err := LoadOBJ(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(m.Indices) != 3 {
				t.Fatalf("got %d indices, want 3", len(m.Indices))
			}
		})
	}
}

func TestLoadOBJNormalFallback(t *testing.T) {
	path := writeOBJ(t, `v 2 0 0
v 0 2 0
v 0 0 2
f 1 2 3
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	// Without vn records the normal falls back to the normalized position.
	if m.Vertices[0].Normal != (mathutil.Vec3{1, 0, 0}) {
		t.Fatalf("fallback normal %v, want (1, 0, 0)", m.Vertices[0].Normal)
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad vertex", "v 0 zero 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOBJ(writeOBJ(t, tt.content)); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Fatal("want error")
	}
}
