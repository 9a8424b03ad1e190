package stl

import (
	"os"
	"path/filepath"
	"testing"
)

const asciiTetra = `solid tetra
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
facet normal 0 -1 0
  outer loop
    vertex 0 0 0
    vertex 0 0 1
    vertex 1 0 0
  endloop
endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.stl")
	if err := os.WriteFile(path, []byte(asciiTetra), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if model.Name != "tetra" {
		t.Errorf("name: expected %q, got %q", "tetra", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("triangle count: expected 2, got %d", model.TriangleCount())
	}
	if model.Mesh.VertexCount() != 6 {
		t.Errorf("vertex count: expected 6 (triangle soup), got %d", model.Mesh.VertexCount())
	}

	v := model.Mesh.Vertex(1)
	if v.X != 1 || v.Y != 0 || v.Z != 0 {
		t.Errorf("unexpected vertex 1: %v", v)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("expected error for missing file")
	}
}
