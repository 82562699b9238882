package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	content := []byte(`inputs:
  input_image: string
  threshold: integer
  weights: "[float]"
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := s.Fields(); len(got) != 3 || got[0] != "input_image" || got[2] != "weights" {
		t.Errorf("Fields() = %v", got)
	}
	if s["weights"].Name() != "[float]" {
		t.Errorf("weights = %s, want [float]", s["weights"].Name())
	}
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.json")
	if err := os.WriteFile(path, []byte(`{"inputs":{"method":"string"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if s["method"].Name() != "string" {
		t.Errorf("method = %s, want string", s["method"].Name())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("inputs: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("LoadFile() should fail when no inputs are declared")
	}

	if _, err := Parse([]byte(`{"inputs":`), true); err == nil {
		t.Error("Parse() should fail for broken json")
	}
	if _, err := Parse([]byte("inputs:\n  mask: image\n"), false); err == nil {
		t.Error("Parse() should fail for unsupported types")
	}
}
