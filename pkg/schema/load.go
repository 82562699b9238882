package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File represents the structure of an input schema file.
//
//	inputs:
//	  input_image: string
//	  threshold: int
//	  weights: "[float]"
type File struct {
	Inputs map[string]string `yaml:"inputs" json:"inputs"`
}

// LoadFile reads a schema file (YAML or JSON, chosen by extension).
func LoadFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
}

// Parse decodes schema file content. YAML is assumed unless isJSON is set.
func Parse(data []byte, isJSON bool) (Schema, error) {
	var f File
	if isJSON {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse schema json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse schema yaml: %w", err)
		}
	}
	if len(f.Inputs) == 0 {
		return nil, fmt.Errorf("schema declares no inputs")
	}
	return ParseTypeMap(f.Inputs)
}
