// internal/recipe/recipe.go
// Package recipe loads, resolves, and normalizes benchmark recipes.
//
// A recipe is a YAML mapping with a `defaults` section describing the
// serving endpoint (notably its port) and a `benchmark` section naming a
// framework and its arguments. Argument order in the file is preserved
// through decoding so built command lines stay stable.
package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPort = 8000

// Recipe is one parsed recipe document.
type Recipe struct {
	Defaults  Defaults   `yaml:"defaults"`
	Benchmark *Benchmark `yaml:"benchmark"`

	// Name and Path identify the resolved file; set by Load.
	Name string `yaml:"-"`
	Path string `yaml:"-"`
}

// Defaults carries the serving configuration the launcher cares about.
// Other serving keys are ignored; the launcher never rewrites recipes.
type Defaults struct {
	Port int `yaml:"port"`
}

// Benchmark is the recipe's benchmark section.
type Benchmark struct {
	Enabled   bool   `yaml:"enabled"`
	Framework string `yaml:"framework"`
	Args      Args   `yaml:"args"`
}

// Load reads and parses the recipe file at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var recipe Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("parse recipe %s: %w", path, err)
	}
	recipe.Path = path
	base := filepath.Base(path)
	recipe.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return &recipe, nil
}

// BaseURL returns the OpenAI-compatible base URL for the recipe's
// serving endpoint, falling back to port 8000 when defaults.port is
// absent.
func (r *Recipe) BaseURL() string {
	port := r.Defaults.Port
	if port <= 0 {
		port = defaultPort
	}
	return fmt.Sprintf("http://localhost:%d/v1", port)
}
