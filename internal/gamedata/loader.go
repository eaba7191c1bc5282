// Package gamedata provides the embedded game catalog and utilities for loading it.
package gamedata

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var dataFS embed.FS

// Load decodes a YAML file from the embedded filesystem.
// Keys that do not map to a field of T are rejected.
func Load[T any](filename string) (T, error) {
	var result T

	f, err := dataFS.Open(filename)
	if err != nil {
		return result, fmt.Errorf("open embedded %s: %w", filename, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}
	return result, nil
}
