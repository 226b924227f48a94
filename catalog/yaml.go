package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// YAMLSource reads a catalog document of the form `items: [...]`.
type YAMLSource struct {
	data []byte
	path string
}

// DefaultSource serves the built-in demo catalog.
func DefaultSource() *YAMLSource {
	return &YAMLSource{data: defaultMenu}
}

// NewYAMLSource serves the catalog in data.
func NewYAMLSource(data []byte) *YAMLSource {
	return &YAMLSource{data: data}
}

// NewYAMLFileSource reads the catalog from path on every Load.
func NewYAMLFileSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

func (s *YAMLSource) Load(ctx context.Context) ([]models.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := s.data
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
		}
		data = b
	}

	var doc struct {
		Items []itemDocument `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return toModels(doc.Items)
}
