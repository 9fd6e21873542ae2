// Package recommendation serves the canned advice attached to each stress
// level, together with the daily wellness tips. The content is embedded
// YAML and is checked at load time so that every level has an entry.
package recommendation

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/blaisecz/stress-detector/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog maps every stress level to its recommendation.
type Catalog struct {
	levels map[domain.StressLevel]domain.Recommendation
	tips   []string
}

type catalogFile struct {
	Levels map[string]domain.Recommendation `yaml:"levels"`
	Tips   []string                         `yaml:"tips"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault is like Default but panics if the embedded catalog is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog and rejects it unless every level is covered.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode recommendation catalog: %w", err)
	}

	c := &Catalog{
		levels: make(map[domain.StressLevel]domain.Recommendation, len(domain.StressLevels)),
		tips:   file.Tips,
	}
	for name, rec := range file.Levels {
		level, err := domain.ParseStressLevel(name)
		if err != nil {
			return nil, fmt.Errorf("recommendation catalog: %w", err)
		}
		rec.Level = level
		c.levels[level] = rec
	}

	for _, level := range domain.StressLevels {
		rec, ok := c.levels[level]
		if !ok {
			return nil, fmt.Errorf("recommendation catalog: missing level %q", level)
		}
		if rec.Title == "" || len(rec.Items) == 0 {
			return nil, fmt.Errorf("recommendation catalog: level %q has no content", level)
		}
	}
	if len(c.tips) == 0 {
		return nil, fmt.Errorf("recommendation catalog: no wellness tips")
	}

	return c, nil
}

// For returns the recommendation for a level.
func (c *Catalog) For(level domain.StressLevel) (domain.Recommendation, error) {
	rec, ok := c.levels[level]
	if !ok {
		return domain.Recommendation{}, fmt.Errorf("%w: %q", domain.ErrUnknownLevel, level)
	}
	return rec, nil
}

// Tips returns the daily wellness tips.
func (c *Catalog) Tips() []string {
	return c.tips
}
