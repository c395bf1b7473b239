// Package exercise holds the catalog of stretches shown during breaks
package exercise

import (
	_ "embed"
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"
)

// Category groups exercises by the kind of break they fit.
type Category string

const (
	Micro   Category = "micro"
	Stretch Category = "exercise"
	Long    Category = "long"
)

// Categories lists every category in display order.
var Categories = []Category{Micro, Stretch, Long}

// Exercise is a single instructional entry.
type Exercise struct {
	Title       string `yaml:"title"       json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Catalog maps each category to its exercises.
type Catalog struct {
	entries map[Category][]Exercise
}

//go:embed catalog.yaml
var catalogYAML []byte

var defaultCatalog *Catalog

func init() {
	c, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("exercise: embedded catalog is invalid: %v", err))
	}

	defaultCatalog = c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Parse decodes a YAML catalog. Every known category must have at least one
// entry with a title.
func Parse(b []byte) (*Catalog, error) {
	entries := make(map[Category][]Exercise)

	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, errInvalidCatalog.Wrap(err)
	}

	for _, cat := range Categories {
		list := entries[cat]
		if len(list) == 0 {
			return nil, errEmptyCategory.Fmt(cat)
		}

		for i := range list {
			if list[i].Title == "" {
				return nil, errMissingTitle.Fmt(i+1, cat)
			}
		}
	}

	return &Catalog{entries: entries}, nil
}

// List returns a copy of the exercises in the category.
func (c *Catalog) List(cat Category) []Exercise {
	return append([]Exercise(nil), c.entries[cat]...)
}

// Pick returns an exercise from the category chosen uniformly at random. It
// reports false if the category is empty or unknown.
func (c *Catalog) Pick(cat Category, r *rand.Rand) (Exercise, bool) {
	list := c.entries[cat]
	if len(list) == 0 {
		return Exercise{}, false
	}

	return list[r.IntN(len(list))], true
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, cat := range Categories {
		if string(cat) == s {
			return cat, nil
		}
	}

	return "", errUnknownCategory.Fmt(s)
}
