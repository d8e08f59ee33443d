// Package categories holds the canonical category registry: the single
// structure mapping category names to display colors, consumed by both the
// spreadsheet validator and the formatting rules so the two can never drift
// apart.
package categories

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Fallback is the category assumed when a name is unknown.
const Fallback = "Miscellaneous"

// Subscription is the category whose rows get the fixed highlight fill
// during spreadsheet formatting.
const Subscription = "Digital Subscriptions"

// Entry is one canonical category with its display color.
type Entry struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color" validate:"required,hexcolor"`
}

// Registry is the ordered set of canonical categories.
type Registry struct {
	entries []Entry
	colors  map[string]string
}

var defaultEntries = []Entry{
	{Name: "Food & Beverages", Color: "#D9D9D9"},
	{Name: "Books & Literature", Color: "#E9A9FF"},
	{Name: "Gaming", Color: "#BBE33D"},
	{Name: "Digital Subscriptions", Color: "#FBFFA9"},
	{Name: "Movies & Media", Color: "#A05EFF"},
	{Name: "Music & Audio", Color: "#FFA9F2"},
	{Name: "Electronics & Accessories", Color: "#729FCF"},
	{Name: "Clothing & Apparel", Color: "#D9D9D9"},
	{Name: "Health & Personal Care", Color: "#A9FFC4"},
	{Name: "Collectibles", Color: "#FFC85D"},
	{Name: "Miscellaneous", Color: "#D9D9D9"},
}

// Default returns the built-in registry of the eleven canonical categories.
func Default() *Registry {
	reg, err := New(defaultEntries)
	if err != nil {
		// Unreachable unless the built-in table itself is broken.
		panic(err)
	}
	return reg
}

// New builds a registry from entries, validating each one.
func New(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("category registry cannot be empty")
	}

	validate := validator.New()
	colors := make(map[string]string, len(entries))
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("invalid category entry %d (%s): %w", i, e.Name, err)
		}
		if _, exists := colors[e.Name]; exists {
			return nil, fmt.Errorf("duplicate category name: %s", e.Name)
		}
		colors[e.Name] = e.Color
	}

	if _, ok := colors[Fallback]; !ok {
		return nil, fmt.Errorf("category registry must include %q", Fallback)
	}

	return &Registry{entries: entries, colors: colors}, nil
}

// Load reads a registry from a YAML file. A missing file is an error;
// callers wanting the built-in palette should use Default.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(entries),
	}).Debug("Loaded category registry")

	return New(entries)
}

// Save writes the registry to a YAML file.
func (r *Registry) Save(path string) error {
	data, err := yaml.Marshal(r.entries)
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}

// Names returns the category names in registry order. This is the dropdown
// validation list applied to the Category column.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Contains reports whether name is a canonical category.
func (r *Registry) Contains(name string) bool {
	_, ok := r.colors[strings.TrimSpace(name)]
	return ok
}

// Color returns the display color for a category, falling back to the
// Miscellaneous color for unknown names.
func (r *Registry) Color(name string) string {
	if c, ok := r.colors[strings.TrimSpace(name)]; ok {
		return c
	}
	return r.colors[Fallback]
}

// FillColor returns the color as a bare uppercase hex code, the form the
// spreadsheet styling layer expects.
func (r *Registry) FillColor(name string) string {
	return strings.ToUpper(strings.TrimPrefix(r.Color(name), "#"))
}

// Entries returns a copy of the registry entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
