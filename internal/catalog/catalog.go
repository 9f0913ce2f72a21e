// Package catalog describes the algorithms offered by the workbench. Entries
// are read from an embedded YAML file; Markdown descriptions are rendered and
// sanitized once at load time.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Algorithm families.
const (
	FamilySymmetric   = "symmetric"
	FamilyAsymmetric  = "asymmetric"
	FamilyKeyExchange = "key-exchange"
)

//go:embed algorithms.yaml
var algorithmsYAML []byte

// Algorithm is one catalog entry.
type Algorithm struct {
	Name        string        `yaml:"name" json:"name"`
	Title       string        `yaml:"title" json:"title"`
	Family      string        `yaml:"family" json:"family"`
	KeyHint     string        `yaml:"key_hint" json:"key_hint,omitempty"`
	Visual      bool          `yaml:"visual" json:"visual"`
	Summary     string        `yaml:"summary" json:"summary"`
	Description string        `yaml:"description" json:"description"`
	HTML        template.HTML `yaml:"-" json:"-"`
}

// Catalog holds the algorithms in file order.
type Catalog struct {
	algorithms []Algorithm
	byName     map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(algorithmsYAML)
}

// Parse builds a catalog from YAML, rendering each description to sanitized HTML.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Algorithms []Algorithm `yaml:"algorithms"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	policy := bluemonday.UGCPolicy()

	c := &Catalog{byName: make(map[string]int, len(doc.Algorithms))}
	for _, a := range doc.Algorithms {
		if a.Name == "" {
			return nil, fmt.Errorf("parse catalog: entry without a name")
		}
		if _, dup := c.byName[a.Name]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate algorithm %q", a.Name)
		}
		switch a.Family {
		case FamilySymmetric, FamilyAsymmetric, FamilyKeyExchange:
		default:
			return nil, fmt.Errorf("parse catalog: %s: unknown family %q", a.Name, a.Family)
		}

		var buf bytes.Buffer
		if err := md.Convert([]byte(a.Description), &buf); err != nil {
			return nil, fmt.Errorf("render %s description: %w", a.Name, err)
		}
		a.HTML = template.HTML(policy.SanitizeBytes(buf.Bytes()))

		c.byName[a.Name] = len(c.algorithms)
		c.algorithms = append(c.algorithms, a)
	}
	return c, nil
}

// All returns every algorithm in catalog order.
func (c *Catalog) All() []Algorithm {
	return append([]Algorithm(nil), c.algorithms...)
}

// ByFamily returns the algorithms of one family in catalog order.
func (c *Catalog) ByFamily(family string) []Algorithm {
	var out []Algorithm
	for _, a := range c.algorithms {
		if a.Family == family {
			out = append(out, a)
		}
	}
	return out
}

// Get looks up an algorithm by name.
func (c *Catalog) Get(name string) (Algorithm, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Algorithm{}, false
	}
	return c.algorithms[i], true
}
