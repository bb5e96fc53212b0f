package critrate

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the read-only set of selectable buffs.
// It is built once and shared; nothing mutates it after construction.
type Catalog struct {
	byID    map[string]domain.BuffDefinition
	ordered []domain.BuffDefinition
}

type catalogFile struct {
	Buffs []domain.BuffDefinition `yaml:"buffs"`
}

// defaultCatalog is parsed from the embedded catalog.yaml at init.
var defaultCatalog = mustParseCatalog(catalogYAML)

// DefaultCatalog returns the process-wide buff catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func mustParseCatalog(data []byte) *Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("embedded buff catalog is invalid: %v", err))
	}
	return c
}

// ParseCatalog decodes and validates a YAML buff catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode buff catalog: %w", err)
	}
	return NewCatalog(file.Buffs)
}

// NewCatalog builds a catalog from definitions, rejecting duplicates,
// unknown kinds and non-positive magnitudes.
func NewCatalog(buffs []domain.BuffDefinition) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]domain.BuffDefinition, len(buffs)),
		ordered: make([]domain.BuffDefinition, 0, len(buffs)),
	}

	for _, b := range buffs {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: buff %q has no id", domain.ErrInvalidInput, b.Name)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate buff id %q", domain.ErrInvalidInput, b.ID)
		}
		if !b.Kind.Valid() {
			return nil, fmt.Errorf("%w: buff %q has unknown kind %q", domain.ErrInvalidInput, b.ID, b.Kind)
		}
		if b.Magnitude <= 0 {
			return nil, fmt.Errorf("%w: buff %q magnitude must be positive", domain.ErrInvalidInput, b.ID)
		}
		c.byID[b.ID] = b
		c.ordered = append(c.ordered, b)
	}

	sort.SliceStable(c.ordered, func(i, j int) bool {
		return idLess(c.ordered[i].ID, c.ordered[j].ID)
	})

	return c, nil
}

// idLess orders numeric ids numerically ("2" before "10"), anything else lexically after them
func idLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

// Get returns the buff registered under id
func (c *Catalog) Get(id string) (domain.BuffDefinition, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// All returns every buff in id order. The returned slice is a copy.
func (c *Catalog) All() []domain.BuffDefinition {
	out := make([]domain.BuffDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of buffs in the catalog
func (c *Catalog) Len() int {
	return len(c.ordered)
}
