package weather

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Catalog is the set of presets available to generation: the built-ins plus
// any custom presets whose id is not already taken. Built-ins win on id
// collision.
type Catalog struct {
	presets []Preset
	byID    map[string]int
}

func NewCatalog(custom ...Preset) *Catalog {
	builtins := BuiltinPresets()
	c := &Catalog{
		presets: make([]Preset, 0, len(builtins)+len(custom)),
		byID:    make(map[string]int, len(builtins)+len(custom)),
	}
	for _, p := range builtins {
		c.add(p)
	}
	for _, p := range custom {
		c.add(p)
	}
	return c
}

// DefaultCatalog holds only the built-in presets.
func DefaultCatalog() *Catalog {
	return NewCatalog()
}

func catalogOrDefault(c *Catalog) *Catalog {
	if c == nil {
		return DefaultCatalog()
	}
	return c
}

func (c *Catalog) add(p Preset) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return
	}
	if _, exists := c.byID[id]; exists {
		return
	}
	p.ID = id
	c.byID[id] = len(c.presets)
	c.presets = append(c.presets, p)
}

func (c *Catalog) Lookup(id string) (Preset, bool) {
	if c == nil {
		return Preset{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Preset{}, false
	}
	return c.presets[idx], true
}

// Resolve is Lookup with an error that suggests the closest known id.
func (c *Catalog) Resolve(id string) (Preset, error) {
	if p, ok := c.Lookup(id); ok {
		return p, nil
	}
	if suggestion := c.Suggest(id); suggestion != "" {
		return Preset{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownPreset, id, suggestion)
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// Suggest returns the known id closest to id by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func (c *Catalog) Suggest(id string) string {
	if c == nil {
		return ""
	}
	ids := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		ids = append(ids, p.ID)
	}
	return ClosestID(id, ids)
}

// Presets returns the catalog in order, built-ins first.
func (c *Catalog) Presets() []Preset {
	if c == nil {
		return nil
	}
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.presets)
}

// ByCategory returns the presets sharing category, in catalog order.
func (c *Catalog) ByCategory(category string) []Preset {
	if c == nil || category == "" {
		return nil
	}
	var out []Preset
	for _, p := range c.presets {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range c.presets {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// ClosestID picks the candidate within a length-scaled edit distance of id.
func ClosestID(id string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
