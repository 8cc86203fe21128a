package card

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the static, read-only card dataset the engine consumes. It is
// swappable without changing game logic, provided Validate passes.
type Catalog struct {
	Crises  []CrisisCard `json:"crises"`
	Actions []ActionCard `json:"actions"`
}

// LoadCatalog reads a catalog from a JSON file and validates it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the dataset contract at startup so broken content is a
// boot error, never a play-time error.
func (c *Catalog) Validate() error {
	if len(c.Crises) == 0 {
		return fmt.Errorf("catalog has no crisis cards")
	}
	if len(c.Actions) == 0 {
		return fmt.Errorf("catalog has no action cards")
	}
	for i, crisis := range c.Crises {
		if crisis.Title == "" {
			return fmt.Errorf("crisis %d has no title", i)
		}
		if crisis.Level < 1 || crisis.Level > 3 {
			return fmt.Errorf("crisis %q has invalid level %d", crisis.Title, crisis.Level)
		}
		if len(crisis.Needs) == 0 {
			return fmt.Errorf("crisis %q has no needs", crisis.Title)
		}
		for kind, count := range crisis.Needs {
			if !kind.Valid() {
				return fmt.Errorf("crisis %q needs unknown resource %q", crisis.Title, kind)
			}
			if count <= 0 {
				return fmt.Errorf("crisis %q has non-positive need for %q", crisis.Title, kind)
			}
		}
	}
	for i, action := range c.Actions {
		if action.Title == "" {
			return fmt.Errorf("action card %d has no title", i)
		}
		if !action.EffectType.Valid() {
			return fmt.Errorf("action card %q has unknown effect type %q", action.Title, action.EffectType)
		}
	}
	for _, role := range Roles() {
		if n := len(c.ActionsForRole(role)); n < 3 {
			return fmt.Errorf("role %s can draw only %d action cards, need at least 3", role, n)
		}
	}
	return nil
}

// ActionsForRole filters the action cards down to the categories the role
// is permitted to draw.
func (c *Catalog) ActionsForRole(r Role) []ActionCard {
	pool := make([]ActionCard, 0, len(c.Actions))
	for _, a := range c.Actions {
		if r.CanDraw(a.Type) {
			pool = append(pool, a)
		}
	}
	return pool
}

// CrisisTitles returns the full set of crisis titles.
func (c *Catalog) CrisisTitles() map[string]bool {
	titles := make(map[string]bool, len(c.Crises))
	for _, crisis := range c.Crises {
		titles[crisis.Title] = true
	}
	return titles
}
