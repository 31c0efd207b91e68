package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// Catalog is the set of unit templates armies are built from, plus
// optional placements overriding the stock mirrored armies. Templates are
// team-agnostic; teams are assigned when units are placed.
type Catalog struct {
	Units      []core.UnitTemplate `yaml:"units"`
	Placements []Placement         `yaml:"placements,omitempty"`
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DefaultCatalog returns the built-in unit templates.
func DefaultCatalog() *Catalog {
	return &Catalog{Units: []core.UnitTemplate{
		{ID: "knight", Name: "Knight", Class: core.ClassMelee, HP: 190, Damage: 32, Defense: 16, Speed: 2, Range: 1},
		{ID: "squire", Name: "Squire", Class: core.ClassMelee, HP: 120, Damage: 20, Defense: 8, Speed: 3, Range: 1},
		{ID: "pikeman", Name: "Pikeman", Class: core.ClassMelee, HP: 150, Damage: 26, Defense: 12, Shield: 30, Speed: 2, Range: 1},
		{ID: "archer", Name: "Archer", Class: core.ClassRanged, HP: 100, Damage: 24, Defense: 6, Speed: 2, Range: 3},
	}}
}

// Template looks up a template by catalog ID.
func (c *Catalog) Template(id string) (core.UnitTemplate, bool) {
	for _, t := range c.Units {
		if t.ID == id {
			return t, true
		}
	}
	return core.UnitTemplate{}, false
}

func (c *Catalog) validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("catalog has no units")
	}
	seen := make(map[string]struct{}, len(c.Units))
	for _, t := range c.Units {
		if t.ID == "" {
			return fmt.Errorf("catalog unit with empty id")
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate catalog id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.HP <= 0 {
			return fmt.Errorf("catalog unit %q: hp must be positive", t.ID)
		}
		if t.Range < 1 {
			return fmt.Errorf("catalog unit %q: range must be at least 1", t.ID)
		}
		if t.Class != core.ClassMelee && t.Class != core.ClassRanged {
			return fmt.Errorf("catalog unit %q: unknown class %q", t.ID, t.Class)
		}
	}
	return nil
}

// Placement positions one catalog unit for a team. Instance IDs are left
// empty here and assigned at battle initialization.
type Placement struct {
	TemplateID string        `yaml:"template"`
	Team       core.Team     `yaml:"team"`
	Position   core.Position `yaml:"position"`
}

// Build turns placements into battle units.
func (c *Catalog) Build(placements []Placement) ([]core.BattleUnit, error) {
	units := make([]core.BattleUnit, 0, len(placements))
	for _, p := range placements {
		tmpl, ok := c.Template(p.TemplateID)
		if !ok {
			return nil, fmt.Errorf("unknown template %q", p.TemplateID)
		}
		if !core.InDeployZone(p.Team, p.Position) {
			return nil, fmt.Errorf("template %q at %s: outside %s deployment zone", p.TemplateID, p.Position, p.Team)
		}
		units = append(units, core.BattleUnit{
			UnitTemplate: tmpl,
			Team:         p.Team,
			Position:     p.Position,
		})
	}
	return units, nil
}

// Armies builds the catalog's placements into battle units, falling back
// to the stock mirrored layout when the catalog declares none.
func (c *Catalog) Armies() ([]core.BattleUnit, error) {
	placements := c.Placements
	if len(placements) == 0 {
		placements = standardPlacements()
	}
	return c.Build(placements)
}

// DefaultArmies builds two mirrored armies from the default catalog: a
// front line of melee units backed by archers on each side.
func DefaultArmies() []core.BattleUnit {
	units, err := DefaultCatalog().Armies()
	if err != nil {
		// Default placements are compile-time data; a failure here is a bug.
		panic(err)
	}
	return units
}

func standardPlacements() []Placement {
	var placements []Placement

	front := []string{"knight", "pikeman", "squire", "pikeman", "knight"}
	for i, id := range front {
		col := 1 + i
		placements = append(placements,
			Placement{TemplateID: id, Team: core.TeamPlayer, Position: core.NewPosition(core.PlayerDeployMinRow, col)},
			Placement{TemplateID: id, Team: core.TeamEnemy, Position: core.NewPosition(core.EnemyDeployMaxRow, col)},
		)
	}
	for _, col := range []int{2, 4} {
		placements = append(placements,
			Placement{TemplateID: "archer", Team: core.TeamPlayer, Position: core.NewPosition(core.PlayerDeployMinRow+1, col)},
			Placement{TemplateID: "archer", Team: core.TeamEnemy, Position: core.NewPosition(core.EnemyDeployMaxRow-1, col)},
		)
	}
	return placements
}
