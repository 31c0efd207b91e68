package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	knight, ok := c.Template("knight")
	require.True(t, ok)
	assert.Equal(t, core.ClassMelee, knight.Class)
	assert.Equal(t, 190, knight.HP)

	archer, ok := c.Template("archer")
	require.True(t, ok)
	assert.Equal(t, core.ClassRanged, archer.Class)
	assert.Equal(t, 3, archer.Range)

	_, ok = c.Template("dragon")
	assert.False(t, ok)
}

func TestDefaultArmies(t *testing.T) {
	units := DefaultArmies()

	require.Len(t, units, 14, "five melee plus two archers per side")
	require.NoError(t, core.ValidateRoster(assignIDs(units)))

	players, enemies := 0, 0
	for _, u := range units {
		switch u.Team {
		case core.TeamPlayer:
			players++
			assert.True(t, core.InDeployZone(core.TeamPlayer, u.Position))
		case core.TeamEnemy:
			enemies++
			assert.True(t, core.InDeployZone(core.TeamEnemy, u.Position))
		}
	}
	assert.Equal(t, players, enemies, "armies are mirrored")
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
units:
  - id: grunt
    name: Grunt
    class: melee
    hp: 80
    damage: 15
    defense: 4
    speed: 2
    range: 1
  - id: slinger
    name: Slinger
    class: ranged
    hp: 60
    damage: 18
    defense: 2
    speed: 2
    range: 2
`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	grunt, ok := c.Template("grunt")
	require.True(t, ok)
	assert.Equal(t, 80, grunt.HP)

	slinger, ok := c.Template("slinger")
	require.True(t, ok)
	assert.Equal(t, core.ClassRanged, slinger.Class)
	assert.Equal(t, 2, slinger.Range)
}

func TestLoadCatalog_WithPlacements(t *testing.T) {
	path := writeCatalog(t, `
units:
  - id: grunt
    class: melee
    hp: 80
    damage: 15
    defense: 4
    range: 1
placements:
  - template: grunt
    team: player
    position: {row: 6, col: 3}
  - template: grunt
    team: enemy
    position: {row: 1, col: 3}
`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	units, err := c.Armies()
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, core.NewPosition(6, 3), units[0].Position)
	assert.Equal(t, core.TeamEnemy, units[1].Team)
}

func TestLoadCatalog_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no units":     `units: []`,
		"empty id":     "units:\n  - id: \"\"\n    class: melee\n    hp: 10\n    range: 1",
		"duplicate id": "units:\n  - {id: a, class: melee, hp: 10, range: 1}\n  - {id: a, class: melee, hp: 10, range: 1}",
		"zero hp":      "units:\n  - {id: a, class: melee, hp: 0, range: 1}",
		"zero range":   "units:\n  - {id: a, class: melee, hp: 10, range: 0}",
		"bad class":    "units:\n  - {id: a, class: cavalry, hp: 10, range: 1}",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, content))
			assert.Error(t, err)
		})
	}
}

func TestBuild_RejectsBadPlacements(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Build([]Placement{{TemplateID: "dragon", Team: core.TeamPlayer, Position: core.NewPosition(6, 0)}})
	assert.ErrorContains(t, err, "unknown template")

	_, err = c.Build([]Placement{{TemplateID: "knight", Team: core.TeamPlayer, Position: core.NewPosition(2, 0)}})
	assert.ErrorContains(t, err, "deployment zone")
}

func assignIDs(units []core.BattleUnit) []core.BattleUnit {
	out := core.CloneUnits(units)
	for i := range out {
		out[i].InstanceID = out[i].ID + "-" + string(rune('a'+i))
		out[i].CurrentHP = out[i].HP
	}
	return out
}
