package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardAttackResolver_DefenseReducesDamage(t *testing.T) {
	r := NewStandardAttackResolver()

	shield, hp := r.Resolve(32, 16, 0, 190)
	assert.Equal(t, 0, shield)
	assert.Equal(t, 174, hp, "32 damage against 16 defense takes 16 health")
}

func TestStandardAttackResolver_MinimumOneDamage(t *testing.T) {
	r := NewStandardAttackResolver()

	_, hp := r.Resolve(10, 50, 0, 100)
	assert.Equal(t, 99, hp, "overwhelming defense still chips one health")
}

func TestStandardAttackResolver_ShieldAbsorbsFirst(t *testing.T) {
	r := NewStandardAttackResolver()

	shield, hp := r.Resolve(26, 6, 30, 150)
	assert.Equal(t, 10, shield)
	assert.Equal(t, 150, hp, "health untouched while shield holds")

	shield, hp = r.Resolve(26, 6, shield, hp)
	assert.Equal(t, 0, shield)
	assert.Equal(t, 140, hp, "overflow past the shield hits health")
}

func TestStandardAttackResolver_HealthClampedAtZero(t *testing.T) {
	r := NewStandardAttackResolver()

	shield, hp := r.Resolve(100, 0, 0, 30)
	assert.Equal(t, 0, shield)
	assert.Equal(t, 0, hp)
}
