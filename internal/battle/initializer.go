package battle

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// IDSource produces unit instance IDs. Injectable so tests and replay
// tooling can pin IDs; the default draws random UUIDs.
type IDSource interface {
	NewID() string
}

// UUIDSource is the default IDSource.
type UUIDSource struct{}

// NewID returns a fresh random UUID string.
func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SequentialIDSource hands out prefix-0, prefix-1, ... for reproducible
// battles in tests and verification tooling.
type SequentialIDSource struct {
	Prefix string
	next   int
}

// NewID returns the next sequential ID.
func (s *SequentialIDSource) NewID() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "unit"
	}
	id := prefix + "-" + strconv.Itoa(s.next)
	s.next++
	return id
}

// InitOption configures InitializeBattle.
type InitOption func(*initOptions)

type initOptions struct {
	rng *rand.Rand
	ids IDSource
}

// WithRNG injects the random source used for the starting-team coin flip,
// the only nondeterminism in the whole engine.
func WithRNG(rng *rand.Rand) InitOption {
	return func(o *initOptions) { o.rng = rng }
}

// WithIDSource injects the instance ID generator.
func WithIDSource(ids IDSource) InitOption {
	return func(o *initOptions) { o.ids = ids }
}

// InitializeBattle seeds a battle from an externally supplied roster: the
// units are cloned with health and shield reset to their template values,
// units without an instance ID get one assigned, and a single coin flip
// picks the starting team. Everything after this call is deterministic.
func InitializeBattle(units []core.BattleUnit, opts ...InitOption) (BattleState, error) {
	o := initOptions{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		ids: UUIDSource{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	fresh := core.CloneUnits(units)
	for i := range fresh {
		u := &fresh[i]
		if u.InstanceID == "" {
			u.InstanceID = o.ids.NewID()
		}
		u.CurrentHP = u.HP
		u.CurrentShield = u.Shield
	}

	if err := core.ValidateRoster(fresh); err != nil {
		return BattleState{}, err
	}

	startingTeam := core.TeamPlayer
	if o.rng.Intn(2) == 1 {
		startingTeam = core.TeamEnemy
	}

	return BattleState{
		Units:       fresh,
		CurrentTeam: startingTeam,
		TurnNumber:  1,
	}, nil
}
