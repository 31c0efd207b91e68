package core

// ActionType represents the kind of intent a unit produced this tick.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionAttack
)

// String returns the string representation of an ActionType.
func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// AttackKind distinguishes melee strikes from ranged shots in the hit log.
type AttackKind string

const (
	AttackMelee  AttackKind = "melee"
	AttackRanged AttackKind = "ranged"
)

// Action is a decided-but-not-yet-applied intent for one unit. Actions are
// collected against a frozen snapshot and applied in a separate pass, so
// the decision logic never observes its own in-progress mutations.
type Action struct {
	ActorID    string
	Type       ActionType
	TargetID   string     // attack only
	AttackKind AttackKind // attack only
	To         Position   // move only
}
