package core

// Board geometry is fixed for every battle. The player army deploys at the
// bottom of the grid and advances toward row 0; the enemy army deploys at
// the top and advances toward the last row. Collaborators that place units
// (lobby UI, roster builders) must honor the deployment zones; the engine
// only requires positions to be within the full board.
const (
	BoardRows = 8
	BoardCols = 8

	// Home rows. A team loses when an opposing unit stands on its home row.
	EnemyHomeRow  = 0
	PlayerHomeRow = BoardRows - 1

	// Deployment zones (inclusive row ranges).
	EnemyDeployMinRow  = 0
	EnemyDeployMaxRow  = 2
	PlayerDeployMinRow = BoardRows - 3
	PlayerDeployMaxRow = BoardRows - 1
)

// Team identifies which army a unit fights for. The zero value means
// "no team" and is only used for the winner field of a tick result.
type Team string

const (
	TeamNone   Team = ""
	TeamPlayer Team = "player"
	TeamEnemy  Team = "enemy"
)

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	switch t {
	case TeamPlayer:
		return TeamEnemy
	case TeamEnemy:
		return TeamPlayer
	default:
		return TeamNone
	}
}

// Valid reports whether t is one of the two playable teams.
func (t Team) Valid() bool {
	return t == TeamPlayer || t == TeamEnemy
}

// Direction returns the row delta a unit of the given team advances by.
// Player units march up the grid (-1), enemy units march down (+1).
func Direction(team Team) int {
	if team == TeamPlayer {
		return -1
	}
	return 1
}

// HomeRow returns the row the given team defends. An alive opposing unit
// standing on it ends the battle in the opponent's favor.
func HomeRow(team Team) int {
	if team == TeamPlayer {
		return PlayerHomeRow
	}
	return EnemyHomeRow
}

// GoalRow returns the row a unit of the given team must reach to win,
// which is simply the opposing team's home row.
func GoalRow(team Team) int {
	return HomeRow(team.Opponent())
}

// InBounds checks if a position is within the board.
func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < BoardRows && p.Col >= 0 && p.Col < BoardCols
}

// InDeployZone checks if a position is inside the given team's legal
// deployment zone. Not enforced by the engine; exposed for placement tools.
func InDeployZone(team Team, p Position) bool {
	if !InBounds(p) {
		return false
	}
	if team == TeamPlayer {
		return p.Row >= PlayerDeployMinRow && p.Row <= PlayerDeployMaxRow
	}
	return p.Row >= EnemyDeployMinRow && p.Row <= EnemyDeployMaxRow
}
