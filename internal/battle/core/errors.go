package core

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateInstanceID = errors.New("duplicate unit instance id")
	ErrMissingInstanceID   = errors.New("unit has no instance id")
	ErrOutOfBounds         = errors.New("unit position out of board bounds")
	ErrCellOccupied        = errors.New("two alive units share a cell")
	ErrInvalidTeam         = errors.New("invalid team")
	ErrEmptyRoster         = errors.New("roster has no units")
	ErrBattleOver          = errors.New("battle is over")
)

// WrapUnitError adds unit context to a roster validation failure.
func WrapUnitError(instanceID string, p Position, err error) error {
	return fmt.Errorf("unit %q at %s: %w", instanceID, p, err)
}

// WrapTickError adds turn context to a rejected tick.
func WrapTickError(turn int, err error) error {
	return fmt.Errorf("tick %d rejected: %w", turn, err)
}
