package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionKey(t *testing.T) {
	assert.Equal(t, "5-4", NewPosition(5, 4).Key())
	assert.Equal(t, "0-0", NewPosition(0, 0).Key())
	assert.Equal(t, "7-2", NewPosition(7, 2).Key())
}

func TestPositionManhattanTo(t *testing.T) {
	a := NewPosition(2, 3)

	assert.Equal(t, 0, a.ManhattanTo(a))
	assert.Equal(t, 1, a.ManhattanTo(NewPosition(3, 3)))
	assert.Equal(t, 1, a.ManhattanTo(NewPosition(2, 2)))
	assert.Equal(t, 4, a.ManhattanTo(NewPosition(4, 5)))
	assert.Equal(t, 5, a.ManhattanTo(NewPosition(0, 0)))
}

func TestPositionEqual(t *testing.T) {
	assert.True(t, NewPosition(1, 2).Equal(NewPosition(1, 2)))
	assert.False(t, NewPosition(1, 2).Equal(NewPosition(2, 1)))
}
