package game

import "errors"

// Rejections returned by the controller. A rejected call leaves the state untouched.
var (
	ErrIllegalMove          = errors.New("illegal move")
	ErrTileOccupied         = errors.New("tile occupied")
	ErrNotYourUnit          = errors.New("not your unit")
	ErrAlreadyPlaced        = errors.New("capital already placed")
	ErrConflictingTerritory = errors.New("conflicting territory")
	ErrOffBoard             = errors.New("off board")
	ErrNoSelection          = errors.New("no unit selected")
	ErrGameOver             = errors.New("game is over")
)
