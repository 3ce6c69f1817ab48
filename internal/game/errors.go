package game

import "errors"

// Contract violations. The engine panics with an error wrapping one of these
// when a caller passes an index it could never legitimately produce.
var (
	ErrCellOutOfRange = errors.New("game: cell index out of range")
	ErrStepOutOfRange = errors.New("game: history step out of range")
)
