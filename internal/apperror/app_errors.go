package apperror

import "errors"

var (
	ErrInvalidColumn     = errors.New("invalid column index")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrColumnFull        = errors.New("column is full")
	ErrGameOver          = errors.New("game is already over")
	ErrInvalidDimensions = errors.New("board must be at least 4x4")
	ErrCorruptSnapshot   = errors.New("corrupt game snapshot")
)
