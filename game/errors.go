package game

import "errors"

var (
	// ErrInvalidDimensions is returned by New when the requested row or
	// column count is not positive.
	ErrInvalidDimensions = errors.New("rows and cols must be positive")

	// ErrInvalidMineCount is returned by New when the requested mine count
	// leaves no safe cell, or no mine at all.
	ErrInvalidMineCount = errors.New("mine count must be between 1 and rows*cols - 1")
)
