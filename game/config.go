package game

// Config holds the parameters for a new board.
type Config struct {
	Rows, Cols int
	NumMines   int

	// Seed for mine placement; 0 seeds from the clock
	Seed int64
}

// NewConfig returns the classic beginner configuration.
func NewConfig() Config {
	return Config{
		Rows:     9,
		Cols:     9,
		NumMines: 10,
	}
}
