package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/rollpath/internal/dice Roller
//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/rollpath/internal/dice Source

// Roller rolls dice
type Roller interface {
	// RollOne returns a uniformly distributed value in [1, sides]
	RollOne(sides int) (int, error)

	// RollMany rolls quantity dice and returns the values in roll order
	RollMany(quantity, sides int) ([]int, error)

	// Sum totals a sequence of rolls
	Sum(rolls []int) (int, error)

	// Info describes the random source in use
	Info() RandomInfo
}

// Source is a sampling strategy producing values in [1, sides].
// Callers guarantee 2 <= sides <= MaxSides.
type Source interface {
	NextUniform(sides int) (int, error)
	Name() string
	Strong() bool
}
