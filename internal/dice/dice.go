// Package dice rolls dice using a strong source when one is available and a
// seeded fallback otherwise.
package dice

import (
	"crypto/rand"
	"fmt"
	"io"
	"math"
	"time"
)

// Bounds enforced by RollOne and RollMany
const (
	MinQuantity = 1
	MaxQuantity = 20
	MinSides    = 2

	// MaxSides is the largest die a 32-bit draw can sample
	MaxSides = math.MaxUint32
)

// Config for dice roller
type Config struct {
	// Source overrides strategy selection, mainly for testing
	Source Source

	// Entropy is the strong reader to probe, defaults to crypto/rand
	Entropy io.Reader

	// ForceFallback skips the strong source
	ForceFallback bool

	// Optional seed for the fallback source
	Seed int64
}

// RandomInfo describes the active sampling strategy
type RandomInfo struct {
	UsesStrongSource bool
	Method           string
	Secure           bool
}

type roller struct {
	source Source
}

// New creates a new dice roller. The sampling strategy is chosen once here.
func New(cfg *Config) Roller {
	if cfg == nil {
		cfg = &Config{}
	}

	return &roller{
		source: selectSource(cfg),
	}
}

func selectSource(cfg *Config) Source {
	if cfg.Source != nil {
		return cfg.Source
	}

	if !cfg.ForceFallback {
		entropy := cfg.Entropy
		if entropy == nil {
			entropy = rand.Reader
		}
		if hasStrongEntropy(entropy) {
			return NewCryptoSource(entropy)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewMathSource(seed)
}

// RollOne generates a random dice roll with the specified number of sides
func (r *roller) RollOne(sides int) (int, error) {
	if sides < MinSides || uint64(sides) > MaxSides {
		return 0, fmt.Errorf("%w: sides must be between %d and %d, got %d", ErrInvalidArgument, MinSides, uint64(MaxSides), sides)
	}

	value, err := r.source.NextUniform(sides)
	if err != nil {
		return 0, fmt.Errorf("failed to roll d%d: %w", sides, err)
	}
	return value, nil
}

// RollMany rolls quantity dice in order
func (r *roller) RollMany(quantity, sides int) ([]int, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return nil, fmt.Errorf("%w: quantity must be between %d and %d, got %d", ErrInvalidArgument, MinQuantity, MaxQuantity, quantity)
	}

	rolls := make([]int, 0, quantity)
	for i := 0; i < quantity; i++ {
		value, err := r.RollOne(sides)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, value)
	}
	return rolls, nil
}

// Sum totals the rolls. A nil slice or a face below 1 cannot come from
// RollOne and is reported as misuse.
func (r *roller) Sum(rolls []int) (int, error) {
	if rolls == nil {
		return 0, fmt.Errorf("%w: rolls cannot be nil", ErrInvalidArgument)
	}

	sum := 0
	for i, roll := range rolls {
		if roll < 1 {
			return 0, fmt.Errorf("%w: invalid roll result %d at index %d", ErrInvalidArgument, roll, i)
		}
		sum += roll
	}
	return sum, nil
}

// Info describes the random source in use
func (r *roller) Info() RandomInfo {
	return RandomInfo{
		UsesStrongSource: r.source.Strong(),
		Method:           r.source.Name(),
		Secure:           r.source.Strong(),
	}
}
