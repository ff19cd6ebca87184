package dice

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand"
	"sync"
)

// Method names reported by Info
const (
	MethodCrypto = "crypto/rand"
	MethodMath   = "math/rand"
)

// CryptoSource samples from a cryptographically strong reader using
// rejection sampling, so every face is exactly equally likely.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource creates a strong source. A nil reader uses crypto/rand.
func NewCryptoSource(reader io.Reader) *CryptoSource {
	if reader == nil {
		reader = rand.Reader
	}
	return &CryptoSource{reader: reader}
}

// NextUniform draws 32-bit values, discarding any at or above the largest
// multiple of sides that fits in 2^32 to avoid modulo bias.
func (c *CryptoSource) NextUniform(sides int) (int, error) {
	n := uint64(sides)
	limit := (uint64(1) << 32) / n * n

	var buf [4]byte
	for {
		if _, err := io.ReadFull(c.reader, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrEntropy, err)
		}
		draw := uint64(binary.BigEndian.Uint32(buf[:]))
		if draw < limit {
			return int(draw%n) + 1, nil
		}
	}
}

// Name returns the method name
func (c *CryptoSource) Name() string {
	return MethodCrypto
}

// Strong reports true
func (c *CryptoSource) Strong() bool {
	return true
}

// MathSource is the fallback used when no strong entropy is available.
// It maps a float in [0,1) onto the faces without rejection sampling.
type MathSource struct {
	mu     sync.Mutex
	random *mathrand.Rand
}

// NewMathSource creates a fallback source with the given seed
func NewMathSource(seed int64) *MathSource {
	return &MathSource{
		random: mathrand.New(mathrand.NewSource(seed)),
	}
}

// NextUniform returns floor(value * sides) + 1
func (m *MathSource) NextUniform(sides int) (int, error) {
	m.mu.Lock()
	value := m.random.Float64()
	m.mu.Unlock()

	return int(value*float64(sides)) + 1, nil
}

// Name returns the method name
func (m *MathSource) Name() string {
	return MethodMath
}

// Strong reports false
func (m *MathSource) Strong() bool {
	return false
}

// hasStrongEntropy probes the reader once
func hasStrongEntropy(reader io.Reader) bool {
	if reader == nil {
		return false
	}
	var probe [4]byte
	_, err := io.ReadFull(reader, probe[:])
	return err == nil
}
