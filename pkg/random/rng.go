package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrBadRatio is returned when a ratio string cannot be parsed.
var ErrBadRatio = errors.New("random: bad ratio")

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// runtimeSource forwards to the auto-seeded process-wide generator.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }

var shared = &RNG{r: rand.New(runtimeSource{})}

// Shared returns the process-wide RNG. Draws are independent across calls and
// not reproducible.
func Shared() *RNG { return shared }

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FromSeed returns Shared for a zero seed and a seeded RNG otherwise.
func FromSeed(seed int64) *RNG {
	if seed == 0 {
		return Shared()
	}
	return NewRNG(seed)
}

// Hit reports true with probability p.
func (r *RNG) Hit(p Ratio) bool {
	if p.Num <= 0 || p.Den <= 0 {
		return false
	}
	if p.Num >= p.Den {
		return true
	}
	return r.r.IntN(p.Den) < p.Num
}

// Ratio is an exact probability Num/Den.
type Ratio struct {
	Num int
	Den int
}

// Quarter is the default alive probability for randomized boards.
var Quarter = Ratio{Num: 1, Den: 4}

// Float returns the ratio as a float64. A zero denominator yields 0.
func (p Ratio) Float() float64 {
	if p.Den == 0 {
		return 0
	}
	return float64(p.Num) / float64(p.Den)
}

// Valid reports whether the ratio is a probability in [0, 1].
func (p Ratio) Valid() bool {
	return p.Den > 0 && p.Num >= 0 && p.Num <= p.Den
}

func (p Ratio) String() string {
	return strconv.Itoa(p.Num) + "/" + strconv.Itoa(p.Den)
}

// ParseRatio accepts "n/d" or a bare integer numerator over 1.
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	num, den, found := strings.Cut(s, "/")
	if !found {
		den = "1"
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Ratio{}, fmt.Errorf("%w %q: %v", ErrBadRatio, s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Ratio{}, fmt.Errorf("%w %q: %v", ErrBadRatio, s, err)
	}
	p := Ratio{Num: n, Den: d}
	if !p.Valid() {
		return Ratio{}, fmt.Errorf("%w %q: not in [0, 1]", ErrBadRatio, s)
	}
	return p, nil
}

// Set implements flag.Value.
func (p *Ratio) Set(s string) error {
	parsed, err := ParseRatio(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
