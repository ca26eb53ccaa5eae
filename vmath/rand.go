package vmath

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator through one splitmix64 round so that
// small or sequential seeds do not yield correlated early outputs
func NewFastRand(seed uint64) *FastRand {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return &FastRand{state: z}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
