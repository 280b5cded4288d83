package rand

// Seed mixing constants of the xorshift128 generator.
const (
	seedX = 123456789
	seedY = 362436069
	seedZ = 521288629
	seedW = 88675123
)

// Random is a deterministic pseudorandom source used by terrain generation.
// The same seed always produces the same sequence, so terrain and structure
// placement are reproducible. Random is not safe for concurrent use; each
// chunk being generated gets its own instance.
type Random struct {
	x, y, z, w int64
}

// NewRandom returns a Random seeded with the seed passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed reseeds the Random, restarting its sequence.
func (r *Random) SetSeed(seed int64) {
	r.x = seedX ^ seed
	r.y = seedY ^ ((seed << 17) | ((seed >> 15) & 0x7fffffff))
	r.z = seedZ ^ ((seed << 31) | ((seed >> 1) & 0x7fffffff))
	r.w = seedW ^ ((seed << 18) | ((seed >> 14) & 0x7fffffff))
}

func (r *Random) next() int64 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = (r.w ^ (r.w >> 19) ^ t ^ (t >> 8)) & 0x7fffffff
	return r.w
}

// Int31 returns a non-negative pseudorandom 31-bit integer.
func (r *Random) Int31() int32 {
	return int32(r.next())
}

// Int31n returns a pseudorandom number in [0,n). It returns 0 if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return int32(r.next() % int64(n))
}

// Range returns a pseudorandom number in [min,max], both inclusive.
func (r *Random) Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	return min + r.Int31n(max-min+1)
}

// Float64 returns a pseudorandom number in [0,1).
func (r *Random) Float64() float64 {
	return float64(r.next()) / float64(int64(1)<<31)
}
