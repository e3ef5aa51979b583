package varint

// Register words, least significant first.
const (
	registerWords = 8
	lastWord      = registerWords - 1
)

// Register is working storage for varint arithmetic: a 256-bit two's
// complement accumulator held as unsigned 32-bit words, least
// significant word first. The zero value is the number zero.
//
// A Register is scratch space with no identity of its own: operations
// mutate it in place, and on failure its words are unspecified.
type Register struct {
	word [registerWords]uint32
}

// IsNegative reports whether r holds a negative value.
func (r *Register) IsNegative() bool {
	return r.word[lastWord] > 0x7fffffff
}

// IsZero reports whether r holds zero.
func (r *Register) IsZero() bool {
	for _, w := range r.word {
		if w != 0 {
			return false
		}
	}

	return true
}

// Add adds o to r. If the true sum does not fit in 256 bits it
// returns ErrRange.
func (r *Register) Add(o *Register) error {
	rneg := r.IsNegative()
	oneg := o.IsNegative()

	var c uint64
	for i := 0; i < registerWords; i++ {
		c += uint64(r.word[i])
		c += uint64(o.word[i])
		r.word[i] = uint32(c)
		c >>= 32
	}

	// Operands of different sign can't overflow; otherwise the sum
	// must keep the shared sign.
	if rneg == oneg && rneg != r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}

// Sub subtracts o from r. If the true difference does not fit in 256
// bits it returns ErrRange.
func (r *Register) Sub(o *Register) error {
	rneg := r.IsNegative()
	oneg := o.IsNegative()

	var c int64
	for i := 0; i < registerWords; i++ {
		c += int64(r.word[i])
		c -= int64(o.word[i])
		r.word[i] = uint32(c)
		c >>= 32
	}

	// Operands of the same sign can't overflow; otherwise the
	// difference must keep the sign of r.
	if rneg != oneg && rneg != r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}

// negate replaces r with its two's complement. Negating the minimum
// representable value leaves it unchanged.
func (r *Register) negate() {
	var c uint32 = 1
	for i := 0; i < registerWords; i++ {
		n := ^r.word[i] + c
		r.word[i] = n
		if c != 0 && n == 0 {
			c = 1
		} else {
			c = 0
		}
	}
}

// Neg negates r in place. Negating the minimum representable value
// returns ErrRange.
func (r *Register) Neg() error {
	neg := r.IsNegative()
	r.negate()

	if neg && r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}

// MulUint32 multiplies r by n. If the true product does not fit in
// 256 bits it returns ErrRange.
func (r *Register) MulUint32(n uint32) error {
	// Multiplying by one changes nothing; by zero, zaps everything.
	if n == 1 {
		return nil
	}
	if n == 0 {
		*r = Register{}
		return nil
	}

	if !r.IsNegative() {
		var a uint64
		for i := 0; i < registerWords; i++ {
			a += uint64(r.word[i]) * uint64(n)
			r.word[i] = uint32(a)
			a >>= 32
		}

		if a != 0 || r.IsNegative() {
			return ErrRange.New("varint out of range")
		}

		return nil
	}

	// Negate, multiply, and negate again, in a single pass over the
	// words. c1 and c2 carry the two negations; a carries the
	// multiplication of the magnitude.
	var (
		a  uint64
		c1 uint64 = 1
		c2 uint64 = 1
	)
	for i := 0; i < registerWords; i++ {
		t := uint64(^r.word[i]) + c1
		if c1 != 0 && t>>32 != 0 {
			c1 = 1
		} else {
			c1 = 0
		}
		t &= 0xffffffff

		a += t * uint64(n)
		t = a & 0xffffffff
		a >>= 32

		t = uint64(^uint32(t)) + c2
		r.word[i] = uint32(t)
		if c2 != 0 && t>>32 != 0 {
			c2 = 1
		} else {
			c2 = 0
		}
	}

	// A product of exactly the minimum representable value leaves no
	// carry, so any leftover carry is an overflow. The final sign
	// check catches magnitudes between 2^255 and 2^256.
	if a != 0 || !r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}

// DivModUint32 divides r by n, storing the quotient in r and
// returning the remainder. Division is performed on the magnitude, so
// the remainder is always non-negative. Dividing by zero returns
// ErrDivisionByZero.
func (r *Register) DivModUint32(n uint32) (uint32, error) {
	if n == 0 {
		return 0, ErrDivisionByZero.New("division by zero")
	}
	if n == 1 {
		return 0, nil
	}

	neg := r.IsNegative()
	if neg {
		r.negate()
	}

	// This is just long division, most significant word first.
	var a uint64
	for i := lastWord; i >= 0; i-- {
		a = a<<32 | uint64(r.word[i]) // bring down the next digit
		r.word[i] = uint32(a / uint64(n))
		a %= uint64(n)
	}

	if neg {
		r.negate()
	}

	return uint32(a), nil
}

// AddUint32 adds n to r. If the true sum does not fit in 256 bits it
// returns ErrRange.
func (r *Register) AddUint32(n uint32) error {
	neg := r.IsNegative()

	a := uint64(n)
	for i := 0; a != 0 && i < registerWords; i++ {
		a += uint64(r.word[i])
		r.word[i] = uint32(a)
		a >>= 32
	}

	if !neg && r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}

// SubUint32 subtracts n from r. If the true difference does not fit
// in 256 bits it returns ErrRange.
func (r *Register) SubUint32(n uint32) error {
	neg := r.IsNegative()

	for i := 0; i < registerWords; i++ {
		a := r.word[i]
		b := a - n

		r.word[i] = b
		if a >= b {
			break
		}
		n = 1 // borrow from the next word
	}

	if neg && !r.IsNegative() {
		return ErrRange.New("varint out of range")
	}

	return nil
}
