package varint

import "math"

// SetInt64 loads a 64-bit signed integer into r, sign-extending it
// across the remaining words.
func (r *Register) SetInt64(v int64) {
	r.word[0] = uint32(v)
	r.word[1] = uint32(uint64(v) >> 32)

	var pad uint32
	if v < 0 {
		pad = 0xffffffff
	}
	for i := 2; i < registerWords; i++ {
		r.word[i] = pad
	}
}

// Int64 narrows r to a 64-bit signed integer. If the value does not
// fit it returns ErrRange.
func (r *Register) Int64() (int64, error) {
	v := int64(uint64(r.word[1])<<32 | uint64(r.word[0]))

	// The discarded words must be a consistent sign extension of the
	// retained bits.
	if r.IsNegative() {
		if v >= 0 {
			return 0, ErrRange.New("varint out of range")
		}
		for i := 2; i < registerWords; i++ {
			if r.word[i] != 0xffffffff {
				return 0, ErrRange.New("varint out of range")
			}
		}
	} else {
		if v < 0 {
			return 0, ErrRange.New("varint out of range")
		}
		for i := 2; i < registerWords; i++ {
			if r.word[i] != 0 {
				return 0, ErrRange.New("varint out of range")
			}
		}
	}

	return v, nil
}

// Int32 narrows r to a 32-bit signed integer. If the value does not
// fit it returns ErrRange.
func (r *Register) Int32() (int32, error) {
	v, err := r.Int64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, ErrRange.New("varint out of range")
	}

	return int32(v), nil
}

// Int16 narrows r to a 16-bit signed integer. If the value does not
// fit it returns ErrRange.
func (r *Register) Int16() (int16, error) {
	v, err := r.Int64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt16 || v < math.MinInt16 {
		return 0, ErrRange.New("varint out of range")
	}

	return int16(v), nil
}

// FromInt64 returns the encoding of a 64-bit signed integer.
func FromInt64(v int64) Varint {
	var r Register
	r.SetInt64(v)

	return r.Bytes()
}

// FromInt32 returns the encoding of a 32-bit signed integer.
func FromInt32(v int32) Varint {
	return FromInt64(int64(v))
}

// FromInt16 returns the encoding of a 16-bit signed integer.
func FromInt16(v int16) Varint {
	return FromInt64(int64(v))
}

// Int64 narrows v to a 64-bit signed integer. If the value does not
// fit it returns ErrRange.
func (v Varint) Int64() (_ int64, err error) {
	defer Error.WrapP(&err)

	var r Register
	if err := r.SetBytes(v); err != nil {
		return 0, err
	}

	return r.Int64()
}

// Int32 narrows v to a 32-bit signed integer. If the value does not
// fit it returns ErrRange.
func (v Varint) Int32() (_ int32, err error) {
	defer Error.WrapP(&err)

	var r Register
	if err := r.SetBytes(v); err != nil {
		return 0, err
	}

	return r.Int32()
}

// Int16 narrows v to a 16-bit signed integer. If the value does not
// fit it returns ErrRange.
func (v Varint) Int16() (_ int16, err error) {
	defer Error.WrapP(&err)

	var r Register
	if err := r.SetBytes(v); err != nil {
		return 0, err
	}

	return r.Int16()
}
