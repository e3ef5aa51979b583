package varint

// Varint is a signed integer encoded in the smallest number of bytes
// possible, little-endian, two's complement. The empty slice encodes
// zero. See the package documentation for the canonical form.
type Varint []byte

// Canonical reports whether v is a minimal-length encoding: the last
// byte may not be a sign extension that could be dropped without
// changing the represented sign.
func (v Varint) Canonical() bool {
	if len(v) == 0 {
		return true
	}

	switch v[len(v)-1] {
	case 0x00:
		return len(v) > 1 && v[len(v)-2]&0x80 != 0
	case 0xff:
		return len(v) == 1 || v[len(v)-2]&0x80 == 0
	}

	return true
}

// Add returns the sum of a and b. If the true sum does not fit in 256
// bits it returns ErrRange.
func Add(a, b Varint) (_ Varint, err error) {
	defer Error.WrapP(&err)

	var ra, rb Register
	if err := ra.SetBytes(a); err != nil {
		return nil, err
	}
	if err := rb.SetBytes(b); err != nil {
		return nil, err
	}

	if err := ra.Add(&rb); err != nil {
		return nil, err
	}

	return ra.Bytes(), nil
}

// Sub returns the difference of a and b. If the true difference does
// not fit in 256 bits it returns ErrRange.
func Sub(a, b Varint) (_ Varint, err error) {
	defer Error.WrapP(&err)

	var ra, rb Register
	if err := ra.SetBytes(a); err != nil {
		return nil, err
	}
	if err := rb.SetBytes(b); err != nil {
		return nil, err
	}

	if err := ra.Sub(&rb); err != nil {
		return nil, err
	}

	return ra.Bytes(), nil
}

// Neg returns the negation of v. Negating the minimum representable
// value returns ErrRange.
func Neg(v Varint) (_ Varint, err error) {
	defer Error.WrapP(&err)

	var r Register
	if err := r.SetBytes(v); err != nil {
		return nil, err
	}

	if err := r.Neg(); err != nil {
		return nil, err
	}

	return r.Bytes(), nil
}
