package varint

// Parse converts decimal text to an encoded value. The input is an
// optional leading '+' or '-' followed by one or more ASCII digits;
// anything else returns ErrSyntax. Leading zeros are accepted. Values
// that do not fit in 256 bits return ErrRange.
func Parse(s string) (_ Varint, err error) {
	defer Error.WrapP(&err)

	p := s
	neg := false

	// Remember, and then skip, any leading sign indicator.
	if len(p) > 0 && (p[0] == '+' || p[0] == '-') {
		neg = p[0] == '-'
		p = p[1:]
	}

	if len(p) == 0 {
		return nil, ErrSyntax.New("invalid input syntax for integer: %q", s)
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return nil, ErrSyntax.New("invalid input syntax for integer: %q", s)
		}
	}

	// Scan the digits. To avoid a full multiply and add per digit, a
	// 32-bit accumulator is merged into the register after every 9
	// digits, or at the end of the input.
	var (
		r           Register
		accumulator uint32
		tenspower   uint32 = 1
	)
	for i := 0; i < len(p); i++ {
		accumulator = accumulator*10 + uint32(p[i]-'0')
		tenspower *= 10

		if tenspower == 1000000000 || i == len(p)-1 {
			if err := r.MulUint32(tenspower); err != nil {
				return nil, err
			}
			if neg {
				err = r.SubUint32(accumulator)
			} else {
				err = r.AddUint32(accumulator)
			}
			if err != nil {
				return nil, err
			}

			accumulator = 0
			tenspower = 1
		}
	}

	return r.Bytes(), nil
}

// Format renders an encoded value as decimal text.
func Format(v Varint) (_ string, err error) {
	defer Error.WrapP(&err)

	var r Register
	if err := r.SetBytes(v); err != nil {
		return "", err
	}
	neg := r.IsNegative()

	// Extract groups of nine digits into the tail of the buffer. The
	// division works on the magnitude, so the sign is reapplied only
	// at the end.
	buf := make([]byte, 11*registerWords+1)
	e := len(buf)

	for {
		remainder, err := r.DivModUint32(1000000000)
		if err != nil {
			return "", err
		}

		// If we got zero, there may be no more digits.
		if remainder == 0 && r.IsZero() {
			break
		}

		for i := 0; i < 9; i++ {
			e--
			buf[e] = '0' + byte(remainder%10)
			remainder /= 10
		}
	}

	if e == len(buf) {
		// No digits at all: the value is zero.
		e--
		buf[e] = '0'
	} else {
		// Strip leading zeros from the highest group.
		for buf[e] == '0' {
			e++
		}
	}

	if neg {
		e--
		buf[e] = '-'
	}

	return string(buf[e:]), nil
}
