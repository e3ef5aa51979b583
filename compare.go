package varint

// Compare returns -1, 0, or 1 according to whether a is less than,
// equal to, or greater than b. Both operands must be canonical
// encodings; the comparison operates on the bytes directly without
// decoding either value.
func Compare(a, b Varint) int {
	// Since canonical form has no unnecessary trailing bytes, values
	// of unequal length can't be equal. If the last byte of the
	// longer encoding is negative, it is more negative than the other
	// can possibly be; if positive, more positive.
	if len(a) != len(b) {
		if len(a) > len(b) {
			if a[len(a)-1] >= 0x80 {
				return -1
			}
			return 1
		}
		if b[len(b)-1] >= 0x80 {
			return 1
		}
		return -1
	}

	if len(a) == 0 {
		return 0
	}

	// Compare the high byte in a sign-aware fashion: flipping the
	// sign bit turns two's complement order into unsigned order.
	i := len(a) - 1
	aa := a[i] ^ 0x80
	bb := b[i] ^ 0x80
	if aa != bb {
		if aa > bb {
			return 1
		}
		return -1
	}

	// Compare remaining bytes normally.
	for i--; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}

	// Byte for byte equivalent, so equal.
	return 0
}

// Min returns the smaller of a and b.
func Min(a, b Varint) Varint {
	if Compare(a, b) < 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Varint) Varint {
	if Compare(a, b) > 0 {
		return a
	}
	return b
}
