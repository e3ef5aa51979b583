package varint

// MaxBytes is the longest possible canonical encoding: 256 bits.
const MaxBytes = registerWords * 4

// SetBytes loads an encoded value into r, sign-extending the most
// significant supplied byte across the remaining words. The empty
// slice decodes to zero. More than MaxBytes bytes returns ErrRange.
func (r *Register) SetBytes(data []byte) error {
	if len(data) > MaxBytes {
		return ErrRange.New("varint out of range: %d bytes", len(data))
	}

	var pad uint32
	if len(data) > 0 && data[len(data)-1]&0x80 != 0 {
		pad = 0xff
	}

	*r = Register{}
	for i := 0; i < MaxBytes; i++ {
		b := pad
		if i < len(data) {
			b = uint32(data[i])
		}
		r.word[i/4] |= b << (8 * (i % 4))
	}

	return nil
}

// Bytes returns the canonical encoding of r: the minimum number of
// bytes such that sign extension of the last byte reproduces the
// value. Zero encodes to zero bytes.
func (r *Register) Bytes() Varint {
	var size int

	if r.IsNegative() {
		i := lastWord
		for ; i > 0; i-- {
			if r.word[i] != 0xffffffff {
				break
			}
		}
		size = i * 4

		// Allow enough bytes so that the sign bit is set.
		switch w := r.word[i]; {
		case w >= 0xffffff80:
			size += 1
		case w >= 0xffff8000:
			size += 2
		case w >= 0xff800000:
			size += 3
		case w >= 0x80000000:
			size += 4
		default:
			size += 5
		}
	} else {
		i := lastWord
		for ; i >= 0; i-- {
			if r.word[i] != 0 {
				break
			}
		}
		if i >= 0 {
			size = i * 4

			// Allow enough bytes so that the sign bit is clear.
			switch w := r.word[i]; {
			case w <= 0x7f:
				size += 1
			case w <= 0x7fff:
				size += 2
			case w <= 0x7fffff:
				size += 3
			case w <= 0x7fffffff:
				size += 4
			default:
				size += 5
			}
		}
	}

	data := make(Varint, size)
	for i := 0; i < size; i++ {
		data[i] = byte(r.word[i/4] >> (8 * (i % 4)))
	}

	return data
}
