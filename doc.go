// Package varint stores signed integers that may be large but are more
// commonly small, using the smallest number of bytes possible.
//
// Encoding
//
// A value is encoded in little-endian notation using two's complement
// arithmetic. The canonical form has the minimum number of bytes such
// that sign-extending the most significant byte reproduces the value:
// no trailing 0x00 byte (non-negative) or 0xff byte (negative) may be
// dropped without changing the represented sign. Zero is encoded as
// the empty byte sequence.
//
//  |      value | encoding          |
//  |------------|-------------------|
//  |          0 | (empty)           |
//  |          1 | 01                |
//  |         -1 | ff                |
//  |        127 | 7f                |
//  |        128 | 80 00             |
//  |       -128 | 80                |
//  |       -129 | 7f ff             |
//
// Because the canonical form is unique, two encodings represent equal
// values if and only if they are byte-for-byte identical, and encoded
// values can be ordered without decoding them (see Compare).
//
// Integers of up to 256 bits (32 bytes) are supported. Arithmetic whose
// true result does not fit in 256 bits fails with ErrRange; it is never
// truncated or wrapped.
//
// Arithmetic is performed on a Register, a fixed-width 256-bit two's
// complement accumulator. A Register is scratch space: load an encoded
// value into it, operate, and re-encode the result.
package varint
