// Package wire frames varints for network transmission.
//
// Frame
//
// Each value is sent as one length byte followed by that many payload
// bytes (the canonical varint encoding):
//
//  | length (1 byte, 0..32) | payload (length bytes) |
//
// Zero is a frame with length zero and no payload.
//
// The decoder rejects frames whose length byte exceeds 32 and frames
// whose payload is not in canonical form (a redundant trailing sign
// byte), since the receiving side relies on canonical encodings for
// equality and ordering. Both are reported as varint.ErrMalformed.
package wire
