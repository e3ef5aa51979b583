package wire

import (
	"errors"
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/varint"
)

// Error is the class of wire errors.
var Error = errs.Class("wire")

// Encoder writes length-prefixed varints to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a single frame: one length byte followed by the
// encoded value. Values longer than varint.MaxBytes return
// varint.ErrMalformed.
func (e *Encoder) Encode(v varint.Varint) (err error) {
	defer Error.WrapP(&err)

	if len(v) > varint.MaxBytes {
		return varint.ErrMalformed.New("varint value too long: %d bytes", len(v))
	}

	_, err = e.w.Write(append([]byte{byte(len(v))}, v...))
	if err != nil {
		return err
	}

	return nil
}

// Decoder reads length-prefixed varints from a stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads a single frame into v. At a frame boundary the end of
// the stream is reported as io.EOF; a truncated frame is an error.
func (d *Decoder) Decode(v *varint.Varint) (err error) {
	var length [1]byte

	_, err = io.ReadFull(d.r, length[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return Error.Wrap(err)
	}

	if int(length[0]) > varint.MaxBytes {
		return Error.Wrap(varint.ErrMalformed.New(
			"external varint value too long: %d bytes", length[0]))
	}

	data := make(varint.Varint, length[0])
	_, err = io.ReadFull(d.r, data)
	if err != nil {
		return Error.Wrap(err)
	}

	if !data.Canonical() {
		return Error.Wrap(varint.ErrMalformed.New(
			"external varint value has a redundant sign byte"))
	}

	*v = data

	return nil
}
