package wire_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/varint"
	"github.com/calebcase/varint/wire"
)

func TestEncode(t *testing.T) {
	type TC struct {
		name  string
		v     varint.Varint
		frame []byte
		Mark  error
	}

	tcs := []TC{
		{
			name:  "zero",
			v:     varint.Varint{},
			frame: []byte{0x00},
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "one",
			v:     varint.Varint{0x01},
			frame: []byte{0x01, 0x01},
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "minus one",
			v:     varint.Varint{0xff},
			frame: []byte{0x01, 0xff},
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "128",
			v:     varint.Varint{0x80, 0x00},
			frame: []byte{0x02, 0x80, 0x00},
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			var buf bytes.Buffer

			err := wire.NewEncoder(&buf).Encode(tc.v)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.frame, buf.Bytes(), tc.Mark)
		})
	}
}

func TestEncodeTooLong(t *testing.T) {
	var buf bytes.Buffer

	v := varint.Varint(bytes.Repeat([]byte{0x01}, varint.MaxBytes+1))
	err := wire.NewEncoder(&buf).Encode(v)

	require.Error(t, err)
	require.True(t, varint.ErrMalformed.Has(err))
	require.Zero(t, buf.Len())
}

func TestDecode(t *testing.T) {
	type TC struct {
		name      string
		frame     []byte
		v         varint.Varint
		malformed bool
		Mark      error
	}

	tcs := []TC{
		{
			name:  "zero",
			frame: []byte{0x00},
			v:     varint.Varint{},
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "one",
			frame: []byte{0x01, 0x01},
			v:     varint.Varint{0x01},
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "needed positive sign byte",
			frame: []byte{0x02, 0x80, 0x00},
			v:     varint.Varint{0x80, 0x00},
			Mark:  oops.New("unexpected"),
		},
		{
			name:      "length beyond 32",
			frame:     []byte{0x21},
			malformed: true,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "redundant positive sign byte",
			frame:     []byte{0x02, 0x01, 0x00},
			malformed: true,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "redundant zero",
			frame:     []byte{0x01, 0x00},
			malformed: true,
			Mark:      oops.New("unexpected"),
		},
		{
			name:      "redundant negative sign byte",
			frame:     []byte{0x02, 0xff, 0xff},
			malformed: true,
			Mark:      oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			var v varint.Varint

			err := wire.NewDecoder(bytes.NewReader(tc.frame)).Decode(&v)

			if tc.malformed {
				require.Error(t, err, tc.Mark)
				require.True(t, varint.ErrMalformed.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.v, v, tc.Mark)
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	var v varint.Varint

	err := wire.NewDecoder(bytes.NewReader([]byte{0x05, 0x01})).Decode(&v)

	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"-1",
		"127",
		"128",
		"-128",
		"-129",
		"9223372036854775807",
		"57896044618658097711785492504343953926634992332820282019728792003956564819967",
		"-57896044618658097711785492504343953926634992332820282019728792003956564819968",
	}

	var buf bytes.Buffer
	encoder := wire.NewEncoder(&buf)

	for _, s := range values {
		v, err := varint.Parse(s)
		require.NoError(t, err)

		require.NoError(t, encoder.Encode(v))
	}

	t.Logf("stream: %s", spew.Sdump(buf.Bytes()))

	decoder := wire.NewDecoder(&buf)

	for _, s := range values {
		var v varint.Varint
		require.NoError(t, decoder.Decode(&v))

		got, err := varint.Format(v)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	var v varint.Varint
	require.ErrorIs(t, decoder.Decode(&v), io.EOF)
}
