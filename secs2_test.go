package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
)

func TestEncodeDecode(t *testing.T) {
	msg := NewList(
		NewU1(1, 2),
		NewList(NewU1(1, 2)),
		NewASCII("msg"),
		NewU1(),
	)

	data, err := Encode(msg)
	require.NoError(t, err)
	require.Len(t, data, 19)

	got, consumed, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 19, consumed)
	require.True(t, got.Equal(msg))
}

func TestDecode_Error(t *testing.T) {
	_, _, err := Decode([]byte{0xFD, 0x01, 0xFF})
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestRenderSML(t *testing.T) {
	require.Equal(t, `<A [5] "hello">`, RenderSML(NewASCII("hello")))
	require.Equal(t, "<L [0]\n>", RenderSML(NewList()))
}

func TestDigest(t *testing.T) {
	a := NewList(NewU1(1), NewASCII("msg"))
	b := NewList(NewU1(1), NewASCII("msg"))
	c := NewList(NewU1(2), NewASCII("msg"))

	digestA, err := Digest(a)
	require.NoError(t, err)

	digestB, err := Digest(b)
	require.NoError(t, err)

	digestC, err := Digest(c)
	require.NoError(t, err)

	require.Equal(t, digestA, digestB, "equal messages share a digest")
	require.NotEqual(t, digestA, digestC)

	_, err = Digest(NewASCII(string(make([]byte, format.MaxLength+1))))
	require.ErrorIs(t, err, errs.ErrLengthOverflow)
}
