package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)

	buf = engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	buf = engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
}

func TestEngine_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		buf := engine.AppendUint64(nil, 0xDEADBEEFCAFEBABE)
		require.Equal(t, uint64(0xDEADBEEFCAFEBABE), engine.Uint64(buf))

		buf = engine.AppendUint32(nil, 0xDEADBEEF)
		require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf))

		buf = engine.AppendUint16(nil, 0xBEEF)
		require.Equal(t, uint16(0xBEEF), engine.Uint16(buf))
	}
}

func TestCheckEndianness(t *testing.T) {
	native := CheckEndianness()
	require.NotNil(t, native)

	// Exactly one of the two probes holds.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())

	if IsNativeLittleEndian() {
		require.Equal(t, binary.LittleEndian, native)
	} else {
		require.Equal(t, binary.BigEndian, native)
	}
}
