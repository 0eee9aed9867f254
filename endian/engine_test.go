package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}

	require.Equal(IsNativeLittleEndian(), result == binary.LittleEndian)
	require.Equal(IsNativeBigEndian(), result == binary.BigEndian)
}

func TestGetWireEngine_IsBigEndian(t *testing.T) {
	// The wire format mandates big-endian regardless of host order.
	engine := GetWireEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 1)
	require.Equal(t, []byte{0x00, 0x01}, buf)

	buf = engine.AppendUint16(nil, 0xFFFF)
	require.Equal(t, []byte{0xFF, 0xFF}, buf)
}

func TestEngines_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x0102030405060708)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))

		buf = engine.AppendUint32(nil, 0xDEADBEEF)
		require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf))
	}
}
