package common

import (
	"encoding/binary"
	"math"
)

// Float32Bytes packs a slice of float32 components into a little-endian byte
// buffer suitable for GPU upload (4 bytes per component).
//
// Parameters:
//   - values: the float32 components to pack
//
// Returns:
//   - []byte: the packed buffer, len(values)*4 bytes
func Float32Bytes(values []float32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(v))
	}
	return buf
}

// Uint16Bytes packs a slice of uint16 values into a little-endian byte buffer
// suitable for GPU index buffer upload (2 bytes per index).
//
// Parameters:
//   - values: the uint16 values to pack
//
// Returns:
//   - []byte: the packed buffer, len(values)*2 bytes
func Uint16Bytes(values []uint16) []byte {
	buf := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(buf[i*2:(i+1)*2], v)
	}
	return buf
}

// Float32FromBytes unpacks a little-endian byte buffer produced by
// Float32Bytes back into float32 components. The buffer length must be a
// multiple of 4; trailing bytes beyond the last full component are ignored.
//
// Parameters:
//   - buf: the packed byte buffer
//
// Returns:
//   - []float32: the unpacked components
func Float32FromBytes(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : (i+1)*4]))
	}
	return out
}
