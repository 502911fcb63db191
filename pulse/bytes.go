package pulse

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// Float32Bytes encodes the values in the little endian layout
// expected by wgpu buffers.
func Float32Bytes(values ...float32) []byte {
	return f32.Bytes(binary.LittleEndian, values...)
}
