package pulse

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32Bytes(t *testing.T) {
	buf := Float32Bytes(1, -2.5, 0)
	require.Len(t, buf, 12)

	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(-2.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
}

func TestParseLogLevel(t *testing.T) {
	level, ok := parseLogLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelDebug, level)

	level, ok = parseLogLevel("TRACE")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelTrace, level)

	_, ok = parseLogLevel("")
	assert.False(t, ok)

	_, ok = parseLogLevel("verbose")
	assert.False(t, ok)
}

func TestRenderTargetAspect(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, RenderTarget{Width: 1280, Height: 720}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), RenderTarget{}.Aspect())
}
