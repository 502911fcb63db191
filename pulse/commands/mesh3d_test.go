package commands

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/oliverbestmann/spincube/cube"
	"github.com/stretchr/testify/assert"
)

func TestVertexBufferLayout(t *testing.T) {
	assert.Equal(t, uint64(24), vertexBufferLayout.ArrayStride)
	assert.Equal(t, uint64(0), vertexBufferLayout.Attributes[0].Offset)
	assert.Equal(t, uint64(12), vertexBufferLayout.Attributes[1].Offset)
	assert.Equal(t, uint64(64), mvpUniformSize)
	assert.Equal(t, uintptr(24), unsafe.Sizeof(cube.Vertex{}))
}

func TestAlignIndices(t *testing.T) {
	even := []uint16{0, 1, 2, 0, 2, 3}
	assert.Equal(t, even, alignIndices(even))

	odd := []uint16{0, 1, 2}
	aligned := alignIndices(odd)
	assert.Equal(t, []uint16{0, 1, 2, 0}, aligned)

	// the input is not modified
	assert.Len(t, odd, 3)
}

func TestShaderDeclaresMVPUniform(t *testing.T) {
	assert.True(t, strings.Contains(mesh3dShaderCode, "uMVP: mat4x4<f32>"))
	assert.True(t, strings.Contains(mesh3dShaderCode, "fn vs_main"))
	assert.True(t, strings.Contains(mesh3dShaderCode, "fn fs_main"))
}
