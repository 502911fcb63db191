package commands

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/spincube/cube"
	"github.com/oliverbestmann/spincube/glm"
	"github.com/oliverbestmann/spincube/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed mesh3d.wgsl
var mesh3dShaderCode string

// size of the uMVP uniform
const mvpUniformSize = uint64(unsafe.Sizeof(glm.Mat4f{}))

// Mesh3dCommand draws a static indexed mesh with per vertex colors. Vertex
// and index data are uploaded once, only the mvp matrix changes per frame.
type Mesh3dCommand struct {
	ctx *pulse.Context

	pipelineCache *pulse.PipelineCache[mesh3dRenderPipeline]

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
	bufUniforms *wgpu.Buffer

	indexCount uint32

	// ClearColor is used to clear the color target before drawing
	ClearColor wgpu.Color
}

func NewMesh3dCommand(ctx *pulse.Context, vertices []cube.Vertex, indices []uint16) (cmd *Mesh3dCommand, err error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, errors.New("mesh must not be empty")
	}

	cmd = &Mesh3dCommand{
		ctx:        ctx,
		indexCount: uint32(len(indices)),
		ClearColor: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}

	defer func() {
		if err != nil {
			cmd.Release()
			cmd = nil
		}
	}()

	cmd.bufVertices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Mesh3d.Vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return cmd, fmt.Errorf("create vertex buffer: %w", err)
	}

	cmd.bufIndices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Mesh3d.Indices",
		Contents: wgpu.ToBytes(alignIndices(indices)),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return cmd, fmt.Errorf("create index buffer: %w", err)
	}

	cmd.bufUniforms, err = ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Mesh3d.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  mvpUniformSize,
	})
	if err != nil {
		return cmd, fmt.Errorf("create uniform buffer: %w", err)
	}

	cmd.pipelineCache = pulse.NewPipelineCache[mesh3dRenderPipeline](ctx)

	slog.Debug("Mesh uploaded",
		slog.Int("vertexCount", len(vertices)),
		slog.Int("indexCount", len(indices)),
	)

	return cmd, nil
}

// Draw clears the target and renders the mesh transformed by mvp.
func (p *Mesh3dCommand) Draw(target pulse.RenderTarget, mvp glm.Mat4f) error {
	pipelineConfig := mesh3dRenderPipeline{
		TargetFormat: target.Format,
		Depth:        target.DepthView != nil,
		ShaderSource: mesh3dShaderCode,
	}

	pc, err := p.pipelineCache.Get(pipelineConfig)
	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	err = p.ctx.WriteBuffer(p.bufUniforms, 0, pulse.Float32Bytes(mvp[:]...))
	if err != nil {
		return fmt.Errorf("update uniform buffer: %w", err)
	}

	bindGroup, err := p.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Mesh3d.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.bufUniforms,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := p.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	desc := &wgpu.RenderPassDescriptor{
		Label: "RenderPassMesh3d",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: p.ClearColor,
			},
		},
	}

	if target.DepthView != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            target.DepthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		}
	}

	pass := encoder.BeginRenderPass(desc)

	defer func() {
		if pass != nil {
			pass.Release()
		}
	}()

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, p.bufVertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(p.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(p.indexCount, 1, 0, 0, 0)

	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	pass.Release()
	pass = nil

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	p.ctx.Submit(cmdBuffer)

	return nil
}

func (p *Mesh3dCommand) Release() {
	if p.pipelineCache != nil {
		p.pipelineCache.Purge()
		p.pipelineCache = nil
	}

	for _, buf := range []**wgpu.Buffer{&p.bufVertices, &p.bufIndices, &p.bufUniforms} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
}

// alignIndices pads the indices to a multiple of four bytes, as
// required for buffer contents. Padding is never drawn.
func alignIndices(indices []uint16) []uint16 {
	if len(indices)%2 == 0 {
		return indices
	}

	return append(indices[:len(indices):len(indices)], 0)
}

type mesh3dRenderPipeline struct {
	TargetFormat wgpu.TextureFormat
	Depth        bool
	ShaderSource string
}

func (conf mesh3dRenderPipeline) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for mesh3d",
		slog.Any("format", conf.TargetFormat),
		slog.Bool("depth", conf.Depth),
	)

	shader, err := pulse.CompileShader(dev, "Mesh3D.ShaderSource", conf.ShaderSource)
	if err != nil {
		return nil, err
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Mesh3D.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	if conf.Depth {
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            pulse.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare:     wgpu.CompareFunctionAlways,
				FailOp:      wgpu.StencilOperationKeep,
				DepthFailOp: wgpu.StencilOperationKeep,
				PassOp:      wgpu.StencilOperationKeep,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare:     wgpu.CompareFunctionAlways,
				FailOp:      wgpu.StencilOperationKeep,
				DepthFailOp: wgpu.StencilOperationKeep,
				PassOp:      wgpu.StencilOperationKeep,
			},
		}
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build mesh3d pipeline: %w", err)
	}

	return pipeline, nil
}

var vertexBufferLayout = wgpu.VertexBufferLayout{
	ArrayStride: uint64(unsafe.Sizeof(cube.Vertex{})),
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{
			// position
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(cube.Vertex{}.Position)),
			ShaderLocation: 0,
		},
		{
			// color
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(cube.Vertex{}.Color)),
			ShaderLocation: 1,
		},
	},
}
