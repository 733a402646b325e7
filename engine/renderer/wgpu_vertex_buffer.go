package renderer

import (
	"errors"

	"github.com/Carmen-Shannon/mesh-go/engine/effect"
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuVertexBuffer is the WebGPU implementation of VertexBuffer.
type wgpuVertexBuffer struct {
	label  string
	device *wgpu.Device
	queue  *wgpu.Queue

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   int

	// format is captured by SetData so PrepareDrawing resolves the layout the
	// uploaded data was written with, not whatever the mesh holds later.
	format    geometry.VertexFormat
	hasFormat bool
	layout    wgpu.VertexBufferLayout

	pass *wgpu.RenderPassEncoder
}

// Compile-time check that wgpuVertexBuffer implements VertexBuffer.
var _ VertexBuffer = &wgpuVertexBuffer{}

func (b *wgpuVertexBuffer) SetData(mesh geometry.Mesh) error {
	if b.device == nil || b.queue == nil {
		return errors.New("vertex buffer requires a device and queue — use WithDevice and WithQueue")
	}

	b.Release()

	vertexData := mesh.VertexBytes()
	if len(vertexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            b.label + " Vertex Buffer",
			Size:             uint64(len(vertexData)),
			Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, vertexData)
		b.vertexBuffer = buf
	}

	indexData := mesh.IndexBytes()
	if len(indexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            b.label + " Index Buffer",
			Size:             uint64(len(indexData)),
			Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, indexData)
		b.indexBuffer = buf
	}

	b.indexCount = mesh.IndexCount()
	b.format = mesh.VertexFormat()
	b.hasFormat = true

	return nil
}

func (b *wgpuVertexBuffer) PrepareDrawing(e effect.Effect) error {
	if !b.hasFormat {
		return errors.New("vertex buffer has no data — call SetData before PrepareDrawing")
	}
	layout, err := VertexLayout(b.format, e)
	if err != nil {
		return err
	}
	b.layout = layout
	return nil
}

func (b *wgpuVertexBuffer) SetRenderPass(pass *wgpu.RenderPassEncoder) {
	b.pass = pass
}

func (b *wgpuVertexBuffer) Bind() {
	if b.pass == nil {
		return
	}
	if b.vertexBuffer != nil {
		b.pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	}
	if b.indexBuffer != nil {
		b.pass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	}
}

func (b *wgpuVertexBuffer) Unbind() {
	b.pass = nil
}

func (b *wgpuVertexBuffer) Layout() wgpu.VertexBufferLayout {
	return b.layout
}

func (b *wgpuVertexBuffer) Buffer() *wgpu.Buffer {
	return b.vertexBuffer
}

func (b *wgpuVertexBuffer) IndexBuffer() *wgpu.Buffer {
	return b.indexBuffer
}

func (b *wgpuVertexBuffer) IndexCount() int {
	return b.indexCount
}

func (b *wgpuVertexBuffer) Release() {
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
	}
}
