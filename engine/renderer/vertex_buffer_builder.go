package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBufferBuilderOption is a functional option for configuring a VertexBuffer via NewVertexBuffer.
type VertexBufferBuilderOption func(*wgpuVertexBuffer)

// WithLabel is an option builder that sets the debug label used for the GPU
// buffers created by SetData.
//
// Parameters:
//   - label: the debug label
//
// Returns:
//   - VertexBufferBuilderOption: a function that applies the label option to a vertex buffer
func WithLabel(label string) VertexBufferBuilderOption {
	return func(b *wgpuVertexBuffer) {
		b.label = label
	}
}

// WithDevice is an option builder that sets the GPU device buffers are created on.
//
// Parameters:
//   - device: the wgpu device
//
// Returns:
//   - VertexBufferBuilderOption: a function that applies the device option to a vertex buffer
func WithDevice(device *wgpu.Device) VertexBufferBuilderOption {
	return func(b *wgpuVertexBuffer) {
		b.device = device
	}
}

// WithQueue is an option builder that sets the GPU queue data is written through.
//
// Parameters:
//   - queue: the wgpu queue
//
// Returns:
//   - VertexBufferBuilderOption: a function that applies the queue option to a vertex buffer
func WithQueue(queue *wgpu.Queue) VertexBufferBuilderOption {
	return func(b *wgpuVertexBuffer) {
		b.queue = queue
	}
}
