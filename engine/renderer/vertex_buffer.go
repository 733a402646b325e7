// package renderer implements the device-binding side of the geometry layer:
// the VertexBuffer contract that uploads a Mesh to GPU storage and binds it
// for drawing. The geometry core never calls into this package — it only
// exposes its format, vertex data, and aggregated index data in the shape the
// contract consumes.
package renderer

import (
	"github.com/Carmen-Shannon/mesh-go/common"
	"github.com/Carmen-Shannon/mesh-go/engine/effect"
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBuffer is the device buffer binder for a Mesh. It owns the GPU-side
// vertex and index storage for one mesh and knows how to attach that storage
// to the current render pass.
//
// Usage pattern:
//  1. Create the buffer with NewVertexBuffer (device and queue required)
//  2. Call SetData(mesh) to create/upload GPU storage
//  3. Call PrepareDrawing(effect) to resolve the mesh's attribute layout
//  4. Each frame: SetRenderPass(pass), Bind(), issue the draw, Unbind()
//  5. Release() when the mesh is no longer drawn
type VertexBuffer interface {
	// SetData creates or replaces the GPU vertex and index buffers from the
	// mesh's current data. Any previously created buffers are released first.
	// The aggregated index count is recorded for draw calls.
	//
	// Parameters:
	//   - mesh: the mesh whose data is uploaded
	//
	// Returns:
	//   - error: error if GPU buffer creation fails
	SetData(mesh geometry.Mesh) error

	// PrepareDrawing resolves the mesh's vertex format against the effect's
	// attribute locations and stores the resulting wgpu vertex buffer layout
	// for pipeline creation. Attributes the effect does not bind are skipped
	// but still occupy their stride slot.
	//
	// Parameters:
	//   - e: the effect resolving attribute binding locations
	//
	// Returns:
	//   - error: error if SetData has not been called or an element's
	//     component count has no wgpu vertex format
	PrepareDrawing(e effect.Effect) error

	// SetRenderPass sets the render pass Bind and Unbind operate on. Render
	// passes are per-frame objects, so this must be called each frame before Bind.
	//
	// Parameters:
	//   - pass: the active render pass encoder
	SetRenderPass(pass *wgpu.RenderPassEncoder)

	// Bind attaches the vertex buffer (slot 0) and the 16-bit index buffer to
	// the current render pass. No-op if there is no pass or no data.
	Bind()

	// Unbind detaches this buffer from the current render pass by clearing the
	// stored pass reference. GPU state itself is rebound by the next Bind.
	Unbind()

	// Layout returns the vertex buffer layout computed by PrepareDrawing.
	//
	// Returns:
	//   - wgpu.VertexBufferLayout: the layout (zero value before PrepareDrawing)
	Layout() wgpu.VertexBufferLayout

	// Buffer returns the GPU vertex buffer, or nil if SetData has not run.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	Buffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil if the mesh had no
	// indices when SetData ran.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the aggregated index count recorded by SetData,
	// used to issue DrawIndexed calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Release releases any GPU buffers held by this vertex buffer.
	Release()
}

// NewVertexBuffer creates a VertexBuffer backed by the WebGPU implementation,
// configured with the provided options. A device and queue must be supplied
// via WithDevice and WithQueue before SetData is called.
//
// Parameters:
//   - options: a variadic list of VertexBufferBuilderOption functions to configure the buffer
//
// Returns:
//   - VertexBuffer: a new instance of VertexBuffer configured with the provided options
func NewVertexBuffer(options ...VertexBufferBuilderOption) VertexBuffer {
	b := &wgpuVertexBuffer{}
	for _, opt := range options {
		opt(b)
	}
	b.label = common.Coalesce(b.label, "Mesh")
	return b
}
