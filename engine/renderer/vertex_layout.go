package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/mesh-go/engine/effect"
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
	"github.com/cogentcore/webgpu/wgpu"
)

// componentVertexFormats maps an element's float32 component count to the
// corresponding wgpu vertex format. All geometry components are float32.
var componentVertexFormats = map[uint8]wgpu.VertexFormat{
	1: wgpu.VertexFormatFloat32,
	2: wgpu.VertexFormatFloat32x2,
	3: wgpu.VertexFormatFloat32x3,
	4: wgpu.VertexFormatFloat32x4,
}

// VertexLayout resolves a vertex format against an effect's attribute
// locations and builds the wgpu.VertexBufferLayout for pipeline creation.
// Elements are laid out at sequential byte offsets in format order. Elements
// the effect resolves to effect.AttributeLocationNotFound are skipped — the
// effect simply does not consume them — but they still occupy their stride
// slot, so offsets and the array stride always match the mesh data.
//
// Parameters:
//   - format: the vertex layout describing the uploaded data
//   - e: the effect resolving attribute binding locations
//
// Returns:
//   - wgpu.VertexBufferLayout: the constructed layout
//   - error: error if an element's component count has no wgpu vertex format
func VertexLayout(format geometry.VertexFormat, e effect.Effect) (wgpu.VertexBufferLayout, error) {
	attrs := make([]wgpu.VertexAttribute, 0, format.Len())
	var offset uint64

	for i := 0; i < format.Len(); i++ {
		element := format.ElementAt(i)

		location := effect.AttributeLocationNotFound
		if e != nil {
			location = e.AttributeLocation(element.Type)
		}
		if location == effect.AttributeLocationNotFound {
			offset += uint64(element.ByteSize())
			continue
		}

		vf, ok := componentVertexFormats[element.Size]
		if !ok {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("no wgpu vertex format for %s element with %d components",
				element.Type, element.Size)
		}

		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         vf,
			Offset:         offset,
			ShaderLocation: uint32(location),
		})
		offset += uint64(element.ByteSize())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}

// PrimitiveTopology maps a geometry primitive type to the wgpu topology used
// in pipeline creation.
//
// Parameters:
//   - t: the geometry primitive type
//
// Returns:
//   - wgpu.PrimitiveTopology: the corresponding wgpu topology
func PrimitiveTopology(t geometry.PrimitiveType) wgpu.PrimitiveTopology {
	switch t {
	case geometry.PrimitiveTriangleStrip:
		return wgpu.PrimitiveTopologyTriangleStrip
	case geometry.PrimitiveLineList:
		return wgpu.PrimitiveTopologyLineList
	case geometry.PrimitiveLineStrip:
		return wgpu.PrimitiveTopologyLineStrip
	case geometry.PrimitivePointList:
		return wgpu.PrimitiveTopologyPointList
	default:
		return wgpu.PrimitiveTopologyTriangleList
	}
}
