package geometry

import (
	"encoding/binary"
	"math"
	"testing"
)

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func positionColorFormat() VertexFormat {
	return NewVertexFormatFromTypes(VertexElementPosition, VertexElementColor)
}

func TestMeshAddVertex(t *testing.T) {
	m := NewMesh(WithVertexFormat(positionColorFormat()))

	first := m.AddVertex([]float32{1, 2, 3, 1, 0, 0, 1})
	if first != 0 {
		t.Errorf("first AddVertex returned %d, want 0", first)
	}
	second := m.AddVertex([]float32{4, 5, 6, 0, 1, 0, 1})
	if second != 1 {
		t.Errorf("second AddVertex returned %d, want 1", second)
	}

	if m.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", m.VertexCount())
	}
	if len(m.VertexData()) != 14 {
		t.Errorf("len(VertexData()) = %d, want 14", len(m.VertexData()))
	}
	if m.VertexData()[7] != 4 {
		t.Errorf("VertexData()[7] = %v, want 4 (start of second vertex)", m.VertexData()[7])
	}
}

func TestMeshAddVertexWrongLengthPanics(t *testing.T) {
	m := NewMesh(WithVertexFormat(positionColorFormat()))
	mustPanic(t, "short vertex", func() {
		m.AddVertex([]float32{1, 2, 3})
	})
	mustPanic(t, "long vertex", func() {
		m.AddVertex(make([]float32, 8))
	})
	if m.VertexCount() != 0 {
		t.Errorf("VertexCount() = %d after failed appends, want 0", m.VertexCount())
	}
}

func TestMeshAddVertexInvalidFormatPanics(t *testing.T) {
	noPosition := NewMesh(WithVertexFormat(NewVertexFormatFromTypes(VertexElementColor)))
	mustPanic(t, "no-position format", func() {
		noPosition.AddVertex([]float32{1, 0, 0, 1})
	})

	unset := NewMesh()
	mustPanic(t, "unset format", func() {
		unset.AddVertex([]float32{0, 0, 0})
	})
}

func TestMeshAddVertices(t *testing.T) {
	m := NewMesh(WithVertexFormat(NewVertexFormatFromTypes(VertexElementPosition)))

	first := m.AddVertices([]float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	})
	if first != 0 {
		t.Errorf("AddVertices returned %d, want 0", first)
	}
	if m.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", m.VertexCount())
	}

	next := m.AddVertices([]float32{1, 1, 0})
	if next != 3 {
		t.Errorf("second AddVertices returned %d, want 3", next)
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", m.VertexCount())
	}
}

func TestMeshAddVerticesBadLengthPanics(t *testing.T) {
	m := NewMesh(WithVertexFormat(NewVertexFormatFromTypes(VertexElementPosition)))
	mustPanic(t, "empty input", func() {
		m.AddVertices(nil)
	})
	mustPanic(t, "non-multiple input", func() {
		m.AddVertices([]float32{0, 0, 0, 1})
	})
}

func TestMeshFormatLock(t *testing.T) {
	m := NewMesh(WithVertexFormat(positionColorFormat()))

	// Re-assignment is fine while the mesh is empty.
	m.SetVertexFormat(NewVertexFormatFromTypes(VertexElementPosition))
	m.AddVertex([]float32{0, 0, 0})

	mustPanic(t, "format change after data exists", func() {
		m.SetVertexFormat(positionColorFormat())
	})
	if got := m.VertexFormat().VertexFloats(); got != 3 {
		t.Errorf("format changed despite panic: VertexFloats() = %d, want 3", got)
	}
}

func TestMeshAggregatedIndexData(t *testing.T) {
	m := NewMesh(WithVertexFormat(NewVertexFormatFromTypes(VertexElementPosition)))
	m.AddPartIndices(PrimitiveTriangleList, 0, 1, 2)
	m.AddPartIndices(PrimitiveTriangleList, 2, 1, 3)

	if m.PartCount() != 2 {
		t.Fatalf("PartCount() = %d, want 2", m.PartCount())
	}

	got := m.IndexData()
	want := []uint16{0, 1, 2, 2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("len(IndexData()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IndexData()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if m.IndexCount() != 6 {
		t.Errorf("IndexCount() = %d, want 6", m.IndexCount())
	}
}

func TestMeshAggregatedIndexDataNoParts(t *testing.T) {
	m := NewMesh()
	got := m.IndexData()
	if len(got) != 0 {
		t.Errorf("len(IndexData()) = %d with no parts, want 0", len(got))
	}
	if m.IndexCount() != 0 {
		t.Errorf("IndexCount() = %d with no parts, want 0", m.IndexCount())
	}
}

func TestMeshAggregatedIndexDataSinglePart(t *testing.T) {
	m := NewMesh()
	part := m.AddPartIndices(PrimitiveLineList, 4, 5)
	got := m.IndexData()
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Errorf("IndexData() = %v, want [4 5]", got)
	}
	// The single-part case may alias the part's own storage.
	part.Add(6)
	if m.IndexCount() != 3 {
		t.Errorf("IndexCount() = %d after part append, want 3", m.IndexCount())
	}
}

func TestMeshAddPart(t *testing.T) {
	m := NewMesh()
	part := NewMeshPart(PrimitiveTriangleStrip, WithIndices(0, 1, 2, 3))
	returned := m.AddPart(part)
	if returned != part {
		t.Error("AddPart should return the appended part")
	}
	if m.PartAt(0) != part {
		t.Error("PartAt(0) should return the appended part")
	}
	mustPanic(t, "PartAt out of range", func() {
		m.PartAt(1)
	})
}

func TestMeshBuilderWithParts(t *testing.T) {
	a := NewMeshPart(PrimitiveTriangleList, WithIndices(0, 1, 2))
	b := NewMeshPart(PrimitiveLineList, WithIndices(0, 1))
	m := NewMesh(WithParts(a, b))
	if m.PartCount() != 2 {
		t.Fatalf("PartCount() = %d, want 2", m.PartCount())
	}
	if m.PartAt(0) != a || m.PartAt(1) != b {
		t.Error("WithParts should preserve part order")
	}
}

func TestMeshVertexBytes(t *testing.T) {
	m := NewMesh(WithVertexFormat(NewVertexFormatFromTypes(VertexElementPosition)))
	m.AddVertex([]float32{1, 2, 3})

	got := m.VertexBytes()
	if len(got) != 12 {
		t.Fatalf("len(VertexBytes()) = %d, want 12", len(got))
	}
	if bits := binary.LittleEndian.Uint32(got[4:8]); math.Float32frombits(bits) != 2 {
		t.Errorf("second packed component = %v, want 2", math.Float32frombits(bits))
	}
}

func TestMeshIndexBytes(t *testing.T) {
	m := NewMesh()
	m.AddPartIndices(PrimitiveTriangleList, 1, 258)

	got := m.IndexBytes()
	if len(got) != 4 {
		t.Fatalf("len(IndexBytes()) = %d, want 4", len(got))
	}
	if binary.LittleEndian.Uint16(got[0:2]) != 1 {
		t.Errorf("first packed index = %d, want 1", binary.LittleEndian.Uint16(got[0:2]))
	}
	if binary.LittleEndian.Uint16(got[2:4]) != 258 {
		t.Errorf("second packed index = %d, want 258", binary.LittleEndian.Uint16(got[2:4]))
	}
}
