package geometry

import (
	"testing"
)

func TestVertexFormatStride(t *testing.T) {
	f := NewVertexFormat(
		NewVertexElement(VertexElementPosition, 0),
		NewVertexElement(VertexElementNormal, 0),
		NewVertexElement(VertexElementTexCoord0, 0),
	)
	if f.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.Len())
	}
	if f.VertexFloats() != 8 {
		t.Errorf("VertexFloats() = %d, want 8", f.VertexFloats())
	}
	if f.VertexSize() != 8*ComponentByteSize {
		t.Errorf("VertexSize() = %d, want %d", f.VertexSize(), 8*ComponentByteSize)
	}
}

func TestVertexFormatFromTypes(t *testing.T) {
	f := NewVertexFormatFromTypes(VertexElementPosition, VertexElementColor)
	if f.VertexFloats() != 7 {
		t.Errorf("VertexFloats() = %d, want 7 (3 position + 4 color)", f.VertexFloats())
	}
	if got := f.ElementAt(1); got.Type != VertexElementColor || got.Size != 4 {
		t.Errorf("ElementAt(1) = %+v, want default-sized color element", got)
	}
}

func TestVertexFormatValidity(t *testing.T) {
	tests := []struct {
		name   string
		format VertexFormat
		want   bool
	}{
		{"empty", NewVertexFormat(), false},
		{"no position", NewVertexFormatFromTypes(VertexElementNormal, VertexElementColor), false},
		{"position only", NewVertexFormatFromTypes(VertexElementPosition), true},
		{"position with others", NewVertexFormatFromTypes(VertexElementPosition, VertexElementTexCoord0), true},
	}
	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.want {
			t.Errorf("%s: IsValid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVertexFormatDuplicateTypesPermitted(t *testing.T) {
	f := NewVertexFormatFromTypes(VertexElementPosition, VertexElementPosition)
	if !f.IsValid() {
		t.Error("IsValid() = false, want true for duplicated position")
	}
	if f.VertexFloats() != 6 {
		t.Errorf("VertexFloats() = %d, want 6 (duplicates occupy separate stride slots)", f.VertexFloats())
	}
}

func TestVertexFormatEquals(t *testing.T) {
	base := NewVertexFormatFromTypes(VertexElementPosition, VertexElementColor)

	same := NewVertexFormatFromTypes(VertexElementPosition, VertexElementColor)
	if !base.Equals(same) {
		t.Error("formats built from identical type lists should compare equal")
	}

	reordered := NewVertexFormatFromTypes(VertexElementColor, VertexElementPosition)
	if base.Equals(reordered) {
		t.Error("reordered formats should not compare equal")
	}

	resized := NewVertexFormat(
		NewVertexElement(VertexElementPosition, 4),
		NewVertexElement(VertexElementColor, 0),
	)
	if base.Equals(resized) {
		t.Error("formats with a differently sized element should not compare equal")
	}

	shorter := NewVertexFormatFromTypes(VertexElementPosition)
	if base.Equals(shorter) {
		t.Error("formats with different element counts should not compare equal")
	}
}

func TestVertexFormatCopiesElements(t *testing.T) {
	elements := []VertexElement{NewVertexElement(VertexElementPosition, 0)}
	f := NewVertexFormat(elements...)
	elements[0] = NewVertexElement(VertexElementColor, 0)
	if f.ElementAt(0).Type != VertexElementPosition {
		t.Error("mutating the source slice after construction changed the format")
	}
}

func TestVertexFormatElementAtOutOfRangePanics(t *testing.T) {
	f := NewVertexFormatFromTypes(VertexElementPosition)
	mustPanic(t, "ElementAt out of range", func() {
		f.ElementAt(1)
	})
}
