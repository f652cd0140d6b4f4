package gltf

import (
	"fmt"
)

// Target is the GL binding point hint of a buffer view.
type Target int

const (
	TargetNone         Target = 0
	ArrayBuffer        Target = 34962
	ElementArrayBuffer Target = 34963
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case ArrayBuffer:
		return "ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "ELEMENT_ARRAY_BUFFER"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

type ComponentType int

const (
	Byte          ComponentType = 5120
	UnsignedByte  ComponentType = 5121
	Short         ComponentType = 5122
	UnsignedShort ComponentType = 5123
	UnsignedInt   ComponentType = 5125
	Float         ComponentType = 5126
)

// Size returns the size in bytes of one component, or 0 for an unknown
// component type.
func (c ComponentType) Size() int {
	switch c {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case UnsignedInt, Float:
		return 4
	default:
		return 0
	}
}

func (c ComponentType) String() string {
	switch c {
	case Byte:
		return "BYTE"
	case UnsignedByte:
		return "UNSIGNED_BYTE"
	case Short:
		return "SHORT"
	case UnsignedShort:
		return "UNSIGNED_SHORT"
	case UnsignedInt:
		return "UNSIGNED_INT"
	case Float:
		return "FLOAT"
	default:
		return fmt.Sprintf("componentType(%d)", int(c))
	}
}

type AccessorType int

const (
	Scalar AccessorType = iota
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

var accessorTypeNames = [...]string{
	Scalar: "SCALAR",
	Vec2:   "VEC2",
	Vec3:   "VEC3",
	Vec4:   "VEC4",
	Mat2:   "MAT2",
	Mat3:   "MAT3",
	Mat4:   "MAT4",
}

func ParseAccessorType(v string) (AccessorType, error) {
	for i, name := range accessorTypeNames {
		if name == v {
			return AccessorType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown accessor type %q", ErrBadModel, v)
}

func (t AccessorType) String() string {
	if t < 0 || int(t) >= len(accessorTypeNames) {
		return fmt.Sprintf("accessorType(%d)", int(t))
	}
	return accessorTypeNames[t]
}

// Components returns the number of components of an element of type t.
func (t AccessorType) Components() int {
	switch t {
	case Scalar:
		return 1
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4, Mat2:
		return 4
	case Mat3:
		return 9
	case Mat4:
		return 16
	default:
		return 0
	}
}

type BufferView struct {
	Buffer     int
	ByteOffset int
	ByteLength int
	ByteStride int
	Target     Target
}

type Accessor struct {
	BufferView    int
	ByteOffset    int
	ComponentType ComponentType
	Normalized    bool
	Count         int
	Type          AccessorType
}

// ElementSize returns the size in bytes of one element.
func (a *Accessor) ElementSize() int {
	return a.ComponentType.Size() * a.Type.Components()
}

// Mesh holds the accessor indices of the first primitive of a mesh. Absent
// attributes are -1.
type Mesh struct {
	Name     string
	Position int
	Normal   int
	TexCoord int
	Indices  int
}

type Model struct {
	Buffers     [][]byte
	BufferViews []BufferView
	Accessors   []Accessor
	Meshes      []Mesh
}
