package gltf

import (
	"errors"
	"fmt"
)

// Validate checks the cross references of m: views must lie within their
// buffer, accessors within their view and meshes must name existing
// accessors.
func (m *Model) Validate() error {
	var errs []error
	for i := range m.BufferViews {
		bv := &m.BufferViews[i]
		if bv.Buffer >= len(m.Buffers) {
			errs = append(errs, fmt.Errorf("%w: bufferViews[%d] references missing buffer %d", ErrBadModel, i, bv.Buffer))
			continue
		}
		if end := bv.ByteOffset + bv.ByteLength; end > len(m.Buffers[bv.Buffer]) {
			errs = append(errs, fmt.Errorf("%w: bufferViews[%d] ends at %d past buffer %d of %d bytes", ErrBadModel, i, end, bv.Buffer, len(m.Buffers[bv.Buffer])))
		}
	}
	for i := range m.Accessors {
		a := &m.Accessors[i]
		if a.BufferView >= len(m.BufferViews) {
			errs = append(errs, fmt.Errorf("%w: accessors[%d] references missing view %d", ErrBadModel, i, a.BufferView))
			continue
		}
		if end := a.byteEnd(&m.BufferViews[a.BufferView]); end > m.BufferViews[a.BufferView].ByteLength {
			errs = append(errs, fmt.Errorf("%w: accessors[%d] ends at %d past view %d", ErrBadModel, i, end, a.BufferView))
		}
	}
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		for _, ref := range []struct {
			name string
			idx  int
		}{
			{"POSITION", mesh.Position},
			{"NORMAL", mesh.Normal},
			{"TEXCOORD_0", mesh.TexCoord},
			{"indices", mesh.Indices},
		} {
			if ref.idx >= len(m.Accessors) {
				errs = append(errs, fmt.Errorf("%w: meshes[%d] %s references missing accessor %d", ErrBadModel, i, ref.name, ref.idx))
			}
		}
	}
	return errors.Join(errs...)
}

// stride returns the distance between elements of a within bv.
func (a *Accessor) stride(bv *BufferView) int {
	if bv.ByteStride != 0 {
		return bv.ByteStride
	}
	return a.ElementSize()
}

func (a *Accessor) byteEnd(bv *BufferView) int {
	if a.Count == 0 {
		return a.ByteOffset
	}
	return a.ByteOffset + a.stride(bv)*(a.Count-1) + a.ElementSize()
}

// AccessorData returns the bytes of buffer memory covered by accessor i,
// from its first element to the end of its last one.
func (m *Model) AccessorData(i int) ([]byte, error) {
	if i < 0 || i >= len(m.Accessors) {
		return nil, fmt.Errorf("%w: no accessor %d", ErrBadModel, i)
	}
	a := &m.Accessors[i]
	if a.BufferView >= len(m.BufferViews) {
		return nil, fmt.Errorf("%w: accessors[%d] references missing view %d", ErrBadModel, i, a.BufferView)
	}
	bv := &m.BufferViews[a.BufferView]
	if bv.Buffer >= len(m.Buffers) {
		return nil, fmt.Errorf("%w: bufferViews[%d] references missing buffer %d", ErrBadModel, a.BufferView, bv.Buffer)
	}
	buf := m.Buffers[bv.Buffer]
	start := bv.ByteOffset + a.ByteOffset
	end := bv.ByteOffset + a.byteEnd(bv)
	if end > bv.ByteOffset+bv.ByteLength || end > len(buf) {
		return nil, fmt.Errorf("%w: accessors[%d] out of range", ErrBadModel, i)
	}
	return buf[start:end], nil
}
