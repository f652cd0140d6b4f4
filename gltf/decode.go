package gltf

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/parse"
)

var (
	ErrBadModel = errors.New("bad model")
	ErrParse    = errors.New("parse error")
)

// BufferReader reads the contents of a buffer given its resolved path.
type BufferReader func(path string) ([]byte, error)

// Load reads, parses and decodes the glTF document at path. Buffers are read
// from files relative to the document.
func Load(path string) (*Model, error) {
	root, err := parse.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer ir.Release(root)
	if err := ir.FirstError(root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return Decode(root, filepath.Dir(path), nil)
}

// Decode extracts a model from a parsed document. Relative buffer URIs are
// joined to dir and read with rd, which defaults to os.ReadFile. The returned
// model does not reference root.
func Decode(root *ir.Node, dir string, rd BufferReader) (*Model, error) {
	if rd == nil {
		rd = os.ReadFile
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no document", ErrBadModel)
	}
	if root.Type != ir.ObjectType {
		if err := root.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: document is %s, not an object", ErrBadModel, root.Type)
	}
	m := &Model{}
	var err error
	if m.Buffers, err = decodeBuffers(root, dir, rd); err != nil {
		return nil, err
	}
	if m.BufferViews, err = decodeViews(root); err != nil {
		return nil, err
	}
	if m.Accessors, err = decodeAccessors(root); err != nil {
		return nil, err
	}
	if m.Meshes, err = decodeMeshes(root); err != nil {
		return nil, err
	}
	if debug.GLTF() {
		debug.Logf("gltf: %d buffers %d views %d accessors %d meshes\n",
			len(m.Buffers), len(m.BufferViews), len(m.Accessors), len(m.Meshes))
	}
	return m, nil
}

// list returns the elements of the array member key of root. A missing
// member is an empty list.
func list(root *ir.Node, key string) ([]*ir.Node, error) {
	arr := root.Member(key)
	switch arr.Type {
	case ir.ArrayType:
		return arr.Values, nil
	case ir.ErrorType:
		if arr.Error.Kind == ir.PropertyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrBadModel, key, arr.Err())
	default:
		return nil, fmt.Errorf("%w: %s is %s, not an array", ErrBadModel, key, arr.Type)
	}
}

func intField(obj *ir.Node, where, key string, def int, required bool) (int, error) {
	v := obj.Member(key)
	switch v.Type {
	case ir.IntegerType:
		if v.Int < 0 {
			return 0, fmt.Errorf("%w: %s.%s is negative", ErrBadModel, where, key)
		}
		return int(v.AsInt()), nil
	case ir.ErrorType:
		if v.Error.Kind == ir.PropertyNotFound && !required {
			return def, nil
		}
		return 0, fmt.Errorf("%w: %s.%s: %w", ErrBadModel, where, key, v.Err())
	default:
		return 0, fmt.Errorf("%w: %s.%s is %s, not an integer", ErrBadModel, where, key, v.Type)
	}
}

func decodeBuffers(root *ir.Node, dir string, rd BufferReader) ([][]byte, error) {
	bufs, err := list(root, "buffers")
	if err != nil {
		return nil, err
	}
	res := make([][]byte, len(bufs))
	for i, buf := range bufs {
		uri := buf.Member("uri")
		if uri.Type != ir.StringType {
			return nil, fmt.Errorf("%w: buffers[%d] has no uri", ErrBadModel, i)
		}
		d, err := readURI(uri.AsString(), dir, rd)
		if err != nil {
			return nil, fmt.Errorf("buffers[%d]: %w", i, err)
		}
		n, err := intField(buf, fmt.Sprintf("buffers[%d]", i), "byteLength", len(d), false)
		if err != nil {
			return nil, err
		}
		if n > len(d) {
			return nil, fmt.Errorf("%w: buffers[%d] has %d bytes, byteLength is %d", ErrBadModel, i, len(d), n)
		}
		res[i] = d[:n]
	}
	return res, nil
}

func readURI(uri, dir string, rd BufferReader) ([]byte, error) {
	if rest, ok := strings.CutPrefix(uri, "data:"); ok {
		_, data, ok := strings.Cut(rest, ";base64,")
		if !ok {
			return nil, fmt.Errorf("%w: unsupported data uri", ErrBadModel)
		}
		return base64.StdEncoding.DecodeString(data)
	}
	p := filepath.Join(dir, filepath.FromSlash(uri))
	if debug.GLTF() {
		debug.Logf("gltf: reading buffer %s\n", p)
	}
	return rd(p)
}

func decodeViews(root *ir.Node) ([]BufferView, error) {
	views, err := list(root, "bufferViews")
	if err != nil {
		return nil, err
	}
	res := make([]BufferView, len(views))
	for i, view := range views {
		where := fmt.Sprintf("bufferViews[%d]", i)
		bv := &res[i]
		if bv.Buffer, err = intField(view, where, "buffer", 0, true); err != nil {
			return nil, err
		}
		if bv.ByteOffset, err = intField(view, where, "byteOffset", 0, false); err != nil {
			return nil, err
		}
		if bv.ByteLength, err = intField(view, where, "byteLength", 0, true); err != nil {
			return nil, err
		}
		if bv.ByteStride, err = intField(view, where, "byteStride", 0, false); err != nil {
			return nil, err
		}
		target, err := intField(view, where, "target", 0, false)
		if err != nil {
			return nil, err
		}
		bv.Target = Target(target)
	}
	return res, nil
}

func decodeAccessors(root *ir.Node) ([]Accessor, error) {
	accs, err := list(root, "accessors")
	if err != nil {
		return nil, err
	}
	res := make([]Accessor, len(accs))
	for i, acc := range accs {
		where := fmt.Sprintf("accessors[%d]", i)
		a := &res[i]
		if a.BufferView, err = intField(acc, where, "bufferView", 0, false); err != nil {
			return nil, err
		}
		if a.ByteOffset, err = intField(acc, where, "byteOffset", 0, false); err != nil {
			return nil, err
		}
		ct, err := intField(acc, where, "componentType", 0, true)
		if err != nil {
			return nil, err
		}
		a.ComponentType = ComponentType(ct)
		if a.ComponentType.Size() == 0 {
			return nil, fmt.Errorf("%w: %s: unknown component type %d", ErrBadModel, where, ct)
		}
		a.Normalized = acc.Member("normalized").AsBool()
		if a.Count, err = intField(acc, where, "count", 0, true); err != nil {
			return nil, err
		}
		if a.Type, err = ParseAccessorType(acc.Member("type").AsString()); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
	}
	return res, nil
}

func decodeMeshes(root *ir.Node) ([]Mesh, error) {
	meshes, err := list(root, "meshes")
	if err != nil {
		return nil, err
	}
	res := make([]Mesh, len(meshes))
	for i, mesh := range meshes {
		where := fmt.Sprintf("meshes[%d]", i)
		prim := mesh.Resolve("primitives[0]")
		if prim.IsError() {
			return nil, fmt.Errorf("%w: %s has no primitive: %w", ErrBadModel, where, prim.Err())
		}
		m := &res[i]
		m.Name = mesh.Member("name").AsString()
		m.Position, m.Normal, m.TexCoord = -1, -1, -1
		attrs := prim.Member("attributes")
		for j, name := range attrs.Keys() {
			var dst *int
			switch name {
			case "POSITION":
				dst = &m.Position
			case "NORMAL":
				dst = &m.Normal
			case "TEXCOORD_0":
				dst = &m.TexCoord
			default:
				continue
			}
			v := attrs.Values[j]
			if v.Type != ir.IntegerType || v.Int < 0 {
				return nil, fmt.Errorf("%w: %s attribute %s is not an accessor index", ErrBadModel, where, name)
			}
			*dst = int(v.Int)
		}
		if m.Indices, err = intField(prim, where, "indices", -1, false); err != nil {
			return nil, err
		}
	}
	return res, nil
}
