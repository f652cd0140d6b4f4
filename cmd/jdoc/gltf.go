package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/gltf"

	"github.com/scott-cotton/cli"
)

func gltfSummary(cfg *GLTFConfig, cc *cli.Context, args []string) error {
	args, err := cfg.GLTF.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: gltf requires 1 argument, a .gltf file", cli.ErrUsage)
	}
	m, err := gltf.Load(args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	w := cc.Out
	fmt.Fprintf(w, "buffers: %d\n", len(m.Buffers))
	for i, b := range m.Buffers {
		fmt.Fprintf(w, "  [%d] %d bytes\n", i, len(b))
	}
	fmt.Fprintf(w, "bufferViews: %d\n", len(m.BufferViews))
	for i, bv := range m.BufferViews {
		fmt.Fprintf(w, "  [%d] buffer=%d offset=%d length=%d stride=%d target=%s\n",
			i, bv.Buffer, bv.ByteOffset, bv.ByteLength, bv.ByteStride, bv.Target)
	}
	fmt.Fprintf(w, "accessors: %d\n", len(m.Accessors))
	for i := range m.Accessors {
		a := &m.Accessors[i]
		fmt.Fprintf(w, "  [%d] view=%d offset=%d %s %s count=%d normalized=%t",
			i, a.BufferView, a.ByteOffset, a.Type, a.ComponentType, a.Count, a.Normalized)
		if cfg.Data {
			if d, err := m.AccessorData(i); err != nil {
				fmt.Fprintf(w, " data=<%v>", err)
			} else {
				fmt.Fprintf(w, " data=%d bytes", len(d))
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "meshes: %d\n", len(m.Meshes))
	for i, mesh := range m.Meshes {
		fmt.Fprintf(w, "  [%d] %q position=%d normal=%d texcoord=%d indices=%d\n",
			i, mesh.Name, mesh.Position, mesh.Normal, mesh.TexCoord, mesh.Indices)
	}
	if !cfg.Validate {
		return nil
	}
	if err := m.Validate(); err != nil {
		theLog.Error("invalid model", "file", args[0], "error", err)
		return cli.ExitCodeErr(1)
	}
	return nil
}
