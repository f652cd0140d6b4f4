package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/ir/jpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := jpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachArg(args[1:], func(i int, file string) error {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res := doc.ResolvePath(p)
		if debug.Path() {
			debug.Logf("get %s in %s gave %s\n", p, file, debug.Doc{Node: res})
		}
		if err := res.Err(); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, p, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
