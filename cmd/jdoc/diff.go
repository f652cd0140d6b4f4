package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/jsonpatch"
	"github.com/signadot/tony-format/go-jdoc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(from, to)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Merge {
		mp, err := jsonpatch.CreateMerge(from, to)
		if err != nil {
			return fmt.Errorf("error creating merge patch: %w", err)
		}
		fmt.Fprintf(cc.Out, "%s\n", mp)
		return cli.ExitCodeErr(1)
	}
	for i := range changes {
		fmt.Fprintln(cc.Out, changes[i].String())
	}
	return cli.ExitCodeErr(1)
}
