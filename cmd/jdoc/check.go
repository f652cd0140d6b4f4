package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/parse"
	"github.com/signadot/tony-format/go-jdoc/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = eachArg(args, func(i int, file string) error {
		d, err := readObjFile(cc, file)
		if err != nil {
			return err
		}
		doc := parse.Parse(d, cfg.parseOpts()...)
		errs := docErrors(doc, cfg.All)
		if len(errs) == 0 {
			theLog.Debug("document ok", "file", file)
			return nil
		}
		bad++
		if cfg.Quiet {
			return nil
		}
		for _, e := range errs {
			fmt.Fprintf(cc.Out, "%s:%d:%d: %s: %s\n", file, e.Line, e.Column, e.Kind,
				token.PosAt(d, e.Line, e.Column).Sample(d))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad != 0 {
		if !cfg.Quiet {
			theLog.Warn("documents with errors", "count", bad)
		}
		return cli.ExitCodeErr(1)
	}
	return nil
}

func docErrors(doc *ir.Node, all bool) []*ir.Error {
	var res []*ir.Error
	_ = doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || (!all && len(res) != 0) {
			return false, nil
		}
		if n.IsError() {
			res = append(res, n.Error)
			return false, nil
		}
		return true, nil
	})
	return res
}
