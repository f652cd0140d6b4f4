package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/parse"
	"github.com/signadot/tony-format/go-jdoc/token"

	"github.com/scott-cotton/cli"
)

func readObjFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile parses the document at path, "-" being stdin. A document
// containing errors is an error reporting the first one.
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	node := parse.Parse(d, opts...)
	if err := docError(d, node); err != nil {
		return nil, err
	}
	return node, nil
}

// docError returns the first error in node with an excerpt of d around it.
func docError(d []byte, node *ir.Node) error {
	err := ir.FirstError(node)
	if err == nil {
		return nil
	}
	var perr *ir.Error
	if !errors.As(err, &perr) || perr.Line == 0 {
		return err
	}
	return fmt.Errorf("%w: %s", err, token.PosAt(d, perr.Line, perr.Column).Sample(d))
}

// eachArg calls f on each file argument, or on stdin when there are none.
func eachArg(args []string, f func(i int, path string) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := f(i, arg); err != nil {
			return err
		}
	}
	return nil
}
