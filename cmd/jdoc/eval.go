package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jdocEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	script := args[0]
	env := eval.Env(cfg.Env)
	opts := cfg.encOpts(cc.Out)
	return eachArg(args[1:], func(i int, file string) error {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Expand {
			s, err := eval.ExpandString(doc, script, env)
			if err != nil {
				return fmt.Errorf("error expanding in %s: %w", file, err)
			}
			_, err = fmt.Fprintln(cc.Out, s)
			return err
		}
		res, err := eval.EvalNode(doc, script, env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

// envFunc sets a.b.c=val in env, creating nested maps for a and b.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
