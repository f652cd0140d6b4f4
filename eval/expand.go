package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/ir"
)

// ExpandString replaces each $[expr] in v by the result of evaluating expr
// against doc. The expression ends at the first ']' that is outside a
// quoted literal and does not close a '[' opened inside it. A backslash
// escapes the next character, so \] does not close it. An unterminated $[
// is kept literally.
func ExpandString(doc *ir.Node, v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	depth := 0
	var quote byte
	var outBuf, keyBuf []byte
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case exprStart == -1 && c == '$' && i+1 < len(v) && v[i+1] == '[':
			exprStart = i
			depth, quote = 0, 0
			keyBuf = keyBuf[:0]
			i++
		case exprStart == -1:
			outBuf = append(outBuf, c)
		case c == '\\' && i+1 < len(v):
			keyBuf = append(keyBuf, v[i+1])
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
			keyBuf = append(keyBuf, c)
		case c == '\'' || c == '"' || c == '`':
			quote = c
			keyBuf = append(keyBuf, c)
		case c == '[':
			depth++
			keyBuf = append(keyBuf, c)
		case c == ']' && depth > 0:
			depth--
			keyBuf = append(keyBuf, c)
		case c == ']':
			key := strings.TrimSpace(string(keyBuf))
			x, err := Eval(doc, key, env)
			if err != nil {
				return "", err
			}
			if debug.Path() {
				debug.Logf("eval %q gave %#v\n", key, x)
			}
			d, err := anyToBytes(x)
			if err != nil {
				return "", fmt.Errorf("could not marshal evaluation results for %s: %w", key, err)
			}
			outBuf = append(outBuf, d...)
			exprStart = -1
		default:
			keyBuf = append(keyBuf, c)
		}
	}
	if exprStart != -1 {
		outBuf = append(outBuf, v[exprStart:]...)
	}
	return string(outBuf), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case *ir.Node:
		return MarshalJSON(x)
	default:
		node, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		return MarshalJSON(node)
	}
}
