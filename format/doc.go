// Package format names the output formats documents can be encoded to.
package format
