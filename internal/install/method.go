// Package install writes a compiled Karabiner document to its destination:
// standard output, a replaced karabiner.json, or an existing karabiner.json
// extended in place.
package install

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownMethod is returned for an output method name that is not recognized.
var ErrUnknownMethod = errors.New("unknown output method")

// Method selects where a compiled document goes.
type Method string

// Output methods.
const (
	// MethodStdout prints the document.
	MethodStdout Method = "stdout"
	// MethodReplace overwrites the target file with the document.
	MethodReplace Method = "replace"
	// MethodExtend merges the document into the target file.
	MethodExtend Method = "extend"
)

// Methods returns every output method.
func Methods() []Method {
	return []Method{MethodStdout, MethodReplace, MethodExtend}
}

// ParseMethod resolves a method name case-insensitively.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case MethodStdout, MethodReplace, MethodExtend:
		return m, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ErrUnknownMethod, "%q", name),
		"use one of stdout, replace, extend")
}

// WritesFile reports whether the method touches the target file.
func (m Method) WritesFile() bool {
	return m == MethodReplace || m == MethodExtend
}

func (m Method) String() string {
	return string(m)
}
