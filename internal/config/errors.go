package config

import (
	"github.com/cockroachdb/errors"
)

// Errors returned while building a Configuration.
var (
	// ErrMissingSection indicates a mandatory top-level table is absent.
	ErrMissingSection = errors.New("missing section")

	// ErrInvalidValue indicates a value has the wrong shape, such as a
	// number where a key combination string was expected.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidAction indicates an action descriptor with none, or more
	// than one, of command, remap and move_layer.
	ErrInvalidAction = errors.New("invalid action")

	// ErrUnknownLayer indicates a reference to a layer that is not declared.
	ErrUnknownLayer = errors.New("unknown layer")

	// ErrDuplicateAssignment indicates a key bound twice within one layer.
	ErrDuplicateAssignment = errors.New("duplicate assignment")
)

// typeName describes a decoded TOML value for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, int, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return "value"
	}
}
