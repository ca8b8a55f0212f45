// Package karabiner models the parts of the Karabiner-Elements
// configuration schema that karamapper produces.
//
// Field names, nesting and the "basic" manipulator type must match the
// schema exactly or Karabiner-Elements rejects the file. Types here carry
// no behavior beyond construction helpers and JSON encoding.
package karabiner
