// Package config provides the layer configuration model for karamapper.
//
// A Configuration is built once from the abstract tree produced by the
// TOML loader and is read-only afterwards. It holds three kinds of entries:
//
//   - SimpleRemap: an unconditional key substitution (caps_lock -> escape)
//   - Layer: a named, modal set of bindings switched on by a key combination
//   - LayerAssignment: "while this layer is active, this key does that"
//
// # Input Shape
//
//	[simple_remaps]
//	caps_lock = "escape"
//
//	[layers]
//	apps = "q+left_command+left_shift+left_option+left_control"
//	nav  = "hyper+v"
//
//	[apps]
//	t = { command = "open -a Terminal", next_layer = "base" }
//	n = { move_layer = "nav" }
//
//	[nav_keys]
//	h = { remap = "left_arrow" }
//
// Sections other than simple_remaps and layers hold assignments. A section
// belongs to the declared layer whose name is its longest prefix, so
// "nav_keys" feeds the "nav" layer. The reserved layer "base" is the state
// in which no other layer is active; it never needs to be declared.
//
// # Errors
//
// Construction stops at the first problem and returns an error wrapping one
// of the sentinel errors below, naming the section, key and offending token.
package config
