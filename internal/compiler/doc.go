// Package compiler lowers a layer Configuration into Karabiner-Elements
// rules.
//
// Karabiner has no notion of layers. Each non-base layer is emulated with a
// state variable named after it: 1 while the layer is active, 0 otherwise.
// Base is active when every variable is 0. The compiler emits:
//
//  1. One activation rule per non-base layer. It is unconditional, sets
//     the layer's variable and clears every other layer variable, so a
//     direct jump between layers never leaves two of them active.
//  2. One rule per assignment, guarded by "variable == 1" for its layer
//     (base assignments carry no guard). Commands and remaps that name a
//     next_layer switch layers through a delayed action once they fire.
//     Layer shifts are unguarded and switch immediately.
//  3. Device-level simple modifications for the global remaps.
//
// Compilation is pure and deterministic. The variables are only names in
// the emitted rules; the compiler never tracks which layer is active.
package compiler
