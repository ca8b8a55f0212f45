// Package key provides the closed catalog of physical keys understood by
// Karabiner-Elements and parsing for key combinations.
//
// This package defines the fundamental types for describing keyboard input
// in a layer configuration:
//
//   - Key: Identifies a physical key by its key_code token
//   - Combo: An ordered set of keys held together ("hyper+v")
//
// # Key Tokens
//
// Every key has exactly one canonical token, the key_code Karabiner uses in
// its JSON configuration:
//
//   - Letters and digits: "a", "z", "1", "0"
//   - Modifiers: "left_command", "right_option", "fn", "hyper"
//   - Named keys: "caps_lock", "escape", "spacebar", "keypad_1", "f13"
//
// Parse and Key.String are exact inverses over the catalog. There are no
// aliases and no case folding.
//
// # Combinations
//
// Combinations are written as "+"-joined tokens. The first key is the
// trigger; the remaining keys are modifiers that must be held with it:
//
//	q+left_command+left_shift
package key
