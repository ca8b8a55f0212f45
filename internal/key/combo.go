package key

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyCombo is returned when a combination has no keys.
var ErrEmptyCombo = errors.New("empty key combination")

// Combo is an ordered set of keys pressed together. The first key is the
// trigger, any remaining keys are held modifiers.
type Combo []Key

// ParseCombo parses a "+"-joined combination such as "hyper+v".
func ParseCombo(spec string) (Combo, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, ErrEmptyCombo
	}

	parts := strings.Split(spec, "+")
	combo := make(Combo, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, errors.Wrapf(ErrEmptyCombo, "empty key in %q", spec)
		}
		k, err := Parse(p)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", spec)
		}
		combo = append(combo, k)
	}
	return combo, nil
}

// ParseTokens builds a combination from individual tokens.
func ParseTokens(tokens []string) (Combo, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCombo
	}

	combo := make(Combo, 0, len(tokens))
	for _, t := range tokens {
		k, err := Parse(t)
		if err != nil {
			return nil, err
		}
		combo = append(combo, k)
	}
	return combo, nil
}

// Of builds a combination from keys.
func Of(keys ...Key) Combo {
	return append(Combo(nil), keys...)
}

// Trigger returns the first key, or KeyNone for an empty combination.
func (c Combo) Trigger() Key {
	if len(c) == 0 {
		return KeyNone
	}
	return c[0]
}

// Modifiers returns the keys held together with the trigger.
func (c Combo) Modifiers() []Key {
	if len(c) < 2 {
		return nil
	}
	return append([]Key(nil), c[1:]...)
}

// Tokens returns the canonical token of every key in order.
func (c Combo) Tokens() []string {
	tokens := make([]string, len(c))
	for i, k := range c {
		tokens[i] = k.String()
	}
	return tokens
}

// String returns the "+"-joined form accepted by ParseCombo.
func (c Combo) String() string {
	return strings.Join(c.Tokens(), "+")
}
