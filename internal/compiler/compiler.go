package compiler

import (
	"github.com/cockroachdb/errors"

	"github.com/Pascal736/karamapper/internal/config"
	"github.com/Pascal736/karamapper/internal/karabiner"
	"github.com/Pascal736/karamapper/internal/key"
)

// DefaultProfileName names the generated profile unless overridden.
const DefaultProfileName = "karamapper"

// Options controls the profile wrapper around the compiled rules.
type Options struct {
	// ProfileName is the name of the generated profile.
	ProfileName string

	// Selected marks the generated profile as the active one.
	Selected bool

	// Device identifies the device that receives the simple modifications.
	Device karabiner.DeviceIdentifiers
}

// DefaultOptions returns options for a selected profile applying simple
// modifications to the built-in keyboard.
func DefaultOptions() Options {
	return Options{
		ProfileName: DefaultProfileName,
		Selected:    true,
		Device:      karabiner.DeviceIdentifiers{IsKeyboard: true},
	}
}

// Compile translates cfg into a Karabiner document with a single profile.
// cfg must come from config.FromTree; compilation itself cannot fail.
func Compile(cfg *config.Configuration, opts Options) *karabiner.Document {
	if opts.ProfileName == "" {
		opts.ProfileName = DefaultProfileName
	}

	return &karabiner.Document{
		Profiles: []karabiner.Profile{{
			Name:     opts.ProfileName,
			Selected: opts.Selected,
			ComplexModifications: karabiner.ComplexModifications{
				Rules: Rules(cfg),
			},
			Devices: []karabiner.Device{{
				Identifiers:         opts.Device,
				SimpleModifications: SimpleModifications(cfg.SimpleRemaps),
			}},
		}},
	}
}

// Rules returns every complex modification rule. Karabiner applies the
// first manipulator that matches, so guarded layer bindings come first,
// then activation rules, then unguarded bindings (base bindings and layer
// shifts). A key bound both in base and in a layer therefore acts as the
// layer binding while that layer is active.
func Rules(cfg *config.Configuration) []karabiner.Rule {
	layers := cfg.NonBaseLayers()

	var guarded, unguarded []karabiner.Rule
	for _, a := range cfg.Assignments {
		r := AssignmentRule(a, layers)
		if isGuarded(r) {
			guarded = append(guarded, r)
		} else {
			unguarded = append(unguarded, r)
		}
	}

	rules := make([]karabiner.Rule, 0, len(layers)+len(cfg.Assignments))
	rules = append(rules, guarded...)
	for _, l := range layers {
		rules = append(rules, ActivationRule(l, layers))
	}
	return append(rules, unguarded...)
}

func isGuarded(r karabiner.Rule) bool {
	for _, m := range r.Manipulators {
		if len(m.Conditions) > 0 {
			return true
		}
	}
	return false
}

// ActivationRule returns the unconditional rule that switches to layer
// when its activation combination is pressed. layers are all non-base
// layers; every one except the target is cleared.
func ActivationRule(layer config.Layer, layers []config.Layer) karabiner.Rule {
	return karabiner.NewRule("Change to "+layer.Name, karabiner.Manipulator{
		From: fromCombo(layer.Keys),
		To:   switchTo(layer.Name, "", layers),
	})
}

// AssignmentRule returns the rule for one layer assignment.
func AssignmentRule(a config.LayerAssignment, layers []config.Layer) karabiner.Rule {
	m := karabiner.Manipulator{
		From: karabiner.From(a.Key.String()),
	}

	var description string
	switch action := a.Action.(type) {
	case config.Command:
		description = "Run command " + action.Shell
		m.Conditions = guard(a.Layer)
		m.To = []karabiner.ToEvent{karabiner.Shell(action.Shell)}
		m.ToDelayedAction = afterwards(a, layers)

	case config.LayerRemap:
		description = "Remap " + a.Key.String() + " to " + action.To.String()
		m.Conditions = guard(a.Layer)
		m.To = []karabiner.ToEvent{toCombo(action.To)}
		m.ToDelayedAction = afterwards(a, layers)

	case config.LayerShift:
		// Shifts are available from every layer, like activation rules.
		description = "Switch to " + action.Target
		m.To = switchTo(action.Target, a.Layer.Name, layers)

	default:
		panic(errors.AssertionFailedf("unhandled action type %T", a.Action))
	}

	if a.HasDescription() {
		description = a.Description
	}
	return karabiner.NewRule(description, m)
}

// SimpleModifications returns one device-level modification per remap.
func SimpleModifications(remaps []config.SimpleRemap) []karabiner.SimpleModification {
	mods := make([]karabiner.SimpleModification, 0, len(remaps))
	for _, r := range remaps {
		to := make([]karabiner.SimpleKey, 0, len(r.To))
		for _, k := range r.To {
			to = append(to, karabiner.SimpleKey{KeyCode: k.String()})
		}
		mods = append(mods, karabiner.SimpleModification{
			From: karabiner.SimpleKey{KeyCode: r.From.String()},
			To:   to,
		})
	}
	return mods
}

// guard returns the condition that the layer is active. Base has no
// variable and needs no guard.
func guard(layer config.Layer) []karabiner.Condition {
	if layer.IsBase() {
		return nil
	}
	return []karabiner.Condition{karabiner.VariableIf(layer.Name, karabiner.VariableActive)}
}

// afterwards returns the delayed action moving from the assignment's layer
// to its next layer, or nil when it stays where it is.
func afterwards(a config.LayerAssignment, layers []config.Layer) *karabiner.DelayedAction {
	if !a.HasNextLayer() {
		return nil
	}

	var events []karabiner.ToEvent
	switch {
	case a.Layer.IsBase():
		// Base bindings are unguarded and can fire from any layer, so the
		// destination has to become the only active layer.
		events = switchTo(a.NextLayer, "", layers)
	case a.NextLayer == a.Layer.Name:
		return nil
	default:
		// The guard guarantees the source is the only active layer.
		// Activate before deactivating so the writes never pass through
		// "no layer active" on the way to another layer.
		if a.NextLayer != config.BaseLayer {
			events = append(events, karabiner.SetVar(a.NextLayer, karabiner.VariableActive))
		}
		events = append(events, karabiner.SetVar(a.Layer.Name, karabiner.VariableInactive))
	}

	if len(events) == 0 {
		return nil
	}
	return karabiner.OnInvoke(events...)
}

// switchTo returns the immediate writes that make target the only active
// layer: target first, then source, then every remaining layer.
func switchTo(target, source string, layers []config.Layer) []karabiner.ToEvent {
	var events []karabiner.ToEvent
	if target != config.BaseLayer {
		events = append(events, karabiner.SetVar(target, karabiner.VariableActive))
	}
	if source != "" && source != config.BaseLayer && source != target {
		events = append(events, karabiner.SetVar(source, karabiner.VariableInactive))
	}
	for _, l := range layers {
		if l.Name == target || l.Name == source {
			continue
		}
		events = append(events, karabiner.SetVar(l.Name, karabiner.VariableInactive))
	}
	return events
}

func fromCombo(c key.Combo) karabiner.FromEvent {
	return karabiner.From(c.Trigger().String(), tokens(c.Modifiers())...)
}

func toCombo(c key.Combo) karabiner.ToEvent {
	return karabiner.KeyPress(c.Trigger().String(), tokens(c.Modifiers())...)
}

func tokens(keys []key.Key) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
