package config

import (
	"github.com/Pascal736/karamapper/internal/key"
)

// BaseLayer is the reserved name of the default layer. It is active when
// no other layer is, owns no state variable and has no activation rule.
const BaseLayer = "base"

// SimpleRemap is a global substitution: pressing From behaves as if To
// were pressed instead.
type SimpleRemap struct {
	From key.Key
	To   key.Combo
}

// Layer is a named, modal set of bindings.
type Layer struct {
	// Name identifies the layer and names its state variable.
	Name string

	// Keys is the activation combination. The first key is the trigger,
	// the rest must be held with it. Empty for an undeclared base layer.
	Keys key.Combo
}

// IsBase reports whether this is the reserved default layer.
func (l Layer) IsBase() bool {
	return l.Name == BaseLayer
}

// Trigger returns the key that activates the layer.
func (l Layer) Trigger() key.Key {
	return l.Keys.Trigger()
}

// Modifiers returns the keys that must be held with the trigger.
func (l Layer) Modifiers() []key.Key {
	return l.Keys.Modifiers()
}

// LayerAssignment binds a key within a layer to an action.
type LayerAssignment struct {
	// Layer is the layer that must be active.
	Layer Layer

	// Key is the key that performs the action.
	Key key.Key

	// Action is what the key does.
	Action Action

	// NextLayer names the layer to switch to once a Command or LayerRemap
	// has fired. Empty means stay in the current layer. Ignored for
	// LayerShift, which carries its own destination.
	NextLayer string

	// Description overrides the generated rule description when set.
	Description string
}

// HasNextLayer reports whether the assignment switches layers after firing.
func (a LayerAssignment) HasNextLayer() bool {
	return a.NextLayer != ""
}

// HasDescription reports whether the user supplied a description.
func (a LayerAssignment) HasDescription() bool {
	return a.Description != ""
}

// Configuration is the validated, read-only layer description.
type Configuration struct {
	SimpleRemaps []SimpleRemap
	Layers       []Layer
	Assignments  []LayerAssignment
}

// Layer returns the layer with the given name. The base layer is always
// found, whether or not it was declared.
func (c *Configuration) Layer(name string) (Layer, bool) {
	for _, l := range c.Layers {
		if l.Name == name {
			return l, true
		}
	}
	if name == BaseLayer {
		return Layer{Name: BaseLayer}, true
	}
	return Layer{}, false
}

// HasLayer reports whether name refers to a declared layer or to base.
func (c *Configuration) HasLayer(name string) bool {
	_, ok := c.Layer(name)
	return ok
}

// NonBaseLayers returns the layers that own a state variable, in
// declaration order.
func (c *Configuration) NonBaseLayers() []Layer {
	layers := make([]Layer, 0, len(c.Layers))
	for _, l := range c.Layers {
		if !l.IsBase() {
			layers = append(layers, l)
		}
	}
	return layers
}

// AssignmentsFor returns the assignments of one layer in order.
func (c *Configuration) AssignmentsFor(layer string) []LayerAssignment {
	var result []LayerAssignment
	for _, a := range c.Assignments {
		if a.Layer.Name == layer {
			result = append(result, a)
		}
	}
	return result
}
