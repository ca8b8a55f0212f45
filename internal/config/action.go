package config

import (
	"github.com/Pascal736/karamapper/internal/key"
)

// ActionKind identifies the variant of an Action.
type ActionKind uint8

const (
	// ActionCommand runs a shell command.
	ActionCommand ActionKind = iota
	// ActionRemap emits a substitute key combination.
	ActionRemap
	// ActionShift switches the active layer.
	ActionShift
)

// String returns the descriptor field name for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionCommand:
		return "command"
	case ActionRemap:
		return "remap"
	case ActionShift:
		return "move_layer"
	default:
		return "unknown"
	}
}

// Action is what a layer assignment does. It is implemented only by
// Command, LayerRemap and LayerShift.
type Action interface {
	Kind() ActionKind
	isAction()
}

// Command runs an external shell command.
type Command struct {
	Shell string
}

// Kind implements Action.
func (Command) Kind() ActionKind { return ActionCommand }
func (Command) isAction()        {}

// LayerRemap emits a substitute key combination.
type LayerRemap struct {
	To key.Combo
}

// Kind implements Action.
func (LayerRemap) Kind() ActionKind { return ActionRemap }
func (LayerRemap) isAction()        {}

// LayerShift immediately switches to another layer.
type LayerShift struct {
	Target string
}

// Kind implements Action.
func (LayerShift) Kind() ActionKind { return ActionShift }
func (LayerShift) isAction()        {}
