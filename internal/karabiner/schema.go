package karabiner

// State variable values. Layer variables only ever hold one of these.
const (
	VariableInactive = 0
	VariableActive   = 1
)

const (
	// ManipulatorBasic is the only manipulator type karamapper emits.
	ManipulatorBasic = "basic"

	// ConditionVariableIf matches when a variable equals a value.
	ConditionVariableIf = "variable_if"
)

// Document is the root of karabiner.json.
type Document struct {
	Profiles []Profile `json:"profiles"`
}

// Profile is a selectable set of modifications.
type Profile struct {
	Name                 string               `json:"name"`
	Selected             bool                 `json:"selected"`
	ComplexModifications ComplexModifications `json:"complex_modifications"`
	Devices              []Device             `json:"devices"`
}

// ComplexModifications holds the conditional rules of a profile.
type ComplexModifications struct {
	Rules []Rule `json:"rules"`
}

// Rule groups manipulators under a description.
type Rule struct {
	Description  string        `json:"description"`
	Enabled      bool          `json:"enabled"`
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator maps one input event to output events.
type Manipulator struct {
	Type            string         `json:"type"`
	Conditions      []Condition    `json:"conditions,omitempty"`
	From            FromEvent      `json:"from"`
	To              []ToEvent      `json:"to,omitempty"`
	ToDelayedAction *DelayedAction `json:"to_delayed_action,omitempty"`
}

// Condition restricts when a manipulator applies.
type Condition struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FromEvent is the input side of a manipulator.
type FromEvent struct {
	KeyCode   string         `json:"key_code"`
	Modifiers *FromModifiers `json:"modifiers,omitempty"`
}

// FromModifiers lists the modifiers of an input event.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// ToEvent is a single output event. Exactly one of KeyCode, ShellCommand
// and SetVariable is set.
type ToEvent struct {
	KeyCode      string       `json:"key_code,omitempty"`
	Modifiers    []string     `json:"modifiers,omitempty"`
	ShellCommand string       `json:"shell_command,omitempty"`
	SetVariable  *SetVariable `json:"set_variable,omitempty"`
}

// SetVariable writes a state variable.
type SetVariable struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DelayedAction fires after a manipulator's output, unless another key
// is pressed first (canceled).
type DelayedAction struct {
	ToIfInvoked  []ToEvent `json:"to_if_invoked"`
	ToIfCanceled []ToEvent `json:"to_if_canceled"`
}

// Device holds modifications bound to one device.
type Device struct {
	Identifiers         DeviceIdentifiers    `json:"identifiers"`
	SimpleModifications []SimpleModification `json:"simple_modifications"`
}

// DeviceIdentifiers selects a device.
type DeviceIdentifiers struct {
	IsKeyboard bool `json:"is_keyboard"`
	ProductID  int  `json:"product_id"`
	VendorID   int  `json:"vendor_id"`
}

// SimpleModification is an unconditional key substitution.
type SimpleModification struct {
	From SimpleKey   `json:"from"`
	To   []SimpleKey `json:"to"`
}

// SimpleKey names a key in a simple modification.
type SimpleKey struct {
	KeyCode string `json:"key_code"`
}
