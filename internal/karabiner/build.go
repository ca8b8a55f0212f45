package karabiner

// VariableIf returns a condition requiring name to equal value.
func VariableIf(name string, value int) Condition {
	return Condition{Type: ConditionVariableIf, Name: name, Value: value}
}

// SetVar returns an event writing value to the variable name.
func SetVar(name string, value int) ToEvent {
	return ToEvent{SetVariable: &SetVariable{Name: name, Value: value}}
}

// Shell returns an event running a shell command.
func Shell(command string) ToEvent {
	return ToEvent{ShellCommand: command}
}

// KeyPress returns an event pressing keyCode with modifiers held.
func KeyPress(keyCode string, modifiers ...string) ToEvent {
	ev := ToEvent{KeyCode: keyCode}
	if len(modifiers) > 0 {
		ev.Modifiers = append([]string(nil), modifiers...)
	}
	return ev
}

// From returns an input event for keyCode with mandatory modifiers.
func From(keyCode string, mandatory ...string) FromEvent {
	ev := FromEvent{KeyCode: keyCode}
	if len(mandatory) > 0 {
		ev.Modifiers = &FromModifiers{Mandatory: append([]string(nil), mandatory...)}
	}
	return ev
}

// NewRule returns an enabled rule with a single basic manipulator.
func NewRule(description string, m Manipulator) Rule {
	m.Type = ManipulatorBasic
	return Rule{
		Description:  description,
		Enabled:      true,
		Manipulators: []Manipulator{m},
	}
}

// OnInvoke returns a delayed action that runs events once invoked and
// does nothing when canceled.
func OnInvoke(events ...ToEvent) *DelayedAction {
	return &DelayedAction{
		ToIfInvoked:  append([]ToEvent{}, events...),
		ToIfCanceled: []ToEvent{},
	}
}
