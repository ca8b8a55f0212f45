package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Pascal736/karamapper/internal/key"
)

// Top-level sections with a fixed meaning.
const (
	SectionSimpleRemaps = "simple_remaps"
	SectionLayers       = "layers"
)

// Fields of an action descriptor table.
const (
	FieldCommand     = "command"
	FieldRemap       = "remap"
	FieldMoveLayer   = "move_layer"
	FieldNextLayer   = "next_layer"
	FieldDescription = "description"
)

var actionFields = []string{FieldCommand, FieldRemap, FieldMoveLayer}

// FromTree builds a Configuration from a decoded TOML document.
//
// Tables are visited in sorted key order, which makes the resulting
// configuration, and everything compiled from it, deterministic.
func FromTree(tree map[string]any) (*Configuration, error) {
	remapsTable, err := requireTable(tree, SectionSimpleRemaps)
	if err != nil {
		return nil, err
	}
	layersTable, err := requireTable(tree, SectionLayers)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{}

	if cfg.SimpleRemaps, err = buildSimpleRemaps(remapsTable); err != nil {
		return nil, err
	}
	if cfg.Layers, err = buildLayers(layersTable); err != nil {
		return nil, err
	}
	if cfg.Assignments, err = buildAssignments(tree, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// requireTable returns a mandatory top-level table.
func requireTable(tree map[string]any, name string) (map[string]any, error) {
	value, ok := tree[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrMissingSection, "[%s]", name),
			"add an empty [%s] table if there is nothing to declare", name,
		)
	}
	table, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidValue, "[%s] must be a table, got %s", name, typeName(value))
	}
	return table, nil
}

func buildSimpleRemaps(table map[string]any) ([]SimpleRemap, error) {
	remaps := make([]SimpleRemap, 0, len(table))
	for _, from := range sortedKeys(table) {
		fromKey, err := key.Parse(from)
		if err != nil {
			return nil, errors.Wrapf(err, "[%s] %s", SectionSimpleRemaps, from)
		}
		to, err := comboValue(table[from])
		if err != nil {
			return nil, errors.Wrapf(err, "[%s] %s", SectionSimpleRemaps, from)
		}
		remaps = append(remaps, SimpleRemap{From: fromKey, To: to})
	}
	return remaps, nil
}

func buildLayers(table map[string]any) ([]Layer, error) {
	layers := make([]Layer, 0, len(table))
	for _, name := range sortedKeys(table) {
		if strings.TrimSpace(name) == "" {
			return nil, errors.Wrapf(ErrInvalidValue, "[%s] layer name is empty", SectionLayers)
		}
		spec, ok := table[name].(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidValue, "[%s] %s: expected a key combination string, got %s",
				SectionLayers, name, typeName(table[name]))
		}
		keys, err := key.ParseCombo(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "[%s] %s", SectionLayers, name)
		}
		layers = append(layers, Layer{Name: name, Keys: keys})
	}
	return layers, nil
}

func buildAssignments(tree map[string]any, cfg *Configuration) ([]LayerAssignment, error) {
	var assignments []LayerAssignment

	// bound records the section that first bound each key, per layer.
	bound := make(map[string]map[key.Key]string)

	for _, section := range sortedKeys(tree) {
		if section == SectionSimpleRemaps || section == SectionLayers {
			continue
		}

		layer, err := resolveSection(section, cfg)
		if err != nil {
			return nil, err
		}
		table, ok := tree[section].(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidValue, "[%s] must be a table of key bindings, got %s",
				section, typeName(tree[section]))
		}

		if bound[layer.Name] == nil {
			bound[layer.Name] = make(map[key.Key]string)
		}

		for _, trigger := range sortedKeys(table) {
			k, err := key.Parse(trigger)
			if err != nil {
				return nil, errors.Wrapf(err, "[%s] %s", section, trigger)
			}
			if first, dup := bound[layer.Name][k]; dup {
				return nil, errors.WithHintf(
					errors.Wrapf(ErrDuplicateAssignment, "[%s] %s: key already bound in layer %q by [%s]",
						section, trigger, layer.Name, first),
					"each key may be bound once per layer",
				)
			}

			assignment, err := buildAssignment(layer, k, table[trigger], cfg)
			if err != nil {
				return nil, errors.Wrapf(err, "[%s] %s", section, trigger)
			}
			bound[layer.Name][k] = section
			assignments = append(assignments, assignment)
		}
	}

	return assignments, nil
}

// resolveSection finds the layer an assignment section belongs to: the
// layer with the same name, otherwise the one whose name is the longest
// prefix of the section name.
func resolveSection(section string, cfg *Configuration) (Layer, error) {
	if layer, ok := cfg.Layer(section); ok {
		return layer, nil
	}

	var (
		best  Layer
		found bool
	)
	candidates := append(slices.Clone(cfg.Layers), Layer{Name: BaseLayer})
	for _, l := range candidates {
		if strings.HasPrefix(section, l.Name) && len(l.Name) > len(best.Name) {
			best, found = l, true
		}
	}
	if found {
		return best, nil
	}

	return Layer{}, errors.WithHintf(
		errors.Wrapf(ErrUnknownLayer, "[%s] does not start with a declared layer name", section),
		"declared layers: %s", strings.Join(layerNames(cfg), ", "),
	)
}

func buildAssignment(layer Layer, k key.Key, value any, cfg *Configuration) (LayerAssignment, error) {
	assignment := LayerAssignment{Layer: layer, Key: k}

	switch v := value.(type) {
	case string:
		// A bare string is shorthand for { command = "..." }.
		if strings.TrimSpace(v) == "" {
			return assignment, errors.Wrap(ErrInvalidValue, "command is empty")
		}
		assignment.Action = Command{Shell: v}
		return assignment, nil

	case map[string]any:
		action, err := parseAction(v, cfg)
		if err != nil {
			return assignment, err
		}
		assignment.Action = action

		if next, ok, err := optionalString(v, FieldNextLayer); err != nil {
			return assignment, err
		} else if ok {
			if !cfg.HasLayer(next) {
				return assignment, unknownLayer(FieldNextLayer, next, cfg)
			}
			assignment.NextLayer = next
		}

		if desc, ok, err := optionalString(v, FieldDescription); err != nil {
			return assignment, err
		} else if ok {
			assignment.Description = desc
		}
		return assignment, nil

	default:
		return assignment, errors.Wrapf(ErrInvalidValue, "expected an action table or command string, got %s", typeName(value))
	}
}

// parseAction reads the single action field of a descriptor table.
func parseAction(table map[string]any, cfg *Configuration) (Action, error) {
	for _, field := range sortedKeys(table) {
		switch field {
		case FieldCommand, FieldRemap, FieldMoveLayer, FieldNextLayer, FieldDescription:
		default:
			return nil, errors.WithHintf(
				errors.Wrapf(ErrInvalidValue, "unknown field %q", field),
				"allowed fields: %s, %s, %s, %s, %s",
				FieldCommand, FieldRemap, FieldMoveLayer, FieldNextLayer, FieldDescription,
			)
		}
	}

	var present []string
	for _, field := range actionFields {
		if _, ok := table[field]; ok {
			present = append(present, field)
		}
	}
	switch len(present) {
	case 0:
		return nil, errors.WithHint(
			errors.Wrap(ErrInvalidAction, "no action"),
			"set exactly one of command, remap or move_layer",
		)
	case 1:
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidAction, "conflicting fields %s", strings.Join(present, ", ")),
			"set exactly one of command, remap or move_layer",
		)
	}

	switch present[0] {
	case FieldCommand:
		shell, _, err := optionalString(table, FieldCommand)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(shell) == "" {
			return nil, errors.Wrap(ErrInvalidValue, "command is empty")
		}
		return Command{Shell: shell}, nil

	case FieldRemap:
		to, err := comboValue(table[FieldRemap])
		if err != nil {
			return nil, errors.Wrap(err, FieldRemap)
		}
		return LayerRemap{To: to}, nil

	default:
		target, _, err := optionalString(table, FieldMoveLayer)
		if err != nil {
			return nil, err
		}
		if !cfg.HasLayer(target) {
			return nil, unknownLayer(FieldMoveLayer, target, cfg)
		}
		return LayerShift{Target: target}, nil
	}
}

// comboValue accepts either a "+"-joined string or an array of key tokens.
func comboValue(value any) (key.Combo, error) {
	switch v := value.(type) {
	case string:
		return key.ParseCombo(v)
	case []any:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidValue, "key list entries must be strings, got %s", typeName(item))
			}
			tokens = append(tokens, s)
		}
		return key.ParseTokens(tokens)
	default:
		return nil, errors.Wrapf(ErrInvalidValue, "expected a key or key list, got %s", typeName(value))
	}
}

// optionalString returns a string field. ok is false when the field is absent.
func optionalString(table map[string]any, field string) (value string, ok bool, err error) {
	raw, present := table[field]
	if !present {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, errors.Wrapf(ErrInvalidValue, "%s must be a string, got %s", field, typeName(raw))
	}
	return s, true, nil
}

func unknownLayer(field, name string, cfg *Configuration) error {
	return errors.WithHintf(
		errors.Wrapf(ErrUnknownLayer, "%s %q", field, name),
		"declared layers: %s", strings.Join(layerNames(cfg), ", "),
	)
}

func layerNames(cfg *Configuration) []string {
	names := []string{BaseLayer}
	for _, l := range cfg.Layers {
		if !l.IsBase() {
			names = append(names, l.Name)
		}
	}
	return names
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
