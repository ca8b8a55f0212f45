package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pascal736/karamapper/internal/key"
)

func TestConfigurationLayerLookup(t *testing.T) {
	cfg := &Configuration{
		Layers: []Layer{
			{Name: "apps", Keys: key.Of(key.KeyHyper)},
			{Name: "nav", Keys: key.Of(key.KeyHyper, key.KeyN)},
		},
	}

	l, ok := cfg.Layer("nav")
	assert.True(t, ok)
	assert.Equal(t, key.KeyN, l.Modifiers()[0])

	base, ok := cfg.Layer(BaseLayer)
	assert.True(t, ok, "base is always available")
	assert.True(t, base.IsBase())
	assert.Empty(t, base.Keys)

	_, ok = cfg.Layer("missing")
	assert.False(t, ok)
	assert.False(t, cfg.HasLayer("missing"))
	assert.True(t, cfg.HasLayer("apps"))
}

func TestActionKinds(t *testing.T) {
	tests := []struct {
		action Action
		kind   ActionKind
		name   string
	}{
		{Command{Shell: "ls"}, ActionCommand, "command"},
		{LayerRemap{To: key.Of(key.KeyEscape)}, ActionRemap, "remap"},
		{LayerShift{Target: "nav"}, ActionShift, "move_layer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.action.Kind())
			assert.Equal(t, tt.name, tt.action.Kind().String())
		})
	}
	assert.Equal(t, "unknown", ActionKind(99).String())
}

func TestAssignmentFlags(t *testing.T) {
	a := LayerAssignment{Action: Command{Shell: "x"}}
	assert.False(t, a.HasNextLayer())
	assert.False(t, a.HasDescription())

	a.NextLayer = BaseLayer
	a.Description = "go home"
	assert.True(t, a.HasNextLayer())
	assert.True(t, a.HasDescription())
}
