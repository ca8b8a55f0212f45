package install

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Pascal736/karamapper/internal/karabiner"
)

func sampleDocument(name string) *karabiner.Document {
	return &karabiner.Document{
		Profiles: []karabiner.Profile{{
			Name:     name,
			Selected: true,
			ComplexModifications: karabiner.ComplexModifications{
				Rules: []karabiner.Rule{
					karabiner.NewRule("Change to apps", karabiner.Manipulator{
						From: karabiner.From("a", "right_command"),
						To:   []karabiner.ToEvent{karabiner.SetVar("apps", 1)},
					}),
					karabiner.NewRule("Run command open -a Slack", karabiner.Manipulator{
						Conditions: []karabiner.Condition{karabiner.VariableIf("apps", 1)},
						From:       karabiner.From("s"),
						To:         []karabiner.ToEvent{karabiner.Shell("open -a Slack")},
					}),
				},
			},
			Devices: []karabiner.Device{{
				Identifiers: karabiner.DeviceIdentifiers{IsKeyboard: true},
				SimpleModifications: []karabiner.SimpleModification{{
					From: karabiner.SimpleKey{KeyCode: "caps_lock"},
					To:   []karabiner.SimpleKey{{KeyCode: "escape"}},
				}},
			}},
		}},
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMethod(" Extend ")
	require.NoError(t, err)
	assert.Equal(t, MethodExtend, got)

	_, err = ParseMethod("append")
	require.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "append")
}

func TestMethodWritesFile(t *testing.T) {
	assert.False(t, MethodStdout.WritesFile())
	assert.True(t, MethodReplace.WritesFile())
	assert.True(t, MethodExtend.WritesFile())
}

func TestInstallStdout(t *testing.T) {
	var buf bytes.Buffer
	inst := &Installer{Method: MethodStdout, Stdout: &buf}

	doc := sampleDocument("karamapper")
	require.NoError(t, inst.Install(doc))

	want, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestInstallUnknownMethod(t *testing.T) {
	inst := &Installer{Method: Method("fax")}
	require.ErrorIs(t, inst.Install(sampleDocument("x")), ErrUnknownMethod)
}

func TestInstallReplace(t *testing.T) {
	target := filepath.Join(t.TempDir(), "karabiner", "karabiner.json")
	require.NoError(t, New(MethodReplace, target).Install(sampleDocument("karamapper")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "karamapper", gjson.GetBytes(data, "profiles.0.name").String())
	assert.Equal(t, int64(2), gjson.GetBytes(data, "profiles.0.complex_modifications.rules.#").Int())

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be gone")
}

func TestInstallRequiresTarget(t *testing.T) {
	for _, m := range []Method{MethodReplace, MethodExtend} {
		err := (&Installer{Method: m}).Install(sampleDocument("x"))
		assert.ErrorIs(t, err, ErrNoTarget, m)
	}
}

func TestInstallExtendMissingTargetReplaces(t *testing.T) {
	target := filepath.Join(t.TempDir(), "karabiner.json")
	require.NoError(t, New(MethodExtend, target).Install(sampleDocument("karamapper")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "karamapper", gjson.GetBytes(data, "profiles.0.name").String())
}

func TestInstallExtendInvalidTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "karabiner.json")
	require.NoError(t, os.WriteFile(target, []byte("{not json"), 0o644))

	err := New(MethodExtend, target).Install(sampleDocument("karamapper"))
	require.ErrorIs(t, err, ErrInvalidTarget)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "target must be untouched on failure")
}

func commandDocument(name, shell string) *karabiner.Document {
	doc := sampleDocument(name)
	doc.Profiles[0].ComplexModifications.Rules = []karabiner.Rule{
		karabiner.NewRule("Run command "+shell, karabiner.Manipulator{
			Conditions: []karabiner.Condition{karabiner.VariableIf("l1", 1)},
			From:       karabiner.From("h"),
			To:         []karabiner.ToEvent{karabiner.Shell(shell)},
		}),
	}
	return doc
}

func ruleDescriptions(profile gjson.Result) []string {
	descs := []string{}
	for _, r := range profile.Get("complex_modifications.rules").Array() {
		descs = append(descs, r.Get("description").String())
	}
	return descs
}

func TestExtendReplacesRulesOfNamedProfile(t *testing.T) {
	existing := `{
    "global": {"show_in_menu_bar": false},
    "profiles": [
        {"name": "Default", "selected": true, "complex_modifications": {"rules": [{"description": "Mine", "manipulators": []}]}},
        {
            "name": "karamapper",
            "selected": false,
            "virtual_hid_keyboard": {"keyboard_type_v2": "ansi"},
            "complex_modifications": {
                "parameters": {"basic.to_delayed_action_delay_milliseconds": 500},
                "rules": [
                    {"description": "Run command open -a Slack", "manipulators": []},
                    {"description": "Stale", "manipulators": []}
                ]
            }
        }
    ]
}`

	out, err := Extend([]byte(existing), sampleDocument("karamapper"))
	require.NoError(t, err)
	require.True(t, json.Valid(out))

	assert.False(t, gjson.GetBytes(out, "global.show_in_menu_bar").Bool())

	other := gjson.GetBytes(out, "profiles.0")
	assert.Equal(t, []string{"Mine"}, ruleDescriptions(other), "other profiles keep their rules")
	assert.False(t, other.Get("selected").Bool(), "generated profile takes over selection")

	p := gjson.GetBytes(out, "profiles.1")
	assert.True(t, p.Get("selected").Bool())
	assert.Equal(t, "ansi", p.Get("virtual_hid_keyboard.keyboard_type_v2").String())
	assert.Equal(t, int64(500), p.Get("complex_modifications.parameters.basic\\.to_delayed_action_delay_milliseconds").Int())
	assert.Equal(t, []string{"Change to apps", "Run command open -a Slack"}, ruleDescriptions(p))
	assert.Equal(t, "open -a Slack", p.Get("complex_modifications.rules.1.manipulators.0.to.0.shell_command").String())
	assert.Equal(t, "caps_lock", p.Get("devices.0.simple_modifications.0.from.key_code").String())
}

func TestExtendAfterCommandChange(t *testing.T) {
	first, err := Extend([]byte(`{"profiles": []}`), commandDocument("karamapper", "echo old"))
	require.NoError(t, err)

	second, err := Extend(first, commandDocument("karamapper", "echo new"))
	require.NoError(t, err)

	p := gjson.GetBytes(second, "profiles.0")
	assert.Equal(t, []string{"Run command echo new"}, ruleDescriptions(p))
	assert.Equal(t, "echo new", p.Get("complex_modifications.rules.0.manipulators.0.to.0.shell_command").String())
}

func TestExtendAppendsProfileWhenNameMissing(t *testing.T) {
	existing := `{"profiles": [
        {"name": "a", "complex_modifications": {"rules": [{"description": "Mine"}]}},
        {"name": "b", "selected": true}
    ]}`

	out, err := Extend([]byte(existing), sampleDocument("karamapper"))
	require.NoError(t, err)

	profiles := gjson.GetBytes(out, "profiles").Array()
	require.Len(t, profiles, 3)
	assert.Equal(t, []string{"Mine"}, ruleDescriptions(profiles[0]))
	assert.False(t, profiles[1].Get("selected").Bool())
	assert.Equal(t, "karamapper", profiles[2].Get("name").String())
	assert.True(t, profiles[2].Get("selected").Bool())
	assert.Len(t, ruleDescriptions(profiles[2]), 2)
}

func TestExtendUnselectedKeepsSelection(t *testing.T) {
	doc := sampleDocument("karamapper")
	doc.Profiles[0].Selected = false

	out, err := Extend([]byte(`{"profiles": [{"name": "b", "selected": true}]}`), doc)
	require.NoError(t, err)

	assert.True(t, gjson.GetBytes(out, "profiles.0.selected").Bool())
	assert.False(t, gjson.GetBytes(out, "profiles.1.selected").Bool())
}

func TestExtendAppendsProfileWhenNoneExist(t *testing.T) {
	out, err := Extend([]byte(`{"global": {}}`), sampleDocument("karamapper"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), gjson.GetBytes(out, "profiles.#").Int())
	assert.Equal(t, "karamapper", gjson.GetBytes(out, "profiles.0.name").String())
	assert.Equal(t, int64(2), gjson.GetBytes(out, "profiles.0.complex_modifications.rules.#").Int())
}

func TestExtendReplacesDeviceModifications(t *testing.T) {
	existing := `{"profiles": [{"name": "karamapper", "devices": [
        {"identifiers": {"is_keyboard": true, "vendor_id": 1452, "product_id": 834},
         "simple_modifications": [{"from": {"key_code": "caps_lock"}, "to": [{"key_code": "f18"}]}]},
        {"identifiers": {"is_keyboard": true},
         "fn_function_keys": [{"from": {"key_code": "f1"}, "to": [{"consumer_key_code": "display_brightness_decrement"}]}],
         "simple_modifications": [
            {"from": {"key_code": "caps_lock"}, "to": [{"key_code": "f19"}]},
            {"from": {"key_code": "fn"}, "to": [{"key_code": "left_control"}]}
         ]}
    ]}]}`

	out, err := Extend([]byte(existing), sampleDocument("karamapper"))
	require.NoError(t, err)

	devices := gjson.GetBytes(out, "profiles.0.devices")
	require.Equal(t, int64(2), devices.Get("#").Int())

	assert.Equal(t, "f18", devices.Get("0.simple_modifications.0.to.0.key_code").String())

	mods := devices.Get("1.simple_modifications").Array()
	require.Len(t, mods, 1)
	assert.Equal(t, "caps_lock", mods[0].Get("from.key_code").String())
	assert.Equal(t, "escape", mods[0].Get("to.0.key_code").String())
	assert.Equal(t, int64(1), devices.Get("1.fn_function_keys.#").Int())
}

func TestExtendAppendsUnknownDevice(t *testing.T) {
	existing := `{"profiles": [{"name": "karamapper", "devices": [
        {"identifiers": {"is_keyboard": false, "vendor_id": 1}, "simple_modifications": []}
    ]}]}`

	out, err := Extend([]byte(existing), sampleDocument("karamapper"))
	require.NoError(t, err)

	devices := gjson.GetBytes(out, "profiles.0.devices").Array()
	require.Len(t, devices, 2)
	assert.True(t, devices[1].Get("identifiers.is_keyboard").Bool())
}

func TestExtendRejectsWrongShape(t *testing.T) {
	_, err := Extend([]byte(`{"profiles": {"name": "x"}}`), sampleDocument("karamapper"))
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = Extend([]byte(`nope`), sampleDocument("karamapper"))
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestExtendIsIdempotent(t *testing.T) {
	doc := sampleDocument("karamapper")
	first, err := Extend([]byte(`{"profiles": []}`), doc)
	require.NoError(t, err)

	second, err := Extend(first, doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}
