package install

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/Pascal736/karamapper/internal/karabiner"
)

// ErrInvalidTarget indicates the existing karabiner.json is not valid JSON
// or does not have the expected shape.
var ErrInvalidTarget = errors.New("target is not valid JSON")

var prettyOptions = &pretty.Options{
	Width:  80,
	Prefix: "",
	Indent: karabiner.Indent,
}

// Extend merges doc into the Karabiner configuration held in existing and
// returns the result.
//
// karamapper owns the profile carrying the generated profile's name: its
// complex modification rules are replaced by the generated ones, and the
// simple modifications of the device with equal identifiers are replaced
// by the generated ones. Rules compiled from an earlier version of the
// layer file therefore never linger. Every other profile, device and field
// is kept as is. A missing profile is appended. When the generated profile
// is selected, every other profile is deselected.
func Extend(existing []byte, doc *karabiner.Document) ([]byte, error) {
	if !gjson.ValidBytes(existing) {
		return nil, ErrInvalidTarget
	}
	out := existing

	var err error
	for _, profile := range doc.Profiles {
		out, err = extendProfile(out, profile)
		if err != nil {
			return nil, err
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

func extendProfile(data []byte, profile karabiner.Profile) ([]byte, error) {
	data, err := ensureArray(data, "profiles")
	if err != nil {
		return nil, err
	}

	profiles := gjson.GetBytes(data, "profiles").Array()
	idx := findProfile(profiles, profile.Name)

	if profile.Selected {
		for i := range profiles {
			if i == idx {
				continue
			}
			data, err = sjson.SetBytes(data, "profiles."+strconv.Itoa(i)+".selected", false)
			if err != nil {
				return nil, errors.Wrap(err, "deselecting profile")
			}
		}
	}

	if idx < 0 {
		raw, err := karabiner.MarshalProfile(profile)
		if err != nil {
			return nil, err
		}
		return setRaw(data, "profiles.-1", raw)
	}

	base := "profiles." + strconv.Itoa(idx)
	if profile.Selected {
		if data, err = setRaw(data, base+".selected", []byte("true")); err != nil {
			return nil, err
		}
	}

	rules, err := marshalRules(profile.ComplexModifications.Rules)
	if err != nil {
		return nil, err
	}
	if data, err = setRaw(data, base+".complex_modifications.rules", rules); err != nil {
		return nil, err
	}

	for _, device := range profile.Devices {
		data, err = mergeDevice(data, base+".devices", device)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// findProfile returns the index of the profile named name, or -1.
func findProfile(profiles []gjson.Result, name string) int {
	for i, p := range profiles {
		if p.Get("name").String() == name {
			return i
		}
	}
	return -1
}

func marshalRules(rules []karabiner.Rule) ([]byte, error) {
	items := make([][]byte, 0, len(rules))
	for _, r := range rules {
		raw, err := karabiner.MarshalRule(r)
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return rawArray(items), nil
}

// mergeDevice replaces the simple modifications of the device with equal
// identifiers, keeping its other fields, or appends the device.
func mergeDevice(data []byte, path string, device karabiner.Device) ([]byte, error) {
	data, err := ensureArray(data, path)
	if err != nil {
		return nil, err
	}

	for i, d := range gjson.GetBytes(data, path).Array() {
		if !sameIdentifiers(d.Get("identifiers"), device.Identifiers) {
			continue
		}
		mods, err := marshalSimpleModifications(device.SimpleModifications)
		if err != nil {
			return nil, err
		}
		return setRaw(data, path+"."+strconv.Itoa(i)+".simple_modifications", mods)
	}

	raw, err := karabiner.MarshalDevice(device)
	if err != nil {
		return nil, err
	}
	return setRaw(data, path+".-1", raw)
}

func marshalSimpleModifications(mods []karabiner.SimpleModification) ([]byte, error) {
	items := make([][]byte, 0, len(mods))
	for _, m := range mods {
		raw, err := karabiner.MarshalSimpleModification(m)
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return rawArray(items), nil
}

// rawArray joins encoded JSON values into an array.
func rawArray(items [][]byte) []byte {
	out := append([]byte("["), bytes.Join(items, []byte(","))...)
	return append(out, ']')
}

// sameIdentifiers compares identifiers, treating absent fields as zero.
func sameIdentifiers(existing gjson.Result, ids karabiner.DeviceIdentifiers) bool {
	return existing.Get("is_keyboard").Bool() == ids.IsKeyboard &&
		existing.Get("product_id").Int() == int64(ids.ProductID) &&
		existing.Get("vendor_id").Int() == int64(ids.VendorID)
}

// ensureArray makes sure path holds an array, creating an empty one when
// the value is absent.
func ensureArray(data []byte, path string) ([]byte, error) {
	res := gjson.GetBytes(data, path)
	if res.IsArray() {
		return data, nil
	}
	if res.Exists() {
		return nil, errors.Wrapf(ErrInvalidTarget, "%s is %s, want array", path, res.Type)
	}
	return setRaw(data, path, []byte("[]"))
}

func setRaw(data []byte, path string, raw []byte) ([]byte, error) {
	out, err := sjson.SetRawBytes(data, path, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "updating %s", path)
	}
	return out, nil
}
