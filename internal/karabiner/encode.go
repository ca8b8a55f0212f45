package karabiner

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Indent is the indentation Karabiner-Elements itself writes.
const Indent = "    "

// Marshal returns the indented JSON form of the document, ending in a
// newline. Output is byte-identical for equal documents.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the indented JSON form of the document to w.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encoding karabiner document")
	}
	return nil
}

// MarshalProfile returns the compact JSON form of a single profile.
func MarshalProfile(p Profile) ([]byte, error) {
	return marshalCompact(p)
}

// MarshalRule returns the compact JSON form of a single rule.
func MarshalRule(r Rule) ([]byte, error) {
	return marshalCompact(r)
}

// MarshalDevice returns the compact JSON form of a single device.
func MarshalDevice(d Device) ([]byte, error) {
	return marshalCompact(d)
}

// MarshalSimpleModification returns the compact JSON form of a simple
// modification.
func MarshalSimpleModification(m SimpleModification) ([]byte, error) {
	return marshalCompact(m)
}

func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encoding karabiner fragment")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
