package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// Parse decodes a JSON object or array into an Array, keeping object keys in
// document order. Nested objects and arrays become nested *Array values,
// integral numbers become int, other numbers float64, null becomes nil.
//
// Object keys are normalised, so {"1": "a"} is keyed by the int 1. A repeated
// key keeps its first position and its last value.
//
// Returns [ErrInvalidJSON] for malformed input, a top-level scalar or
// anything but whitespace after the top-level value.
func Parse(data []byte) (*Array, error) {
	value, typ, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if end < 0 || end > len(data) || len(bytes.TrimSpace(data[end:])) != 0 {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrInvalidJSON)
	}
	if typ != jsonparser.Object && typ != jsonparser.Array {
		return nil, fmt.Errorf("%w: top-level %v, want object or array", ErrInvalidJSON, typ)
	}
	v, err := decode(value, typ)
	if err != nil {
		if !errors.Is(err, ErrInvalidJSON) {
			err = fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil, err
	}
	return v.(*Array), nil
}

func decode(value []byte, typ jsonparser.ValueType) (any, error) {
	switch typ {
	case jsonparser.Object:
		out := New()
		err := jsonparser.ObjectEach(value, func(key, raw []byte, t jsonparser.ValueType, _ int) error {
			v, err := decode(raw, t)
			if err != nil {
				return err
			}
			return out.Set(string(key), v)
		})
		return out, err
	case jsonparser.Array:
		out := New()
		var decodeErr error
		_, err := jsonparser.ArrayEach(value, func(raw []byte, t jsonparser.ValueType, _ int, err error) {
			if decodeErr != nil {
				return
			}
			if err != nil {
				decodeErr = err
				return
			}
			v, err := decode(raw, t)
			if err != nil {
				decodeErr = err
				return
			}
			out.Append(v)
		})
		if err == nil {
			err = decodeErr
		}
		return out, err
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		if n, err := jsonparser.ParseInt(value); err == nil {
			return int(n), nil
		}
		return jsonparser.ParseFloat(value)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unexpected value %q", ErrInvalidJSON, value)
}

// MarshalJSON implements [json.Marshaler]. A list (keys 0 … n-1 in order)
// encodes as a JSON array; anything else as an object in insertion order.
func (a *Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	if a.IsList() {
		return json.Marshal(a.Values())
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON implements [json.Unmarshaler] using [Parse].
func (a *Array) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler from gopkg.in/yaml.v3, with the same
// list/mapping split as [Array.MarshalJSON].
func (a *Array) MarshalYAML() (any, error) {
	if a.IsList() {
		return a.Values(), nil
	}
	return a.m.MarshalYAML()
}
