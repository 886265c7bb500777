package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is one setting value: a scalar or a short ordered sequence of
// scalars. Values are opaque to the engine; they are copied and overridden,
// never interpreted. Scalars are stored as a single-element sequence.
type Value []string

// UnmarshalJSON accepts strings, numbers, booleans, null, and flat arrays of
// those, normalizing everything to a string sequence.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = nil
	case []any:
		out := make(Value, 0, len(x))
		for _, item := range x {
			s, err := scalarString(item)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		*v = out
	default:
		s, err := scalarString(x)
		if err != nil {
			return err
		}
		*v = Value{s}
	}
	return nil
}

func scalarString(x any) (string, error) {
	switch s := x.(type) {
	case string:
		return s, nil
	case float64:
		// Trim the float formatting for integral values.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s)), nil
		}
		return fmt.Sprintf("%g", s), nil
	case bool:
		if s {
			return "1", nil
		}
		return "0", nil
	default:
		return "", fmt.Errorf("unsupported value element %T", x)
	}
}

// String renders the value for display: single elements bare, sequences
// joined with ", ".
func (v Value) String() string {
	if len(v) == 1 {
		return v[0]
	}
	return strings.Join(v, ", ")
}

// Equal reports exact element-wise equality. No coercion across types: both
// sides compare as the normalized strings they were loaded with.
func (v Value) Equal(other Value) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the value carries no visible content.
func (v Value) IsEmpty() bool {
	for _, s := range v {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
