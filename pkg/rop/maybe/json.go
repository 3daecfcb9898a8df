package maybe

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes None as null and a Value as its payload.
func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if m.kind != kindValue {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON decodes null as None and anything else as a Value.
func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = WithValue(v)
	return nil
}
