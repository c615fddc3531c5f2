package domain

import (
	"bytes"
	"encoding/json"
)

// OptionalID is a nullable id in a partial update. Set is true when the key
// was present in the payload, even if its value was null.
type OptionalID struct {
	Set   bool
	Value *int64
}

// SomeID returns an OptionalID carrying id.
func SomeID(id int64) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

// NullID returns an OptionalID that clears the value.
func NullID() OptionalID {
	return OptionalID{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
