package filtered

import "encoding/json"

// JSON support treats unmarshaling as a write path: the decoded raw value is
// routed through the active filter exactly like Set, so a wrapper populated
// from untrusted JSON still upholds its invariant. Marshaling emits the bare
// value, making wrapped fields indistinguishable from plain ones on the wire.
//
// Unmarshal requires an already-constructed wrapper; decoding into one with
// no filter fails with ErrNilFilter.

// MarshalJSON implements json.Marshaler.
func (b *Box[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

// UnmarshalJSON implements json.Unmarshaler. A decode error leaves the
// stored value unchanged.
func (b *Box[T]) UnmarshalJSON(data []byte) error {
	if b.filter == nil {
		return ErrNilFilter
	}

	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.value = b.filter(raw)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler. A decode error leaves the
// stored value unchanged.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if v.filter == nil {
		return ErrNilFilter
	}

	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.value = v.filter(raw)
	return nil
}
