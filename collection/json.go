package collection

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes s as a JSON array. Deferred and lazy sequences are
// realized.
func (s Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToList())
}

// UnmarshalJSON decodes a JSON array into an eager sequence.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = FromSlice(values)
	return nil
}

// MarshalJSON encodes s as a JSON array.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToList())
}

// UnmarshalJSON decodes a JSON array into a set, dropping duplicates.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = SetOf(values...)
	return nil
}

// entry is the JSON form of a map entry. Keys need not be strings, so maps are
// encoded as arrays of entries, keeping insertion order.
type entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON encodes m as a JSON array of {"key": …, "value": …} objects.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]entry[K, V], 0, m.Size())
	for p := range m.pairs.All() {
		entries = append(entries, entry[K, V]{Key: p.Left, Value: p.Right})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes a JSON array of entries. For duplicate keys the last
// entry wins.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries []entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	r := EmptyMap[K, V]()
	for _, e := range entries {
		r = r.Put(e.Key, e.Value)
	}
	*m = r
	return nil
}
