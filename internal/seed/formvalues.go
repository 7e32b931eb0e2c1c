package seed

import "iter"

// FormValues is an ordered mapping from form field names to values.
//
// Keys are unique. Setting an existing key replaces its value but keeps the
// key at the position where it was first set, so output order follows first
// insertion.
//
// The zero value is an empty mapping ready to use.
type FormValues struct {
	keys   []string
	values map[string]string
}

// NewFormValues returns an empty FormValues.
func NewFormValues() *FormValues {
	return &FormValues{}
}

// Set stores value under key.
func (f *FormValues) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key and whether it is set.
func (f *FormValues) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of keys.
func (f *FormValues) Len() int {
	return len(f.keys)
}

// Keys returns the keys in order.
func (f *FormValues) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// All iterates over key/value pairs in order.
func (f *FormValues) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range f.keys {
			if !yield(k, f.values[k]) {
				return
			}
		}
	}
}

// Clear removes all keys.
func (f *FormValues) Clear() {
	f.keys = nil
	f.values = nil
}
