// Package domain contains the manifest model and the import resolution rules.
package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Manifest keys and asset paths repeat heavily across chunks, so they are interned.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// It uses the unique package to intern the string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// MarshalText implements encoding.TextMarshaler. The zero value marshals as "".
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// NewInternedStrings interns every element of strs, preserving order.
func NewInternedStrings(strs []string) []InternedString {
	res := make([]InternedString, len(strs))
	for i, s := range strs {
		res[i] = NewInternedString(s)
	}
	return res
}
