// Package codecs aggregates serialization codecs. It demonstrates
// interface-valued registration: the registry's value type is an interface,
// and each submission is a concrete implementation.
package codecs

import "github.com/vk/stockpile"

// Codec encodes and decodes values in one wire format.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// Registry aggregates every Codec linked into the binary.
var Registry = stockpile.Collect[Codec]()

// Lookup returns the registered codec with the given name.
func Lookup(name string) (Codec, bool) {
	for c := range Registry.All() {
		if (*c).Name() == name {
			return *c, true
		}
	}
	return nil, false
}
