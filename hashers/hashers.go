// Package hashers resolves the bundled merkle.Hasher implementations by name.
package hashers

import (
	"errors"
	"fmt"
	"slices"

	merkle "github.com/estensen/sortedmerkle"
	"github.com/estensen/sortedmerkle/hashers/blake2b"
	"github.com/estensen/sortedmerkle/hashers/blake3"
	"github.com/estensen/sortedmerkle/hashers/keccak"
	"github.com/estensen/sortedmerkle/hashers/sha2"
)

const (
	Keccak256  = "keccak256"
	SHA256     = "sha256"
	Blake2b256 = "blake2b256"
	Blake3     = "blake3"

	Default = Keccak256
)

var ErrUnknownHasher = errors.New("unknown hasher")

var registry = map[string]merkle.Hasher{
	Keccak256:  keccak.Hasher{},
	SHA256:     sha2.Hasher{},
	Blake2b256: blake2b.Hasher{},
	Blake3:     blake3.Hasher{},
}

// Lookup returns the hasher registered under name.
// An empty name selects Default.
func Lookup(name string) (merkle.Hasher, error) {
	if name == "" {
		name = Default
	}
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHasher, name, Names())
	}
	return h, nil
}

// Names returns the registered hasher names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
