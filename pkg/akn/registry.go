package akn

import (
	"strings"
	"sync"
)

// typeRegistry holds the known document types keyed by lowercased document
// type name.
type typeRegistry struct {
	mu    sync.RWMutex
	types map[string]Type
	order []string
}

var registry = &typeRegistry{types: make(map[string]Type)}

// RegisterType adds a document type to the registry. The first registration
// for a document type name wins; later registrations with the same name are
// ignored.
func RegisterType(typ Type) {
	key := strings.ToLower(typ.DocumentType)

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.types[key]; ok {
		return
	}
	registry.types[key] = typ
	registry.order = append(registry.order, key)
}

// ForDocumentType returns the registered type whose document type name
// matches, case-insensitively.
func ForDocumentType(name string) (Type, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	typ, ok := registry.types[strings.ToLower(name)]
	return typ, ok
}

// Types returns all registered document types in registration order.
func Types() []Type {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]Type, 0, len(registry.order))
	for _, key := range registry.order {
		out = append(out, registry.types[key])
	}
	return out
}
