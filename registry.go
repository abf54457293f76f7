package enum

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Use returns the Type declared by D, creating it on first call.
// Every call for the same D returns the same *Type, so the registry behind it
// is built once per process.
//
// D is conventionally an empty struct, though any named type works. When its
// Definition leaves Name empty, the Go type name of D is used.
func Use[D Declarer[V], V Integer]() (*Type[V], error) {
	typ := reflect.TypeFor[D]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*Type[V]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*Type[V]), nil
	}

	var d D
	def := d.Definition()
	if def.Name == "" {
		def.Name = declarerName[D](typ)
	}

	t, err := New(def)
	if err != nil {
		return nil, err
	}

	registry[typ] = t
	return t, nil
}

// declarerName returns the Go type name of D. Only struct types are scanned.
func declarerName[D any](typ reflect.Type) string {
	if typ.Kind() == reflect.Struct {
		return sentinel.Scan[D]().TypeName
	}
	return typ.Name()
}

// MustUse is like Use but panics on error.
func MustUse[D Declarer[V], V Integer]() *Type[V] {
	t, err := Use[D, V]()
	if err != nil {
		panic(err)
	}
	return t
}

// Reset clears the Use cache. Types already returned keep their registries.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
