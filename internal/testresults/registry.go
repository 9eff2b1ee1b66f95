package testresults

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new, empty provider.
type Factory func() Provider

var (
	registryMu sync.RWMutex
	providers  = make(map[string]Factory)
)

// Register makes a provider factory available under name.
// It panics if the name is already registered or if the factory is nil.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic(fmt.Sprintf("testresults: Register factory is nil for %q", name))
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("testresults: Register called twice for %q", name))
	}
	providers[name] = factory
}

// Get returns a new instance of the provider with the given name.
func Get(name string) (Provider, error) {
	registryMu.RLock()
	factory, exists := providers[name]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("testresults: unknown results format %q", name)
	}
	return factory(), nil
}

// List returns the sorted names of all registered providers.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, exists := providers[name]
	return exists
}

// Unregister removes a provider from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(providers, name)
}
