// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package backoff

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file is a structural adaptation of
// go/tosca/interpreter_registry.go: a name-keyed registry of factories,
// looked up case-insensitively, intended to be populated by package
// init() functions (see alternating.go, exponential.go).

// New performs a lookup for the given name (case-insensitive) in the
// registry and creates a new Policy. An error is returned if no factory
// was registered under the given name.
func New(name string) (Policy, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("backoff policy not found: %s", name)
	}
	return factory(), nil
}

// Get performs a lookup for the given name (case-insensitive) in the
// registry. The result is nil if no factory was registered under the
// given name.
func Get(name string) Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return registry[strings.ToLower(name)]
}

// All obtains all registered policy factories, keyed by name.
func All() map[string]Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(registry)
}

// Register binds a new Factory to a name. The name is not case
// sensitive; an error is returned if a factory was already bound to the
// same name, or if factory is nil. Intended to be used by package
// initialization code.
func Register(name string, factory Factory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := registry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	registry[key] = factory
	return nil
}

// MustRegister is Register, but panics on error. Intended for use in
// package init() functions, mirroring the teacher's own
// RegisterInterpreter fatal-on-conflict convention.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

var (
	registry     = map[string]Factory{}
	registryLock sync.Mutex
)
