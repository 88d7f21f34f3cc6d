// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package elimstack

import "github.com/concurrent-go/elimstack/internal/backoff"

// Policy and AttemptState are the back-off policy collaborator of
// spec.md §4.3, implemented by internal/backoff. Re-exported here as
// aliases so the registry can live next to the interface (as
// go/tosca/interpreter_registry.go keeps Interpreter's registry in the
// same package as Interpreter) while the actual Alternating/Exponential
// logic - which has no need of anything else in this package - stays in
// internal/backoff.
type (
	Policy        = backoff.Policy
	AttemptState  = backoff.AttemptState
	PolicyFactory = backoff.Factory
)

// RegisterPolicyFactory registers a new Policy implementation under
// name, for use by Config.Policy. Mirrors
// go/tosca/interpreter_registry.go's RegisterInterpreterFactory.
func RegisterPolicyFactory(name string, factory PolicyFactory) error {
	return backoff.Register(name, factory)
}

// GetPolicyFactory performs a case-insensitive lookup in the policy
// registry, returning nil if nothing is registered under name.
func GetPolicyFactory(name string) PolicyFactory {
	return backoff.Get(name)
}

// GetAllRegisteredPolicies obtains all registered policy factories.
func GetAllRegisteredPolicies() map[string]PolicyFactory {
	return backoff.All()
}

// builtin policy names, usable as Config.Policy.
const (
	PolicyAlternating = "alternating"
	PolicyExponential = "exponential"
)
