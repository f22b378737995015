// Package scenarios contains the built-in demo scenarios.
package scenarios

import "github.com/zhubert/caesar/internal/demo"

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		ReadOnlyOutput,
	}
}

// Get returns the scenario with the given name, or nil.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
