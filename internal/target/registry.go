package target

import (
	"fmt"
)

// Registry holds the supported targets in processing order.
type Registry struct {
	targets []*Target
}

// NewRegistry creates a Registry with the default targets.
func NewRegistry() *Registry {
	return &Registry{targets: Defaults()}
}

// Get returns a target by name.
func (r *Registry) Get(name string) (*Target, error) {
	for _, t := range r.targets {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown target: %s", name)
}

// All returns the targets in processing order.
func (r *Registry) All() []*Target {
	return r.targets
}

// Names returns the target names in processing order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for _, t := range r.targets {
		names = append(names, t.Name)
	}
	return names
}
