package definition

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kaid/stupid-form-model/pkg/model"
)

// Registry stores validation rules by name so documents can reference
// them. Duplicate registrations are rejected to surface wiring mistakes.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]model.Rule
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]model.Rule),
	}
}

// Builtin returns a registry pre-populated with the built-in rules under
// the names "required", "numeric", and "atLeastOne".
func Builtin() *Registry {
	registry := NewRegistry()
	registry.MustRegister("required", model.Required)
	registry.MustRegister("numeric", model.Numeric)
	registry.MustRegister("atLeastOne", model.AtLeastOne)
	return registry
}

// Register adds a rule under the supplied name. Duplicate names return an
// error.
func (r *Registry) Register(name string, rule model.Rule) error {
	if rule == nil {
		return fmt.Errorf("definition: rule is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("definition: rule name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("definition: rule %q already registered", name)
	}

	r.rules[name] = rule
	return nil
}

// MustRegister panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegister(name string, rule model.Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(err)
	}
}

// Get retrieves a rule by name.
func (r *Registry) Get(name string) (model.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("definition: rule %q not found", name)
	}
	return rule, nil
}

// MustGet panics if the rule is missing.
func (r *Registry) MustGet(name string) model.Rule {
	rule, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return rule
}

// List returns a sorted list of registered rule names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a rule is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rules[name]
	return ok
}
