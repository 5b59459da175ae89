package factor

import (
	"sync"

	"github.com/pkg/errors"
)

// Variable is a discrete random variable: a name plus a domain size k.
// Its values are the indices 0..k-1. Variables are comparable values; two
// Variables are the same variable when both name and domain size match.
type Variable struct {
	name string
	size int
}

// NewVariable creates a variable with the given name and domain size.
func NewVariable(name string, domainSize int) (Variable, error) {
	if name == "" {
		return Variable{}, errors.WithStack(ErrInvalidName)
	}
	if domainSize <= 0 {
		return Variable{}, errors.Wrapf(ErrInvalidDomain, "variable %q has domain size %d", name, domainSize)
	}
	return Variable{name: name, size: domainSize}, nil
}

// Name returns the variable's identifier.
func (v Variable) Name() string { return v.name }

// DomainSize returns the number of values the variable can take.
func (v Variable) DomainSize() int { return v.size }

// String returns the variable name.
func (v Variable) String() string { return v.name }

// Registry declares variables for one model. It is owned by the caller and
// passed around explicitly, so independent models never share declarations.
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Variable
	order  []Variable
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Variable)}
}

// Variable declares name with the given domain size, or returns the existing
// declaration. Redeclaring a name with a different size fails with
// ErrDomainMismatch.
func (r *Registry) Variable(name string, domainSize int) (Variable, error) {
	v, err := NewVariable(name, domainSize)
	if err != nil {
		return Variable{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[name]; ok {
		if existing.size != domainSize {
			return Variable{}, errors.Wrapf(ErrDomainMismatch,
				"variable %q already declared with domain size %d, got %d", name, existing.size, domainSize)
		}
		return existing, nil
	}
	r.byName[name] = v
	r.order = append(r.order, v)
	return v, nil
}

// Lookup returns the variable declared under name.
func (r *Registry) Lookup(name string) (Variable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byName[name]
	return v, ok
}

// Scope builds a scope from declared variable names, in the given order.
func (r *Registry) Scope(names ...string) (Scope, error) {
	vars := make([]Variable, len(names))
	for i, name := range names {
		v, ok := r.Lookup(name)
		if !ok {
			return Scope{}, errors.Wrapf(ErrUnknownVariable, "%q", name)
		}
		vars[i] = v
	}
	return NewScope(vars...)
}

// Variables returns the declared variables in declaration order.
func (r *Registry) Variables() []Variable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Variable, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of declared variables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
