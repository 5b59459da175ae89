package factor

import "github.com/pkg/errors"

// Errors reported by factor construction and operations. Returned errors wrap
// one of these with context; match them with errors.Is.
var (
	ErrInvalidDomain      = errors.New("factor: domain size must be positive")
	ErrInvalidName        = errors.New("factor: variable name must not be empty")
	ErrDuplicateVariable  = errors.New("factor: duplicate variable in scope")
	ErrUnknownVariable    = errors.New("factor: unknown variable")
	ErrShapeMismatch      = errors.New("factor: values do not match scope shape")
	ErrMissingVariable    = errors.New("factor: assignment is missing a scope variable")
	ErrIndexOutOfRange    = errors.New("factor: assigned index outside variable domain")
	ErrDomainMismatch     = errors.New("factor: variable declared with different domain sizes")
	ErrVariableNotInScope = errors.New("factor: variable not in scope")
	ErrZeroMassSlice      = errors.New("factor: cannot normalize a slice with zero mass")
	ErrInvalidAxisCount   = errors.New("factor: invalid number of trailing axes")
	ErrScopeMismatch      = errors.New("factor: scopes hold different variables")
	ErrNotNormalized      = errors.New("factor: conditional slices do not sum to 1")
)
