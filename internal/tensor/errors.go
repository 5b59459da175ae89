package tensor

import "github.com/pkg/errors"

// Common errors.
var (
	ErrShape = errors.New("tensor: incompatible shape")
	ErrIndex = errors.New("tensor: index out of range")
	ErrAxis  = errors.New("tensor: invalid axis")
)
