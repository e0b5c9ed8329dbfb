package vector

import "github.com/pkg/errors"

// ErrUnsafeLifecycle is the error returned from NewWithLifecycle when the provided
// lifecycle has a move hook that may fail and no copy hook to fall back on, leaving
// no relocation path that can preserve the vector on failure
var ErrUnsafeLifecycle error = errors.New("lifecycle cannot support safe relocation: the move hook may fail and there is no copy hook")

// ErrInvalidSize is the error returned from Resize when the requested size is negative
var ErrInvalidSize error = errors.New("size must not be negative")
