package rawmem

import "github.com/pkg/errors"

// ErrInvalidCapacity is the error returned from Block.Init when the requested capacity is negative
var ErrInvalidCapacity error = errors.New("capacity must not be negative")
