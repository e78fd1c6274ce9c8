package expand

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is wrapped by DepthError.
var ErrDepthExceeded = errors.New("placeholder depth limit exceeded")

// DepthError reports relation traversal nested deeper than Limit, usually
// caused by a cycle in the provider graph.
type DepthError struct {
	Limit    int
	TypeName string // provider the guard tripped on
	Path     string // path of the token being expanded there
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: limit %d reached at %s: %s", ErrDepthExceeded, e.Limit, e.TypeName, e.Path)
}

func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
