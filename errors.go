package grove

import (
	"errors"
	"fmt"

	"github.com/phanxgames/grove/desc"
)

var (
	// ErrUnknownNode means the graph holds a node type the materializer has
	// no case for. It signals a version skew between desc and grove.
	ErrUnknownNode = errors.New("grove: unknown node type")
	// ErrUnsupported means the graph uses a capability grove does not
	// provide, such as a custom animation controller.
	ErrUnsupported = errors.New("grove: unsupported")
	// ErrCycle means a node is reachable from itself through structural
	// references, or a visual is placed in the tree twice.
	ErrCycle = errors.New("grove: cycle in scene graph")
	// ErrInvalidNode means a node's fields are inconsistent: an enum value
	// out of range, a missing effect source, an animation that does not fit
	// its property.
	ErrInvalidNode = errors.New("grove: invalid node")
	// ErrInvariant means an internal expectation was broken.
	ErrInvariant = errors.New("grove: invariant violated")
)

// MaterializeError reports the node that stopped a materialization.
type MaterializeError struct {
	Kind    desc.Kind
	Comment string
	Err     error
}

func (e *MaterializeError) Error() string {
	if e.Comment != "" {
		return fmt.Sprintf("materialize %s %q: %v", e.Kind, e.Comment, e.Err)
	}
	return fmt.Sprintf("materialize %s: %v", e.Kind, e.Err)
}

func (e *MaterializeError) Unwrap() error { return e.Err }

// fail aborts the current materialization. Materialize recovers the panic
// and returns the error.
func fail(n desc.Node, sentinel error, format string, args ...any) {
	err := sentinel
	if format != "" {
		err = fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	}
	panic(&MaterializeError{Kind: n.Kind(), Comment: n.Base().Comment, Err: err})
}
