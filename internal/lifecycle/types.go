package lifecycle

import "errors"

// Internal errors - mapped to public errors in viewstack package
var (
	ErrDispatcherClosed = errors.New("lifecycle: dispatcher is closed")
	ErrHandlerExists    = errors.New("lifecycle: handler already registered")
	ErrHandlerNotFound  = errors.New("lifecycle: handler not found")
)

// Signal is one render-lifecycle transition.
type Signal int

const (
	// SceneCompileBegin fires when the scene graph starts recompiling.
	SceneCompileBegin Signal = iota
	// ShaderActivated fires after the shading stage binds its program state.
	ShaderActivated
	// ShaderRendering fires once per render tick, before draw submission.
	ShaderRendering
	// ShaderDeactivated fires when the shading stage unbinds.
	ShaderDeactivated
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SceneCompileBegin:
		return "scene-compile-begin"
	case ShaderActivated:
		return "shader-activated"
	case ShaderRendering:
		return "shader-rendering"
	case ShaderDeactivated:
		return "shader-deactivated"
	default:
		return "unknown"
	}
}

// Handler reacts to one lifecycle signal.
//
// Handlers run synchronously on the publisher's goroutine, in registration
// order. A handler error does not stop delivery to the remaining handlers;
// Publish joins and returns all handler errors.
type Handler func(Signal) error

// HandlerStats tracks signal delivery for one handler.
type HandlerStats struct {
	Delivered uint64
	Failed    uint64
}

// Dispatcher fans lifecycle signals out to registered handlers.
//
// Delivery is synchronous and in registration order: Publish returns only
// after every handler has run to completion. That ordering is load-bearing
// for the view-transform stack, whose export path depends on signals being
// fully processed before the next one arrives.
type Dispatcher interface {
	Subscribe(id string, h Handler) error
	Unsubscribe(id string) error
	Publish(sig Signal) error
	Stats(id string) (HandlerStats, error)
	Close()
}
