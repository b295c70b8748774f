// Package viewstack provides a view-transform cache and stack manager for a
// retained-mode scene-graph renderer.
//
// Core Philosophy: "Export on change, never per frame."
//
// ViewStack tracks nested view-transform scopes with push/pop discipline and
// exports GPU-ready matrices to the rendering backend only when state
// actually changed (dirty flag + per-record lazy cache).
//
// Usage:
//
//	vs, _ := viewstack.New(viewstack.Config{Renderer: backend})
//
//	vs.Push("camera-1", viewstack.NewLookAtRecord(eye, center, up))
//	vs.Pop()
//
//	// Lifecycle-driven export
//	d := viewstack.NewDispatcher()
//	viewstack.Bind(vs, d, "view-transform")
//	d.Publish(viewstack.ShaderRendering)
//
// Public API Stability:
//
// This package follows semantic versioning. The public API (types,
// interfaces, errors) is considered stable and will not change in
// backwards-incompatible ways without a major version bump. Internal
// implementation can evolve freely.
package viewstack

import (
	"log/slog"

	"github.com/e7canasta/scenegraph/modules/viewstack/internal/lifecycle"
	"github.com/e7canasta/scenegraph/modules/viewstack/internal/stack"
)

// Config configures a view-transform stack.
type Config struct {
	// Renderer receives exported view transforms (required).
	Renderer Renderer
	// Logger is used for debug tracing of exports and compile-cycle
	// resets. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// New creates a view-transform stack with fail-fast validation.
//
// The stack starts dirty with an identity transform, so the first render
// tick always exports.
func New(cfg Config) (Stack, error) {
	return stack.New(cfg.Renderer, cfg.Logger)
}

// NewDispatcher creates a synchronous lifecycle-signal dispatcher.
func NewDispatcher() Dispatcher {
	return lifecycle.New()
}

// Bind registers the stack's lifecycle handlers on d under subscriberID.
//
// After binding, publishing SceneCompileBegin, ShaderActivated,
// ShaderRendering or ShaderDeactivated drives the corresponding stack
// transition; an export failure on ShaderRendering surfaces through
// Publish's error.
func Bind(s Stack, d Dispatcher, subscriberID string) error {
	return d.Subscribe(subscriberID, func(sig Signal) error {
		switch sig {
		case SceneCompileBegin:
			s.BeginCompile()
		case ShaderActivated:
			s.ShaderActivated()
		case ShaderRendering:
			return s.Rendering()
		case ShaderDeactivated:
			s.ShaderDeactivated()
		}
		return nil
	})
}
