package viewstack

import (
	"github.com/e7canasta/scenegraph/modules/viewstack/internal/lifecycle"
	"github.com/e7canasta/scenegraph/modules/viewstack/internal/stack"
)

// Public API - Re-export internal types as stable contract

// TransformRecord is one view-transform scope with lazily cached GPU forms
type TransformRecord = stack.TransformRecord

// LookAt carries the eye/center/up parameters that produced a view matrix
type LookAt = stack.LookAt

// Renderer is the shading-stage collaborator receiving exported transforms
type Renderer = stack.Renderer

// UpdateFunc observes push/pop transitions
type UpdateFunc = stack.UpdateFunc

// Stats is a snapshot of stack activity counters
type Stats = stack.Stats

// Stack tracks the active view transform for a scene-graph traversal
type Stack = stack.Stack

// Signal is one render-lifecycle transition
type Signal = lifecycle.Signal

const (
	// SceneCompileBegin resets the stack for a new compile cycle
	SceneCompileBegin = lifecycle.SceneCompileBegin
	// ShaderActivated forces re-delivery of the transform on the next tick
	ShaderActivated = lifecycle.ShaderActivated
	// ShaderRendering triggers the conditional export
	ShaderRendering = lifecycle.ShaderRendering
	// ShaderDeactivated marks exported state stale
	ShaderDeactivated = lifecycle.ShaderDeactivated
)

// Handler reacts to one lifecycle signal
type Handler = lifecycle.Handler

// HandlerStats tracks signal delivery for one handler
type HandlerStats = lifecycle.HandlerStats

// Dispatcher fans lifecycle signals out synchronously, in registration order
type Dispatcher = lifecycle.Dispatcher

// Public API errors - Re-export internal errors as stable contract
var (
	ErrNilRenderer        = stack.ErrNilRenderer
	ErrNilRecord          = stack.ErrNilRecord
	ErrSingularMatrix     = stack.ErrSingularMatrix
	ErrSubscriberExists   = stack.ErrSubscriberExists
	ErrSubscriberNotFound = stack.ErrSubscriberNotFound
	ErrDispatcherClosed   = lifecycle.ErrDispatcherClosed
	ErrHandlerExists      = lifecycle.ErrHandlerExists
	ErrHandlerNotFound    = lifecycle.ErrHandlerNotFound
)
