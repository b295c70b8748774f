package stack

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Internal errors - mapped to public errors in viewstack package
var (
	ErrNilRenderer        = errors.New("viewstack: renderer is required")
	ErrNilRecord          = errors.New("viewstack: nil transform record")
	ErrSingularMatrix     = errors.New("viewstack: singular view matrix, normal matrix is undefined")
	ErrSubscriberExists   = errors.New("viewstack: update subscriber already exists")
	ErrSubscriberNotFound = errors.New("viewstack: update subscriber not found")
)

// LookAt records the eye/center/up parameters that produced a view matrix.
// The stack never interprets it; it is handed to the renderer untouched.
type LookAt struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
}

// TransformRecord is one view-transform scope.
//
// Matrix is immutable once the record is pushed: replacing the view transform
// means pushing a new record, never mutating an existing one. That contract is
// what makes the derived caches below permanently valid for the lifetime of
// the record instance.
type TransformRecord struct {
	// Matrix is the authoritative view matrix (column-major).
	Matrix mgl32.Mat4
	// Fixed marks a transform that never changes after creation.
	Fixed bool
	// Identity marks Matrix as the identity matrix (informational).
	Identity bool
	// LookAt optionally carries the parameters that produced Matrix.
	LookAt *LookAt

	// GPU-ready forms, computed lazily on first export and never
	// recomputed for this record instance.
	matrixArray *[16]float32
	normalArray *[16]float32
}

// MatrixArray returns the cached GPU-ready matrix.
// The second return is false until the record has been exported once.
func (r *TransformRecord) MatrixArray() ([16]float32, bool) {
	if r.matrixArray == nil {
		return [16]float32{}, false
	}
	return *r.matrixArray, true
}

// NormalArray returns the cached GPU-ready normal matrix
// (transpose of the inverse of Matrix).
// The second return is false until the record has been exported once.
func (r *TransformRecord) NormalArray() ([16]float32, bool) {
	if r.normalArray == nil {
		return [16]float32{}, false
	}
	return *r.normalArray, true
}

// UpdateFunc receives the newly current record after a push or pop.
//
// Callbacks run synchronously on the mutating goroutine, before the
// conditional export, and MUST NOT call back into the Stack (the stack lock
// is held for the whole push/notify/export sequence). The record is shared
// by reference and must not be mutated.
type UpdateFunc func(id string, rec *TransformRecord)

// Renderer is the shading-stage collaborator that consumes exported view
// transforms. SetViewTransform is invoked only when an export actually
// occurs; a clean stack never calls it.
type Renderer interface {
	SetViewTransform(id string, matrix, normalMatrix [16]float32, lookAt *LookAt)
}

// Stats is a point-in-time snapshot of stack activity.
type Stats struct {
	// Pushes is the total number of transform scopes entered.
	Pushes uint64
	// Pops is the total number of transform scopes exited.
	Pops uint64
	// Exports is the number of SetViewTransform deliveries performed.
	Exports uint64
	// ExportsSkipped is the number of export requests short-circuited
	// because the cached state was still clean.
	ExportsSkipped uint64
	// Notified is the number of update callbacks delivered.
	Notified uint64
	// Resets is the number of scene-compile cycles begun.
	Resets uint64
	// Depth is the current nesting depth.
	Depth int
	// CompileID identifies the current compile cycle (for tracing).
	CompileID string
}

// Stack tracks the active view transform for a scene-graph traversal.
type Stack interface {
	// Push enters a nested view-transform scope, notifies update
	// subscribers, and exports the new transform to the renderer.
	// Returns an error if the record's matrix is singular; in that case
	// the renderer is not called and the state stays dirty.
	Push(id string, rec *TransformRecord) error

	// Pop exits the innermost scope, restoring the previous transform
	// (or the identity default when the stack empties), notifies update
	// subscribers, and exports. Pop on an empty stack is an unbalanced
	// push/pop in the caller and panics.
	Pop() error

	// Transform returns the current record. Read-only: callers must not
	// mutate it.
	Transform() *TransformRecord

	// CurrentID returns the identifier of the node owning the current
	// transform, or "" when the stack is empty.
	CurrentID() string

	// Depth returns the current nesting depth.
	Depth() int

	// SubscribeUpdates registers fn to observe push/pop transitions.
	// Delivery is synchronous, in registration order.
	SubscribeUpdates(id string, fn UpdateFunc) error

	// UnsubscribeUpdates removes a previously registered subscriber.
	UnsubscribeUpdates(id string) error

	// BeginCompile resets the stack for a new scene-compile cycle.
	// A non-empty stack left over from the previous cycle is discarded.
	BeginCompile()

	// ShaderActivated marks the exported state stale so the next render
	// tick re-delivers the transform to the freshly bound shader.
	ShaderActivated()

	// ShaderDeactivated marks the exported state stale.
	ShaderDeactivated()

	// Rendering performs the conditional export for one render tick.
	// No-op while clean.
	Rendering() error

	// Stats returns a snapshot of activity counters.
	Stats() Stats
}
