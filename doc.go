// Package viewstack tracks the active camera/view transform for a
// retained-mode scene-graph renderer.
//
// # Overview
//
// ViewStack maintains a stack of nested view-transform scopes, the currently
// active transform, and a dirty flag gating export to the shading stage. The
// key design principle is:
//
//	"Export on change, never per frame. Cache derived matrices forever."
//
// Derived GPU-ready forms (the flat view matrix and the normal matrix, the
// transpose of the inverse of the view matrix) are computed lazily on first
// export and cached on the record. Because a record's matrix is immutable
// once pushed, the caches are permanently valid for that record instance.
//
// # Basic Usage
//
// Create a stack bound to a renderer and drive it from the traversal:
//
//	vs, err := viewstack.New(viewstack.Config{Renderer: backend})
//	if err != nil {
//	    return err
//	}
//
//	// Scene node enters a camera scope
//	rec := viewstack.NewLookAtRecord(eye, center, up)
//	if err := vs.Push("camera-1", rec); err != nil {
//	    return err
//	}
//
//	// ... traverse children ...
//
//	if err := vs.Pop(); err != nil {
//	    return err
//	}
//
// # Export Semantics
//
// The renderer's SetViewTransform is called only when state actually changed:
//
//	vs.Rendering()  // exports if dirty, no-op otherwise
//
// Push, Pop, BeginCompile, ShaderActivated and ShaderDeactivated mark the
// state dirty; a successful export clears it. Repeated render ticks without
// an intervening transition perform no recomputation and no renderer call.
// A pop does not re-flag just-exported state: only a transition dirties.
//
// # Lifecycle Wiring
//
// The render loop coordinates the stack through lifecycle signals rather
// than direct calls. Bind registers the stack's handlers on a dispatcher:
//
//	d := viewstack.NewDispatcher()
//	viewstack.Bind(vs, d, "view-transform")
//
//	d.Publish(viewstack.SceneCompileBegin)  // reset for a new cycle
//	d.Publish(viewstack.ShaderActivated)    // force re-delivery
//	d.Publish(viewstack.ShaderRendering)    // conditional export
//
// Delivery is synchronous and in registration order; a signal is fully
// processed by all handlers before Publish returns.
//
// # Update Notifications
//
// Collaborators (frustum sync, scene compilers) can observe every push/pop
// transition:
//
//	vs.SubscribeUpdates("frustum-sync", func(id string, rec *viewstack.TransformRecord) {
//	    // rec is the newly current record, pre-export, by reference
//	})
//
// Callbacks run synchronously inside Push/Pop, before the conditional
// export, and must not call back into the stack or mutate the record.
//
// # Error Handling
//
// A record whose matrix has zero determinant cannot produce a normal matrix.
// The export fails with ErrSingularMatrix, no renderer call occurs, no
// partial cache is written, and the state stays dirty. Pop on an empty stack
// is an unbalanced push/pop in the caller and panics.
//
// # Thread Safety
//
// All operations are safe for concurrent use. One lock guards the entire
// push/notify/export sequence, so collaborators never observe a
// half-applied transition.
//
// # Observability
//
// Stats expose activity counters:
//
//	stats := vs.Stats()
//	fmt.Printf("exports: %d, skipped: %d, savings: %.1f%%\n",
//	    stats.Exports, stats.ExportsSkipped,
//	    viewstack.CalculateExportSavings(stats)*100)
//
// # Example
//
// See examples/demo/ for a complete working example driving a traversal
// script against a console renderer, and examples/frustum_client.go for the
// consumer perspective.
package viewstack
