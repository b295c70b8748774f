package stack

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// singularEps bounds float32 determinant noise. Determinants below this are
// treated as singular rather than inverted into garbage.
const singularEps = 1e-8

// defaultTransform is the shared identity record installed when the stack
// empties. Its caches may be populated by a later export; its matrix never
// changes.
var defaultTransform = &TransformRecord{
	Matrix:   mgl32.Ident4(),
	Fixed:    true,
	Identity: true,
}

type entry struct {
	id  string
	rec *TransformRecord
}

type updateSub struct {
	id string
	fn UpdateFunc
}

// viewStack implements Stack. One mutex guards the whole push/notify/export
// sequence: collaborators must never observe a half-applied transition.
type viewStack struct {
	mu sync.Mutex

	renderer Renderer
	log      *slog.Logger

	entries   []entry
	currentID string
	current   *TransformRecord
	dirty     bool

	// Update subscribers, delivered in registration order.
	subs []updateSub

	compileID string

	pushes   uint64
	pops     uint64
	exports  uint64
	skipped  uint64
	notified uint64
	resets   uint64
}

// New creates a view-transform stack bound to a renderer.
//
// Initial state matches a fresh compile cycle: empty stack, identity
// transform, dirty. The first render tick therefore always exports.
func New(r Renderer, logger *slog.Logger) (Stack, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &viewStack{
		renderer:  r,
		log:       logger,
		current:   &TransformRecord{Matrix: mgl32.Ident4(), Identity: true},
		dirty:     true,
		compileID: uuid.NewString(),
	}, nil
}

func (s *viewStack) Push(id string, rec *TransformRecord) error {
	if rec == nil {
		return ErrNilRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry{id: id, rec: rec})
	s.currentID = id
	s.current = rec
	s.dirty = true
	s.pushes++

	s.notifyLocked()
	return s.exportLocked()
}

func (s *viewStack) Pop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		panic("viewstack: Pop on empty transform stack (unbalanced push/pop)")
	}

	s.entries = s.entries[:len(s.entries)-1]
	if n := len(s.entries); n > 0 {
		top := s.entries[n-1]
		s.currentID = top.id
		s.current = top.rec
	} else {
		s.currentID = ""
		s.current = defaultTransform
	}
	s.dirty = true
	s.pops++

	s.notifyLocked()
	// Dirty is cleared by the export itself; a pop never leaves
	// just-exported state flagged stale.
	return s.exportLocked()
}

func (s *viewStack) Transform() *TransformRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *viewStack) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

func (s *viewStack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *viewStack) SubscribeUpdates(id string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub.id == id {
			return ErrSubscriberExists
		}
	}
	s.subs = append(s.subs, updateSub{id: id, fn: fn})
	return nil
}

func (s *viewStack) UnsubscribeUpdates(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriberNotFound
}

func (s *viewStack) BeginCompile() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.entries); n > 0 {
		// Leftover scopes from the previous cycle: recompilation
		// restarts traversal, so the unbalanced stack is discarded.
		s.log.Debug("discarding unbalanced transform stack",
			"compile_id", s.compileID,
			"depth", n,
		)
	}
	s.entries = s.entries[:0]
	s.currentID = ""
	s.current = &TransformRecord{Matrix: mgl32.Ident4(), Identity: true}
	s.dirty = true
	s.compileID = uuid.NewString()
	s.resets++
}

func (s *viewStack) ShaderActivated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The shading stage rebound its program state: the transform must be
	// re-delivered even if the matrix is unchanged.
	s.dirty = true
}

func (s *viewStack) ShaderDeactivated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

func (s *viewStack) Rendering() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportLocked()
}

func (s *viewStack) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Pushes:         s.pushes,
		Pops:           s.pops,
		Exports:        s.exports,
		ExportsSkipped: s.skipped,
		Notified:       s.notified,
		Resets:         s.resets,
		Depth:          len(s.entries),
		CompileID:      s.compileID,
	}
}

// notifyLocked fans the current record out to update subscribers.
// Runs before the conditional export: subscribers observe the pre-export
// record. Caller holds s.mu.
func (s *viewStack) notifyLocked() {
	for _, sub := range s.subs {
		sub.fn(s.currentID, s.current)
		s.notified++
	}
}

// exportLocked delivers the current transform to the renderer if dirty,
// populating the record's lazy caches on first use. Caller holds s.mu.
func (s *viewStack) exportLocked() error {
	if !s.dirty {
		s.skipped++
		return nil
	}

	rec := s.current
	if rec.matrixArray == nil {
		arr := [16]float32(rec.Matrix)
		rec.matrixArray = &arr
	}
	if rec.normalArray == nil {
		det := rec.Matrix.Det()
		if det > -singularEps && det < singularEps {
			// No partial cache, no renderer call; state stays
			// dirty so the failure is not masked.
			return fmt.Errorf("export %q: %w", s.currentID, ErrSingularMatrix)
		}
		norm := [16]float32(rec.Matrix.Inv().Transpose())
		rec.normalArray = &norm
	}

	s.renderer.SetViewTransform(s.currentID, *rec.matrixArray, *rec.normalArray, rec.LookAt)
	s.dirty = false
	s.exports++

	s.log.Debug("view transform exported",
		"compile_id", s.compileID,
		"node_id", s.currentID,
		"depth", len(s.entries),
	)
	return nil
}
