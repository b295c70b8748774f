package viewstack

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestCalculateExportSavings verifies the cache-savings ratio.
func TestCalculateExportSavings(t *testing.T) {
	cases := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"no activity", Stats{}, 0.0},
		{"all exported", Stats{Exports: 4}, 0.0},
		{"all skipped", Stats{ExportsSkipped: 4}, 1.0},
		{"mixed", Stats{Exports: 1, ExportsSkipped: 3}, 0.75},
	}

	for _, tc := range cases {
		if got := CalculateExportSavings(tc.stats); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestNewLookAtRecord verifies the matrix is built from the parameters and
// the metadata is kept for pass-through.
func TestNewLookAtRecord(t *testing.T) {
	eye := mgl32.Vec3{0, 5, 10}
	center := mgl32.Vec3{0, 0, 0}
	up := mgl32.Vec3{0, 1, 0}

	rec := NewLookAtRecord(eye, center, up)
	if rec.LookAt == nil {
		t.Fatal("Expected look-at metadata")
	}
	if rec.LookAt.Eye != eye || rec.LookAt.Center != center || rec.LookAt.Up != up {
		t.Errorf("Look-at metadata mangled: %+v", rec.LookAt)
	}
	if rec.Matrix != mgl32.LookAtV(eye, center, up) {
		t.Errorf("Matrix does not match LookAtV output")
	}
	// A view matrix must be invertible or the export would reject it.
	if det := rec.Matrix.Det(); det > -1e-8 && det < 1e-8 {
		t.Errorf("Look-at matrix unexpectedly singular")
	}
}

// TestIdentityRecord verifies the flag and matrix agree.
func TestIdentityRecord(t *testing.T) {
	rec := IdentityRecord()
	if !rec.Identity {
		t.Errorf("Expected Identity flag set")
	}
	if rec.Matrix != mgl32.Ident4() {
		t.Errorf("Expected identity matrix")
	}
	if _, ok := rec.MatrixArray(); ok {
		t.Errorf("Expected no cached arrays before first export")
	}
}

// TestNewMatrixRecord verifies plain wrapping.
func TestNewMatrixRecord(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	rec := NewMatrixRecord(m)
	if rec.Matrix != m {
		t.Errorf("Matrix not carried through")
	}
	if rec.LookAt != nil {
		t.Errorf("Expected no look-at metadata")
	}
}
