package viewstack

import "github.com/go-gl/mathgl/mgl32"

// NewMatrixRecord wraps a view matrix in a TransformRecord.
func NewMatrixRecord(m mgl32.Mat4) *TransformRecord {
	return &TransformRecord{Matrix: m}
}

// NewLookAtRecord builds a record from eye/center/up camera parameters,
// keeping them as pass-through metadata for the renderer.
func NewLookAtRecord(eye, center, up mgl32.Vec3) *TransformRecord {
	return &TransformRecord{
		Matrix: mgl32.LookAtV(eye, center, up),
		LookAt: &LookAt{Eye: eye, Center: center, Up: up},
	}
}

// IdentityRecord returns a fresh identity record.
func IdentityRecord() *TransformRecord {
	return &TransformRecord{Matrix: mgl32.Ident4(), Identity: true}
}

// CalculateExportSavings returns the fraction of render ticks
// short-circuited by the dirty-flag cache (0.0 to 1.0).
// Returns 0.0 if no export has been requested yet.
func CalculateExportSavings(stats Stats) float64 {
	total := stats.Exports + stats.ExportsSkipped
	if total == 0 {
		return 0.0
	}
	return float64(stats.ExportsSkipped) / float64(total)
}
