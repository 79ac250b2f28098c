package cogo

// ReferenceError reports a command that refers to state that does not
// exist: an unknown coordinate id, a segment append or UNDO with no
// current polyline, or a RESUME with an empty branch stack.
type ReferenceError struct {
	Reason string
}

func (e *ReferenceError) Error() string { return e.Reason }
