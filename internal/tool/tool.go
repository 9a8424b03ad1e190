// Package tool implements the interactive measurement tools. A tool is
// a small state machine fed pointer events by the frontend; it resolves
// picks through the snap engine and emits finished measurement
// artifacts. Tools narrow the shared snap settings while active and
// restore them exactly on deactivation.
package tool

import (
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// Phase is the pick progress of the dimension tool
type Phase int

const (
	// PhaseIdle means no pick has been made yet
	PhaseIdle Phase = iota
	// PhaseFirstPointSet means the start point is recorded and the next
	// pick chooses the end point
	PhaseFirstPointSet
	// PhasePositioning means both points are recorded and the pointer
	// positions the dimension offset
	PhasePositioning
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFirstPointSet:
		return "first point set"
	case PhasePositioning:
		return "positioning"
	}
	return "unknown"
}

// pick resolves a pointer event against the scene and returns the best
// snap point, falling back to the raw query point when nothing snaps.
func pick(ctx snap.Context, q snap.Query) (geometry.Vector3, bool) {
	candidates := snap.Resolve(ctx, q)
	if len(candidates) > 0 {
		return candidates[0].Point, true
	}
	return q.Point, false
}
