package aig

import (
	"errors"
	"fmt"
)

// ErrLevelOverflow's message is the Detail of the "level-overflow" issue
// Check reports when an object's level exceeds the bit width the source
// packs levels into (see maxLevel24). No function returns or wraps this
// value, so errors.Is never matches it.
var ErrLevelOverflow = errors.New("aig: level overflow")

// ErrRefOverflow's message is the Detail of the "ref-overflow" issue Check
// reports when an object's reference count exceeds the bit width the source
// packs refs into (see maxRefs24). No function returns or wraps this value,
// so errors.Is never matches it.
var ErrRefOverflow = errors.New("aig: reference count overflow")

// ErrCheckFailed is the sentinel wrapped by CheckReport.AsError when a
// Check() pass finds at least one issue.
var ErrCheckFailed = errors.New("aig: invariant check failed")

// AsError turns a non-OK CheckReport into a single wrapped error suitable
// for a caller that wants a plain (manager, error) return instead of
// inspecting the report's issues individually.
func (r *CheckReport) AsError() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %d issue(s), first: %s (obj %d): %s",
		ErrCheckFailed, len(r.Issues), r.Issues[0].Kind, r.Issues[0].ObjID, r.Issues[0].Detail)
}
