package ndarray

import "errors"

// Errors reported by the runtime. Callers match them with errors.Is;
// returned errors wrap these sentinels with context.
var (
	// ErrInvalidShape reports a negative extent, a rank mismatch between a
	// shape and a set of per-axis arguments, or a malformed slice range.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrAllocation reports that a data buffer could not be obtained.
	ErrAllocation = errors.New("allocation failed")

	// ErrUnsupportedKind reports an unregistered element kind.
	ErrUnsupportedKind = errors.New("unsupported element kind")

	// ErrKindMismatch reports two arrays whose element kinds disagree where
	// they must match (copy, assembly).
	ErrKindMismatch = errors.New("element kind mismatch")

	// ErrUseAfterRelease reports an operation on a handle that was never
	// initialized or has already been released.
	ErrUseAfterRelease = errors.New("use after release")

	// ErrDanglingView reports access through a view whose owning array has
	// been released. Owners must outlive their views; this check makes a
	// violation observable instead of corrupting memory.
	ErrDanglingView = errors.New("dangling view")
)
