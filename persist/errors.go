package persist

import "errors"

// Sentinel errors surfaced by Load. Write never fails except on the
// underlying io.Writer's own errors.
var (
	// ErrFormatMismatch indicates the persisted header's weight type,
	// protected-id set, or pruned-class set differs from the caller's
	// request. Recoverable: the caller should rebuild from source.
	ErrFormatMismatch = errors.New("persist: header does not match requested parameters")

	// ErrCorruption indicates a structural defect in the body: a section
	// tag out of order, a count that does not match the data that
	// follows, or a distance/travel-time consistency check that failed.
	// Fatal: the file must not be trusted.
	ErrCorruption = errors.New("persist: corrupt graph file")
)
