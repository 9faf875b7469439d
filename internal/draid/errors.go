package draid

import "errors"

// Sentinel error kinds surfaced at the boundaries described in spec §7.
// Callers should use errors.Is against these rather than string matching.
var (
	// ErrInvalid marks a geometry constraint violation, bad alignment,
	// or an ndata/nparity mismatch. Surfaced at Configure or open.
	ErrInvalid = errors.New("draid: invalid argument")

	// ErrChecksum marks a PermMap checksum mismatch or an unrecoverable
	// stripe checksum failure.
	ErrChecksum = errors.New("draid: checksum mismatch")

	// ErrNoChildren marks too many missing children for reconstruction,
	// or a spare that resolves to no child.
	ErrNoChildren = errors.New("draid: no usable replicas")

	// ErrIO marks a child I/O error survived reconstruction.
	ErrIO = errors.New("draid: i/o error")

	// ErrNotSupported marks an unsupported operation for the current
	// vdev state (e.g. TRIM on a spare lacking TRIM support).
	ErrNotSupported = errors.New("draid: operation not supported")

	// ErrNoEntry marks a PermMap lookup for an unsupported child count.
	ErrNoEntry = errors.New("draid: no permutation map for this child count")

	// ErrCanceled marks a parent I/O that completed with fewer than
	// groupwidth-nparity successful columns because of cancellation.
	ErrCanceled = errors.New("draid: canceled")
)
