// internal/app/directory/errors.go
package directory

import "errors"

var (
	// ErrStoreUnavailable wraps a record-store failure during a partition
	// computation. The whole operation fails; no partial split is returned.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrQueryFailed wraps a record-store failure during a search. It is
	// surfaced to the caller and never mapped to an empty result set.
	ErrQueryFailed = errors.New("directory query failed")

	// ErrEmptyQuery is returned when Search is invoked without a query.
	// Callers wanting the default partitioned view should use Query.
	ErrEmptyQuery = errors.New("search query is empty")
)
