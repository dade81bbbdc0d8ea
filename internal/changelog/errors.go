package changelog

import "errors"

// Sentinel errors for document parsing and validation. Every error returned
// by ParseDocument wraps exactly one of these, so callers can classify with
// errors.Is without string matching. All of them are format errors in the
// CLI taxonomy.
var (
	// ErrDocumentSyntax reports a document that fails to decode at all.
	ErrDocumentSyntax = errors.New("invalid changelog format")

	// ErrMissingKey reports an absent required top-level key.
	ErrMissingKey = errors.New("missing required key")

	// ErrInvalidTimestamp reports a timestamp string that does not match
	// the document's datetime layout.
	ErrInvalidTimestamp = errors.New("invalid datetime")

	// ErrInvalidSeverity reports an unknown change class label or a
	// change-type catalog whose key set differs from the closed set.
	ErrInvalidSeverity = errors.New("invalid change class")

	// ErrInvalidVisibility reports an unknown release class label.
	ErrInvalidVisibility = errors.New("invalid release class")

	// ErrInvalidChangeType reports a change-type label that is duplicated
	// across severities or absent from the catalog.
	ErrInvalidChangeType = errors.New("invalid change type")

	// ErrReleasesExhausted reports a change dated after every known
	// release. The synthetic final release makes this unreachable from
	// parsed documents; Build still reports it rather than faulting.
	ErrReleasesExhausted = errors.New("no release contains change")
)

// IsFormatError reports whether err belongs to the document format error
// taxonomy (exit code 2 at the CLI boundary).
func IsFormatError(err error) bool {
	for _, sentinel := range []error{
		ErrDocumentSyntax,
		ErrMissingKey,
		ErrInvalidTimestamp,
		ErrInvalidSeverity,
		ErrInvalidVisibility,
		ErrInvalidChangeType,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
