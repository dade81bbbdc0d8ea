package changelog

import (
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Severity classifies the impact of a single change. The set is closed:
// documents whose change-type catalog uses any other key set are rejected.
type Severity int

const (
	SeverityMajor Severity = iota
	SeverityMinor
	SeverityPatch
	SeverityInternal
)

// String returns the canonical label used in changelog documents.
func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "major"
	case SeverityMinor:
		return "minor"
	case SeverityPatch:
		return "patch"
	case SeverityInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Severities returns all severity classes in catalog order.
func Severities() []Severity {
	return []Severity{SeverityMajor, SeverityMinor, SeverityPatch, SeverityInternal}
}

// ParseSeverity resolves a canonical label to its severity class.
func ParseSeverity(label string) (Severity, error) {
	for _, s := range Severities() {
		if label == s.String() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unexpected change class %q", ErrInvalidSeverity, label)
}

// Visibility classifies whether a release is externally visible. Private
// releases suppress major bumps while the version is still pre-1.0.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

// String returns the canonical label used in changelog documents.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ParseVisibility resolves a canonical label to its visibility class.
func ParseVisibility(label string) (Visibility, error) {
	for _, v := range []Visibility{VisibilityPublic, VisibilityPrivate} {
		if label == v.String() {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unexpected release class %q", ErrInvalidVisibility, label)
}

// Release is an immutable timestamped release fact.
type Release struct {
	Timestamp  time.Time
	Visibility Visibility
	Comment    string
}

// Change is an immutable timestamped change fact. Type is the document's
// free-form type label; Severity is its resolved class.
type Change struct {
	Timestamp time.Time
	Severity  Severity
	Type      string
	Comment   string
}

// TypeCatalog maps free-form change-type labels to severity classes.
// Construction validates that the severity key set is exactly the closed
// set and that no label appears under two severities.
type TypeCatalog struct {
	bySeverity map[Severity][]string
	byLabel    map[string]Severity
}

// NewTypeCatalog builds a catalog from the document's "change types"
// mapping (severity label to list of type labels).
func NewTypeCatalog(definitions map[string][]string) (*TypeCatalog, error) {
	seen := make(map[string]bool)
	for _, labels := range definitions {
		for _, label := range labels {
			if seen[label] {
				return nil, fmt.Errorf("%w: change type %q is duplicated", ErrInvalidChangeType, label)
			}
			seen[label] = true
		}
	}

	if len(definitions) != len(Severities()) {
		return nil, invalidSeverityKeySet()
	}
	catalog := &TypeCatalog{
		bySeverity: make(map[Severity][]string, len(definitions)),
		byLabel:    make(map[string]Severity, len(seen)),
	}
	for severityLabel, labels := range definitions {
		severity, err := ParseSeverity(severityLabel)
		if err != nil {
			return nil, invalidSeverityKeySet()
		}
		catalog.bySeverity[severity] = append([]string(nil), labels...)
		for _, label := range labels {
			catalog.byLabel[label] = severity
		}
	}
	return catalog, nil
}

func invalidSeverityKeySet() error {
	labels := make([]string, 0, len(Severities()))
	for _, s := range Severities() {
		labels = append(labels, s.String())
	}
	return fmt.Errorf("%w: change classes should be exactly %v", ErrInvalidSeverity, labels)
}

// SeverityOf resolves a type label to its severity class.
func (tc *TypeCatalog) SeverityOf(label string) (Severity, bool) {
	severity, ok := tc.byLabel[label]
	return severity, ok
}

// Types returns the type labels registered under a severity, sorted.
func (tc *TypeCatalog) Types(s Severity) []string {
	labels := append([]string(nil), tc.bySeverity[s]...)
	sort.Strings(labels)
	return labels
}

// ChangeGroup is the set of changes attributed to one release, together
// with the semantic version derived for it. Version is computed once at
// construction and never mutated afterward.
type ChangeGroup struct {
	Release Release
	Changes []Change
	Version semver.Version
}

// NewChangeGroup derives the group's version from the previous group's
// version and the severities present among its changes. Exactly one
// increment applies, by priority major > minor > patch; internal changes
// never trigger one. A major-class change under a private release while
// the previous major is still 0 is demoted to a minor bump: breaking
// changes cannot push a private line past 1.0.
func NewChangeGroup(release Release, changes []Change, previous semver.Version) ChangeGroup {
	var hasMajor, hasMinor, hasPatch bool
	for _, c := range changes {
		switch c.Severity {
		case SeverityMajor:
			hasMajor = true
		case SeverityMinor:
			hasMinor = true
		case SeverityPatch:
			hasPatch = true
		}
	}

	version := previous
	switch {
	case hasMajor:
		if previous.Major() == 0 && release.Visibility == VisibilityPrivate {
			version = previous.IncMinor()
		} else {
			version = previous.IncMajor()
		}
	case hasMinor:
		version = previous.IncMinor()
	case hasPatch:
		version = previous.IncPatch()
	}

	return ChangeGroup{Release: release, Changes: changes, Version: version}
}

// ZeroVersion returns the starting version 0.0.0.
func ZeroVersion() semver.Version {
	return *semver.New(0, 0, 0, "", "")
}
