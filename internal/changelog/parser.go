package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeLayout is the timestamp layout assumed when a document does
// not carry a "datetime format" key.
const DefaultTimeLayout = "2006-01-02 15:04"

// Document keys.
const (
	keyReleases    = "releases"
	keyChanges     = "changes"
	keyChangeTypes = "change types"
	keyUTCOffset   = "utc offset hours"
	keyTimeLayout  = "datetime format"
)

// DocFormat selects the document encoding.
type DocFormat int

const (
	FormatJSON DocFormat = iota
	FormatYAML
)

// FormatForPath returns the encoding implied by the file extension.
// Anything that is not .yml/.yaml is treated as JSON.
func FormatForPath(path string) DocFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	}
	return FormatJSON
}

// rawDocument mirrors the document schema. Timestamps are map keys, so the
// two timestamp-keyed sections stay dynamic maps rather than structs.
// UTCOffset is a pointer to distinguish an absent key from a zero offset.
type rawDocument struct {
	Changes     map[string][]map[string]string `json:"changes" yaml:"changes"`
	ChangeTypes map[string][]string            `json:"change types" yaml:"change types"`
	Releases    map[string]map[string]string   `json:"releases,omitempty" yaml:"releases,omitempty"`
	UTCOffset   *int                           `json:"utc offset hours" yaml:"utc offset hours"`
	TimeLayout  string                         `json:"datetime format,omitempty" yaml:"datetime format,omitempty"`
}

// Document is the validated, parsed form of a changelog document. Releases
// always contains the synthetic final private release, so Build never sees
// an empty release list for a parsed document.
type Document struct {
	Releases []Release
	Changes  []Change
	Catalog  *TypeCatalog
	Layout   string
	Location *time.Location
}

// LoadFile reads and parses a changelog document, choosing the encoding
// from the file extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog file: %w", err)
	}
	return ParseDocument(data, FormatForPath(path))
}

// ParseDocument decodes and validates a changelog document. All validation
// happens here, eagerly, before any version computation: syntax, required
// keys, timestamp layouts, class labels, and the change-type catalog.
func ParseDocument(data []byte, format DocFormat) (*Document, error) {
	var raw rawDocument
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentSyntax, err)
	}

	layout := raw.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}

	if raw.UTCOffset == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, keyUTCOffset)
	}
	location := time.FixedZone(fmt.Sprintf("UTC%+d", *raw.UTCOffset), *raw.UTCOffset*60*60)

	releases, err := parseReleases(raw.Releases, layout, location)
	if err != nil {
		return nil, err
	}

	if raw.ChangeTypes == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, keyChangeTypes)
	}
	catalog, err := NewTypeCatalog(raw.ChangeTypes)
	if err != nil {
		return nil, err
	}

	if raw.Changes == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, keyChanges)
	}
	changes, err := parseChanges(raw.Changes, catalog, layout, location)
	if err != nil {
		return nil, err
	}

	return &Document{
		Releases: releases,
		Changes:  changes,
		Catalog:  catalog,
		Layout:   layout,
		Location: location,
	}, nil
}

// parseReleases translates the releases section, prepending the synthetic
// final release so every change has a containing release even when the
// document declares none.
func parseReleases(raw map[string]map[string]string, layout string, loc *time.Location) ([]Release, error) {
	releases := []Release{syntheticRelease(loc)}

	for _, key := range sortedKeys(raw) {
		timestamp, err := parseTimestamp("release", key, layout, loc)
		if err != nil {
			return nil, err
		}
		label, comment, err := singleEntry(raw[key], "release definition", key)
		if err != nil {
			return nil, err
		}
		visibility, err := ParseVisibility(label)
		if err != nil {
			return nil, err
		}
		releases = append(releases, Release{Timestamp: timestamp, Visibility: visibility, Comment: comment})
	}
	return releases, nil
}

// parseChanges translates the changes section. A timestamp key may carry
// multiple change entries; each becomes its own Change.
func parseChanges(raw map[string][]map[string]string, catalog *TypeCatalog, layout string, loc *time.Location) ([]Change, error) {
	var changes []Change
	for _, key := range sortedKeys(raw) {
		timestamp, err := parseTimestamp("change", key, layout, loc)
		if err != nil {
			return nil, err
		}
		for _, definition := range raw[key] {
			label, comment, err := singleEntry(definition, "change entry", key)
			if err != nil {
				return nil, err
			}
			severity, ok := catalog.SeverityOf(label)
			if !ok {
				return nil, fmt.Errorf("%w: change type %q is not declared under any change class", ErrInvalidChangeType, label)
			}
			changes = append(changes, Change{Timestamp: timestamp, Severity: severity, Type: label, Comment: comment})
		}
	}
	return changes, nil
}

// syntheticRelease is the sentinel final release: maximum representable
// timestamp, private. It guarantees the partition in Build is total.
func syntheticRelease(loc *time.Location) Release {
	return Release{
		Timestamp:  time.Date(9999, time.December, 31, 23, 59, 59, 0, loc),
		Visibility: VisibilityPrivate,
	}
}

func parseTimestamp(section, value, layout string, loc *time.Location) (time.Time, error) {
	timestamp, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s datetime %q does not match layout %q", ErrInvalidTimestamp, section, value, layout)
	}
	return timestamp, nil
}

// singleEntry unpacks a one-key map (label → comment). The schema requires
// exactly one entry per definition.
func singleEntry(definition map[string]string, what, timestampKey string) (label, comment string, err error) {
	if len(definition) != 1 {
		return "", "", fmt.Errorf("%w: %s under %q must hold exactly one entry", ErrDocumentSyntax, what, timestampKey)
	}
	for label, comment = range definition {
	}
	return label, comment, nil
}

// sortedKeys returns map keys in lexicographic order. Map iteration order
// is randomized in Go; sorting the timestamp-string keys keeps the build
// deterministic and gives equal-timestamp entries a stable tie-break.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
