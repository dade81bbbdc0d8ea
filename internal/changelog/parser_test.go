package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentValidation(t *testing.T) {
	tests := map[string]struct {
		document string
		wantErr  error
	}{
		"minimum valid format": {
			document: `{
				"changes": {},
				"change types": { "major": [], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
		},
		"invalid change class key": {
			document: `{
				"changes": {},
				"change types": { "major": [], "minor": [], "subminor": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrInvalidSeverity,
		},
		"invalid change datetime": {
			document: `{
				"changes": {
					"2023-08-30 0:00:00": [
						{ "valid": "but datetime is not valid" }
					]
				},
				"change types": { "major": [ "valid" ], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrInvalidTimestamp,
		},
		"invalid release datetime": {
			document: `{
				"releases": {
					"someday": { "public": "" }
				},
				"changes": {},
				"change types": { "major": [], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9
			}`,
			wantErr: ErrInvalidTimestamp,
		},
		"invalid release class": {
			document: `{
				"releases": {
					"2023-08-31 0:00": { "external": "invalid release class" }
				},
				"changes": {
					"2023-08-30 0:00": [ { "valid": "" } ]
				},
				"change types": { "major": [ "valid" ], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrInvalidVisibility,
		},
		"duplicated change type": {
			document: `{
				"changes": {},
				"change types": { "major": [ "duplicated" ], "minor": [ "duplicated" ], "patch": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrInvalidChangeType,
		},
		"undeclared change type": {
			document: `{
				"changes": {
					"2023-08-30 00:00": [
						{ "invalid": "this is invalid." }
					]
				},
				"change types": { "major": [ "valid" ], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrInvalidChangeType,
		},
		"trailing comma is a syntax error": {
			document: `{
				"changes": {},
				"change types": { "major": [], "minor": [], "patch": [], "internal": [], },
				"utc offset hours": 9,
				"datetime format": "2006-01-02 15:04",
			}`,
			wantErr: ErrDocumentSyntax,
		},
		"missing utc offset hours": {
			document: `{
				"changes": {},
				"change types": { "major": [], "minor": [], "patch": [], "internal": [] },
				"datetime format": "2006-01-02 15:04"
			}`,
			wantErr: ErrMissingKey,
		},
		"missing change types": {
			document: `{
				"changes": {},
				"utc offset hours": 9
			}`,
			wantErr: ErrMissingKey,
		},
		"missing changes": {
			document: `{
				"change types": { "major": [], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9
			}`,
			wantErr: ErrMissingKey,
		},
		"release definition with two classes": {
			document: `{
				"releases": {
					"2023-08-31 00:00": { "public": "a", "private": "b" }
				},
				"changes": {},
				"change types": { "major": [], "minor": [], "patch": [], "internal": [] },
				"utc offset hours": 9
			}`,
			wantErr: ErrDocumentSyntax,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tc.document), FormatJSON)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, IsFormatError(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseDocumentRecords(t *testing.T) {
	document := `{
		"releases": {
			"2023-08-31 00:00": { "public": "first release" },
			"2023-09-30 00:00": { "private": null }
		},
		"changes": {
			"2023-08-30 00:00": [
				{ "new feature": "added parsing" },
				{ "bug fix": "fixed a crash" }
			]
		},
		"change types": {
			"major": [ "specification change" ],
			"minor": [ "new feature" ],
			"patch": [ "bug fix" ],
			"internal": [ "others" ]
		},
		"utc offset hours": 9
	}`

	doc, err := ParseDocument([]byte(document), FormatJSON)
	require.NoError(t, err)

	// Synthetic final release plus the two declared ones.
	require.Len(t, doc.Releases, 3)
	synthetic := doc.Releases[0]
	assert.Equal(t, 9999, synthetic.Timestamp.Year())
	assert.Equal(t, VisibilityPrivate, synthetic.Visibility)

	first := doc.Releases[1]
	assert.Equal(t, VisibilityPublic, first.Visibility)
	assert.Equal(t, "first release", first.Comment)
	assert.Equal(t, "2023-08-31T00:00:00+09:00", first.Timestamp.Format(time.RFC3339))

	// Absent (null) release comment decodes as empty string.
	assert.Equal(t, "", doc.Releases[2].Comment)

	// One timestamp key carrying two change entries yields two changes.
	require.Len(t, doc.Changes, 2)
	assert.Equal(t, "new feature", doc.Changes[0].Type)
	assert.Equal(t, SeverityMinor, doc.Changes[0].Severity)
	assert.Equal(t, "added parsing", doc.Changes[0].Comment)
	assert.Equal(t, "bug fix", doc.Changes[1].Type)
	assert.Equal(t, SeverityPatch, doc.Changes[1].Severity)
	assert.Equal(t, doc.Changes[0].Timestamp, doc.Changes[1].Timestamp)
}

func TestParseDocumentDefaultLayout(t *testing.T) {
	document := `{
		"changes": {
			"2023-08-30 12:34": [ { "others": "" } ]
		},
		"change types": { "major": [], "minor": [], "patch": [], "internal": [ "others" ] },
		"utc offset hours": 0
	}`

	doc, err := ParseDocument([]byte(document), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeLayout, doc.Layout)
	assert.Equal(t, "2023-08-30T12:34:00Z", doc.Changes[0].Timestamp.Format(time.RFC3339))
}

func TestParseDocumentCustomLayout(t *testing.T) {
	document := `{
		"changes": {
			"30.08.2023": [ { "others": "" } ]
		},
		"change types": { "major": [], "minor": [], "patch": [], "internal": [ "others" ] },
		"utc offset hours": 0,
		"datetime format": "02.01.2006"
	}`

	doc, err := ParseDocument([]byte(document), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "2023-08-30T00:00:00Z", doc.Changes[0].Timestamp.Format(time.RFC3339))
}

func TestParseDocumentYAML(t *testing.T) {
	document := `
releases:
  "2023-08-31 00:00":
    public: first release
changes:
  "2023-08-30 00:00":
    - new feature: added parsing
change types:
  major: [specification change]
  minor: [new feature]
  patch: [bug fix]
  internal: [others]
utc offset hours: 9
`

	doc, err := ParseDocument([]byte(document), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Releases, 2)
	require.Len(t, doc.Changes, 1)
	assert.Equal(t, SeverityMinor, doc.Changes[0].Severity)
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]struct {
		path     string
		expected DocFormat
	}{
		"json":           {path: "changelog.json", expected: FormatJSON},
		"yaml":           {path: "changelog.yaml", expected: FormatYAML},
		"yml":            {path: "changelog.yml", expected: FormatYAML},
		"uppercase yaml": {path: "CHANGELOG.YAML", expected: FormatYAML},
		"no extension":   {path: "changelog", expected: FormatJSON},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatForPath(tc.path))
		})
	}
}
