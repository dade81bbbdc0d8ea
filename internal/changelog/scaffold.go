package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// generatedComment is the comment of the change seeded into every new
// document, recording that the changelog itself was generated.
const generatedComment = "changelog is generated."

// defaultTypeDefinitions is the standard change-type catalog written by
// init. The "!!!forced ..." labels exist so a bump can be forced without
// inventing a new type.
func defaultTypeDefinitions() map[string][]string {
	return map[string][]string{
		SeverityMajor.String():    {"specification change", "!!!forced major update"},
		SeverityMinor.String():    {"new feature", "!!!forced minor update"},
		SeverityPatch.String():    {"bug fix", "performance improvement", "!!!forced patch update"},
		SeverityInternal.String(): {"refactoring", "others"},
	}
}

// InitialDocument returns the scaffold content for a new changelog
// document: the standard type catalog, the given UTC offset, the default
// datetime layout, and one internal change dated now.
func InitialDocument(utcOffsetHours int, now time.Time, format DocFormat) ([]byte, error) {
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", utcOffsetHours), utcOffsetHours*60*60)
	raw := rawDocument{
		Changes: map[string][]map[string]string{
			now.In(zone).Format(DefaultTimeLayout): {{"others": generatedComment}},
		},
		ChangeTypes: defaultTypeDefinitions(),
		UTCOffset:   &utcOffsetHours,
		TimeLayout:  DefaultTimeLayout,
	}

	if format == FormatYAML {
		return yaml.Marshal(raw)
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// InitFile writes a new scaffold document at path, refusing to overwrite
// an existing file. The encoding follows the file extension. A present
// target surfaces as fs.ErrExist via errors.Is.
func InitFile(path string, utcOffsetHours int, now time.Time) error {
	data, err := InitialDocument(utcOffsetHours, now, FormatForPath(path))
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
