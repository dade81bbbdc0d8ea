package config

// DefaultFile is the changelog document path used when neither flag,
// environment, nor config file names one.
const DefaultFile = "changelog.json"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":             DefaultFile,
		"utc_offset_hours": 0,
		"plain":            false,
	}
}
