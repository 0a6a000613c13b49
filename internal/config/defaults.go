package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog":      "CHANGELOG.md",
		"plain":          false,
		"remote_url":     "",
		"remote_timeout": 10, // seconds
	}
}
