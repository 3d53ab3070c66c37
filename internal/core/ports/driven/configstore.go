package driven

// ConfigStore provides persistent application configuration.
// Keys use dot notation, e.g. "solve.word_list".
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset.
	GetString(key string) string

	// GetBool retrieves a boolean value, or false if unset.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Unset removes a value and persists the change.
	Unset(key string) error

	// Keys returns all currently set keys.
	Keys() []string
}
