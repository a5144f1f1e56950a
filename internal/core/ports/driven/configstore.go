package driven

// ConfigStore holds the user's settings and price overrides under
// dot-notation keys such as "pricing.extra.garden". Set persists at once;
// there is no separate save step.
type ConfigStore interface {
	// Get returns the raw value and whether key is present.
	Get(key string) (any, bool)

	// GetString returns "" when key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 when key is missing or not numeric.
	GetInt(key string) int

	Set(key string, value any) error
}
