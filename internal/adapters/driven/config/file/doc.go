// Package file provides filesystem-backed implementations of driven ports.
//
// ConfigStore keeps settings and price overrides in a TOML file, by default
// ~/.stylequote/config.toml. Keys are addressed in dot notation
// ("enquiry.recipient") and written back as nested TOML tables.
package file
