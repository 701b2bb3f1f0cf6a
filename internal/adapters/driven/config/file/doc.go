// Package file provides a TOML-backed implementation of the config store
// port. Configuration lives in a single user-editable file and nested TOML
// tables are flattened to dot-notation keys (api.url, defaults.dataset).
package file
