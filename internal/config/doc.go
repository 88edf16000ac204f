// Package config loads, merges and validates runtime configuration.
//
// Values come from environment variables, command-line flags and an
// optional JSON file, merged in that priority order (a source earlier in
// the list wins for any field it sets). Defaults are applied after the
// merge and the result is validated before use.
//
// [GetStructuredConfig] builds the server configuration; [GetClientConfig]
// builds the terminal client's.
package config
