// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
// Sources are merged with mergo in priority order (env, then flags, then
// JSON for fields still unset), defaults are applied last, and the result
// is validated before use.
package config
