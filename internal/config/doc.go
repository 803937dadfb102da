// Package config loads and validates routewalk.yaml project
// configuration, with environment variable overrides.
package config
