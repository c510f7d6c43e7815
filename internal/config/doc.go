// Package config defines the application configuration structure and
// loading logic. Configuration comes from environment variables with the
// USUARIO_ prefix and an optional config.yaml, validated on load.
package config
