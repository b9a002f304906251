// Package config holds the CLI's file configuration: registry access,
// cache behaviour and log output. Loading follows a fixed sequence of
// parse, defaults, validate; environment overrides slot in before the
// final validation step.
package config
