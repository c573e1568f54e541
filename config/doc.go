// Package config loads haikupuzzle settings from YAML with environment
// overrides and converts them into the values the renderer consumes.
package config
