// Package utils hosts shared infrastructure for the wsboot CLI: logger
// construction, configuration loading, and command context helpers.
package utils
