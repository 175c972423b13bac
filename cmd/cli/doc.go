// Package cli wires the wsboot command line application: configuration
// loading, logger construction, and the workspace bootstrap root command.
package cli
