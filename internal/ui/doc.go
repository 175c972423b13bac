// Package ui renders command lifecycle events for human-readable console output.
package ui
