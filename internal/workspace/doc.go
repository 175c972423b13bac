// Package workspace bootstraps a local development workspace by cloning,
// updating, and checking out a configured set of git repositories inside a
// target directory.
package workspace
