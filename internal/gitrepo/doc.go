// Package gitrepo derives workspace names from git remote references and
// inspects local working copies through the git command line.
package gitrepo
