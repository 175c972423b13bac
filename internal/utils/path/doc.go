// Package pathutils resolves user supplied filesystem paths into absolute workspace locations.
package pathutils
