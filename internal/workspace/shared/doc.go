// Package shared declares the collaborator contracts and outcome types used
// across workspace bootstrapping components.
package shared
