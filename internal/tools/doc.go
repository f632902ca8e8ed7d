// Package tools provides runtime helpers shared by host adapters.
//
// Ownership boundary:
// - command execution helpers
// - console line splitting
package tools
