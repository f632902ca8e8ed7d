// Package protocol owns the text wire contract carried by the shared
// message variables.
//
// Ownership boundary:
// - outgoing framing: [tag]body
// - incoming parsing: [tag][sender]body
// - transport role prefixes and the composed length ceiling
//
// Fields are delimited by brackets and are never escaped. Tags must not
// contain '[' or ']'; bodies are carried verbatim.
package protocol
