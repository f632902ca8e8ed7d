// Package netcode lets a plugin exchange short text messages with the same
// plugin on other participants of a shared session.
//
// The only transport is a replicated component that exposes three shared
// variables: a log level, an incoming message slot and an outgoing message
// slot. A Manager waits for that component to load (installing or loading it
// on demand), validates the variables, then routes incoming values tagged
// for the local plugin to its Handler.
//
// Ownership boundary:
// - load detection and bounded retry
// - contract validation of the shared variables
// - send/receive routing by plugin tag
// - match authority queries
//
// All entry points are expected to run on the host's single event thread.
// Nothing in this package locks.
package netcode
