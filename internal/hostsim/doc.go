// Package hostsim is an in-memory host for netcode managers.
//
// It provides every collaborator a Manager needs (shared variables,
// component registry, console, scheduler, files, game state) plus a Relay
// that replicates outgoing values between participants the way the
// transport component does on a LAN session.
package hostsim
