package netcode

import (
	"fmt"
	"time"

	"github.com/danmuck/netcode/internal/protocol"
	"github.com/rs/zerolog"
)

// Component is one entry of the host's loaded-plugin list.
type Component struct {
	Name string
}

// Registry enumerates the components currently loaded by the host.
type Registry interface {
	LoadedComponents() []Component
}

// FileChecker reports whether an installable artifact exists.
type FileChecker interface {
	Exists(path string) bool
}

// Commander issues host console commands. Results are not observed.
type Commander interface {
	RunCommand(line string)
}

// Scheduler runs fn once after delay on the host event thread.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Variables is the shared-variable store replicated by the transport.
// OnChange callbacks fire on mutation only, never on subscription.
type Variables interface {
	Get(name string) string
	Set(name, value string)
	OnChange(name string, fn func())
	Exists(name string) bool
}

// NameResolver turns a sender identity into a display name for diagnostics.
type NameResolver interface {
	DisplayName(id protocol.Identity) (string, bool)
}

// Handler receives bodies addressed to the local plugin.
type Handler func(body string, sender protocol.Identity)

// Host bundles the collaborators a Manager needs from its process.
// Game, Names and Log are optional.
type Host struct {
	Registry  Registry
	Files     FileChecker
	Commands  Commander
	Scheduler Scheduler
	Vars      Variables
	Game      Game
	Names     NameResolver
	Log       *zerolog.Logger
}

func (h Host) validate() error {
	switch {
	case h.Registry == nil:
		return fmt.Errorf("%w: registry", ErrMissingCollaborator)
	case h.Files == nil:
		return fmt.Errorf("%w: files", ErrMissingCollaborator)
	case h.Commands == nil:
		return fmt.Errorf("%w: commands", ErrMissingCollaborator)
	case h.Scheduler == nil:
		return fmt.Errorf("%w: scheduler", ErrMissingCollaborator)
	case h.Vars == nil:
		return fmt.Errorf("%w: variables", ErrMissingCollaborator)
	}
	return nil
}
