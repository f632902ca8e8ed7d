package hostsim

import (
	"strings"

	"github.com/danmuck/netcode/internal/netcode"
	"github.com/danmuck/netcode/internal/protocol"
	"github.com/rs/zerolog"
)

// NodeSpec identifies one participant of a relayed session.
type NodeSpec struct {
	ID   protocol.Identity
	Name string
	// Role is protocol.RoleHost or protocol.RoleClient.
	Role string
}

// Node is one participant's host process: its own variables, registry,
// console and files. The transport component is not loaded until the
// console is asked to load it and its artifact is present.
type Node struct {
	NodeSpec

	Vars     *Variables
	Registry *Registry
	Console  *Console
	Files    FileStore
	Game     *Game

	cfg   netcode.Config
	relay *Relay
	log   zerolog.Logger
}

// NewNode builds a participant whose console understands the load and
// install commands named in cfg.
func NewNode(relay *Relay, spec NodeSpec, cfg netcode.Config, log zerolog.Logger) *Node {
	log = log.With().Str("node", spec.Name).Logger()
	n := &Node{
		NodeSpec: spec,
		Vars:     NewVariables(),
		Registry: NewRegistry(),
		Console:  NewConsole(log),
		Files:    NewMemFiles(),
		cfg:      cfg,
		relay:    relay,
		log:      log,
	}
	if spec.Role == protocol.RoleHost {
		n.Game = HostingLAN()
	} else {
		n.Game = JoinedLAN()
	}
	n.Console.Handle(verb(cfg.LoadCommand), func(args []string) { n.handleLoad(cfg.LoadCommand) })
	n.Console.Handle(verb(cfg.InstallCommand), func(args []string) { n.InstallArtifact() })
	return n
}

// InstallArtifact makes the transport's artifact present on disk.
func (n *Node) InstallArtifact() {
	if err := n.Files.Add(n.cfg.ArtifactPath); err != nil {
		n.log.Warn().Err(err).Str("path", n.cfg.ArtifactPath).Msg("transport artifact install failed")
		return
	}
	n.log.Debug().Str("path", n.cfg.ArtifactPath).Msg("transport artifact installed")
}

// LoadTransport registers the transport's variables, marks it loaded and
// joins the relay. Loading twice is harmless.
func (n *Node) LoadTransport() {
	if n.Registry.IsLoaded(n.cfg.ComponentName) {
		return
	}
	n.Vars.Register(n.cfg.LogLevelVar, "1")
	n.Vars.Register(n.cfg.IncomingVar, "")
	n.Vars.Register(n.cfg.OutgoingVar, "")
	n.Registry.Load(n.cfg.ComponentName)
	if n.relay != nil {
		n.relay.attach(n)
	}
	n.log.Debug().Str("component", n.cfg.ComponentName).Msg("transport loaded")
}

// Host exposes the node as netcode collaborators driven by sched.
func (n *Node) Host(sched netcode.Scheduler, log *zerolog.Logger) netcode.Host {
	h := netcode.Host{
		Registry:  n.Registry,
		Files:     n.Files,
		Commands:  n.Console,
		Scheduler: sched,
		Vars:      n.Vars,
		Game:      n.Game,
		Log:       log,
	}
	if n.relay != nil {
		h.Names = n.relay
	}
	return h
}

func (n *Node) handleLoad(line string) {
	if !n.Files.Exists(n.cfg.ArtifactPath) {
		n.log.Warn().Str("command", line).Msg("transport artifact missing")
		return
	}
	n.LoadTransport()
}

// verb returns the first word of a console line.
func verb(line string) string {
	v, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	return v
}
