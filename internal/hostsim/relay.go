package hostsim

import (
	"sync"

	"github.com/danmuck/netcode/internal/protocol"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Relay replicates each node's outgoing variable into every node's incoming
// variable, the sender included. Client values travel with the [PC] role
// prefix and host values with [PH]; composed values over the ceiling are
// dropped.
type Relay struct {
	SessionID string

	mu      sync.Mutex
	nodes   []*Node
	dropped int
	log     zerolog.Logger
}

func NewRelay(log zerolog.Logger) *Relay {
	id := uuid.NewString()
	return &Relay{
		SessionID: id,
		log:       log.With().Str("session", id).Logger(),
	}
}

// Dropped counts values rejected for exceeding the ceiling.
func (r *Relay) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// DisplayName resolves a sender identity to its node name.
func (r *Relay) DisplayName(id protocol.Identity) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nodes {
		if n.ID == id {
			return n.Name, true
		}
	}
	return "", false
}

func (r *Relay) attach(n *Node) {
	r.mu.Lock()
	r.nodes = append(r.nodes, n)
	r.mu.Unlock()
	n.Vars.OnChange(n.cfg.OutgoingVar, func() { r.forward(n) })
}

func (r *Relay) forward(from *Node) {
	wire := protocol.WithRole(from.Role, from.Vars.Get(from.cfg.OutgoingVar))
	if len(wire) > protocol.MaxMessageLen {
		r.mu.Lock()
		r.dropped++
		r.mu.Unlock()
		r.log.Warn().Str("from", from.Name).Int("len", len(wire)).Msg("relay dropped oversized message")
		return
	}

	role, framed := protocol.StripRole(wire)
	tag, body := protocol.ParseOutgoing(framed)
	sender := from.ID
	if role == protocol.RoleHost {
		sender = 0
	}
	in := protocol.EncodeIncoming(tag, sender, body)
	r.log.Trace().Str("from", from.Name).Str("wire", wire).Str("incoming", in).Msg("relay forward")

	r.mu.Lock()
	targets := append([]*Node(nil), r.nodes...)
	r.mu.Unlock()
	for _, n := range targets {
		n.Vars.Set(n.cfg.IncomingVar, in)
	}
}
