package netcode

import (
	"fmt"

	"github.com/danmuck/netcode/internal/protocol"
	"github.com/rs/zerolog/log"
)

// Manager routes messages for one plugin over the shared transport.
type Manager struct {
	cfg      Config
	host     Host
	handler  Handler
	log      *tieredLogger
	detector *Detector
}

// New validates its inputs and starts load detection immediately.
func New(cfg Config, host Host, handler Handler) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := host.validate(); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: handler is required", ErrInvalidConfig)
	}

	base := log.Logger
	if host.Log != nil {
		base = *host.Log
	}
	m := &Manager{
		cfg:     cfg,
		host:    host,
		handler: handler,
		log:     &tieredLogger{base: base.With().Str("plugin", cfg.PluginTag).Logger()},
	}
	m.detector = newDetector(cfg, host, m.log, m.OnIncomingChanged)
	m.detector.Start(true)
	return m, nil
}

// State returns the detector's readiness snapshot.
func (m *Manager) State() ReadinessState {
	return m.detector.State()
}

// Err explains why the manager stopped trying to reach the transport.
func (m *Manager) Err() error {
	return m.detector.Err()
}

// Reload restarts detection with a fresh attempt budget.
func (m *Manager) Reload() {
	m.detector.Start(true)
}

// MaxBodyLen is the longest body Send accepts.
func (m *Manager) MaxBodyLen() int {
	return protocol.MaxBodyLen(m.cfg.PluginTag, protocol.RolePrefixLen)
}

// Authority resolves the local authority from the host's current game state.
func (m *Manager) Authority() Authority {
	return ResolveAuthority(m.host.Game)
}

// Send writes body to the outgoing variable tagged for this plugin. It does
// not wait for delivery. Errors are logged as well as returned, so callers
// may ignore them.
func (m *Manager) Send(body string) error {
	if !m.checkReady("Send") {
		return ErrNotReady
	}
	out, err := protocol.EncodeReserved(m.cfg.PluginTag, body, protocol.RolePrefixLen)
	if err != nil {
		m.log.tier(TierA).Err(err).Int("max_body", m.MaxBodyLen()).Msg("message not sent")
		return err
	}

	m.log.tier(TierC).Str("wire", out).Msg("sending message")
	m.host.Vars.Set(m.cfg.OutgoingVar, out)
	return nil
}

// OnIncomingChanged handles a change of the incoming variable.
func (m *Manager) OnIncomingChanged() {
	if !m.checkReady("OnIncomingChanged") {
		return
	}
	raw := m.host.Vars.Get(m.cfg.IncomingVar)
	m.log.tier(TierC).Str("wire", raw).Msg("receiving message")

	msg := protocol.Decode(raw)
	if msg.Tag != m.cfg.PluginTag {
		return
	}
	m.logParsed(msg)
	m.handler(msg.Body, msg.Sender)
}

func (m *Manager) checkReady(op string) bool {
	if m.detector.State().Phase == Ready {
		return true
	}
	m.log.raw().
		Str("op", op).
		Str("state", m.detector.State().String()).
		Msgf("netcode function (%s) failed. %s is not loaded.", op, m.cfg.ComponentName)
	return false
}

func (m *Manager) logParsed(msg protocol.ParsedMessage) {
	ev := m.log.tier(TierC)
	if ev == nil {
		return
	}
	ev.Str("tag", msg.Tag).
		Str("sender", m.senderName(msg.Sender)).
		Str("body", msg.Body).
		Msg("parsed message")
}

func (m *Manager) senderName(id protocol.Identity) string {
	if id.IsZero() || m.host.Names == nil {
		return "NULL"
	}
	name, ok := m.host.Names.DisplayName(id)
	if !ok || name == "" {
		return "NULL"
	}
	return name
}
