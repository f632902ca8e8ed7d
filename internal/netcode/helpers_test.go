package netcode_test

import (
	"bytes"
	"testing"

	"github.com/danmuck/netcode/internal/hostsim"
	"github.com/danmuck/netcode/internal/netcode"
	"github.com/danmuck/netcode/internal/protocol"
	"github.com/rs/zerolog"
)

type received struct {
	body   string
	sender protocol.Identity
}

type harness struct {
	node  *hostsim.Node
	sched *hostsim.ManualScheduler
	logs  *bytes.Buffer
	got   []received
}

// newHarness builds a node whose console understands the default load and
// install commands.
func newHarness(t *testing.T) *harness {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)
	cfg := netcode.DefaultConfig("Chat")
	return &harness{
		node:  hostsim.NewNode(nil, hostsim.NodeSpec{ID: 1, Name: "local", Role: protocol.RoleHost}, cfg, logger),
		sched: hostsim.NewManualScheduler(),
		logs:  logs,
	}
}

func (h *harness) handler(body string, sender protocol.Identity) {
	h.got = append(h.got, received{body: body, sender: sender})
}

func (h *harness) host() netcode.Host {
	logger := zerolog.New(h.logs)
	return h.node.Host(h.sched, &logger)
}

func (h *harness) start(t *testing.T, cfg netcode.Config) *netcode.Manager {
	t.Helper()
	m, err := netcode.New(cfg, h.host(), h.handler)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func readyManager(t *testing.T, tag string) (*netcode.Manager, *harness) {
	t.Helper()
	cfg := netcode.DefaultConfig(tag)
	h := newHarness(t)
	h.node.InstallArtifact()
	h.node.LoadTransport()
	m := h.start(t, cfg)
	if m.State().Phase != netcode.Ready {
		t.Fatalf("expected ready manager, got %s", m.State())
	}
	return m, h
}

func bytesContains(b []byte, sub string) bool {
	return bytes.Contains(b, []byte(sub))
}
