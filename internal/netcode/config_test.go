package netcode

import (
	"errors"
	"testing"
	"time"

	"github.com/danmuck/netcode/internal/testutil/testlog"
)

func TestConfigValidate(t *testing.T) {
	testlog.Start(t)
	if err := DefaultConfig("Chat").Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	mutate := []func(*Config){
		func(c *Config) { c.PluginTag = "" },
		func(c *Config) { c.PluginTag = "a]b" },
		func(c *Config) { c.ComponentName = " " },
		func(c *Config) { c.MaxAttempts = 0 },
		func(c *Config) { c.Retry.Delay = -time.Second },
		func(c *Config) { c.IncomingVar = "" },
	}
	for i, fn := range mutate {
		cfg := DefaultConfig("Chat")
		fn(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestNextRetryDelay(t *testing.T) {
	testlog.Start(t)
	fixed := DefaultConfig("Chat").Retry
	for attempt := 1; attempt <= 20; attempt++ {
		if d := NextRetryDelay(fixed, attempt, nil); d != 2*time.Second {
			t.Fatalf("attempt %d: expected 2s, got %v", attempt, d)
		}
	}

	growing := RetryConfig{Delay: time.Second, Multiplier: 2, MaxDelay: 5 * time.Second}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second}
	for i, w := range want {
		if d := NextRetryDelay(growing, i+1, nil); d != w {
			t.Fatalf("attempt %d: got %v want %v", i+1, d, w)
		}
	}

	jitter := RetryConfig{Delay: time.Second, Multiplier: 1, Jitter: true}
	if d := NextRetryDelay(jitter, 2, nil); d != 500*time.Millisecond {
		t.Fatalf("expected half delay without rng, got %v", d)
	}
}

func TestParseVerbosity(t *testing.T) {
	testlog.Start(t)
	cases := map[string]struct {
		v  int
		ok bool
	}{
		"":     {0, false},
		"2":    {2, true},
		" 3 ":  {3, true},
		"1.0":  {1, true},
		"loud": {0, false},
	}
	for raw, want := range cases {
		v, ok := parseVerbosity(raw)
		if v != want.v || ok != want.ok {
			t.Fatalf("parse %q: got=(%d,%v) want=(%d,%v)", raw, v, ok, want.v, want.ok)
		}
	}
}

func TestReadinessStateString(t *testing.T) {
	testlog.Start(t)
	if s := (ReadinessState{Phase: Probing, Attempt: 4}).String(); s != "probing(4)" {
		t.Fatalf("unexpected string: %q", s)
	}
	if s := (ReadinessState{Phase: GaveUp, Attempt: 20}).String(); s != "gave_up" {
		t.Fatalf("unexpected string: %q", s)
	}
	if !Incompatible.Terminal() || Probing.Terminal() {
		t.Fatalf("unexpected terminal classification")
	}
}
