package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/netcode/internal/logging"
	"github.com/danmuck/netcode/internal/netcode"
	"github.com/rs/zerolog"
)

// outbound is one message a participant sends once every manager is ready.
type outbound struct {
	From string
	Body string
}

type simConfig struct {
	Netcode      netcode.Config
	Clients      int
	Preinstalled bool
	ExecUnknown  bool
	// HostRoot switches artifact checks to the real filesystem when set.
	HostRoot       string
	LogLevel       zerolog.Level
	TransportLevel int
	Duration       time.Duration
	Messages       []outbound
}

type fileMessage struct {
	From string `toml:"from"`
	Body string `toml:"body"`
}

type fileConfig struct {
	PluginTag      string        `toml:"plugin_tag"`
	Clients        int           `toml:"clients"`
	Preinstalled   bool          `toml:"preinstalled"`
	ExecUnknown    bool          `toml:"exec_unknown_commands"`
	MaxAttempts    int           `toml:"max_attempts"`
	RetryDelay     string        `toml:"retry_delay"`
	RetryDelayMS   int64         `toml:"retry_delay_ms"`
	RetryMult      float64       `toml:"retry_multiplier"`
	RetryMaxDelay  string        `toml:"retry_max_delay"`
	RetryJitter    bool          `toml:"retry_jitter"`
	HostRoot       string        `toml:"host_root"`
	LoadCommand    string        `toml:"load_command"`
	InstallCommand string        `toml:"install_command"`
	LogLevel       string        `toml:"log_level"`
	TransportLevel int           `toml:"transport_log_level"`
	Duration       string        `toml:"duration"`
	Messages       []fileMessage `toml:"messages"`
}

func defaultSimConfig() simConfig {
	return simConfig{
		Netcode:        netcode.DefaultConfig("Chat"),
		Clients:        2,
		LogLevel:       zerolog.InfoLevel,
		TransportLevel: 1,
		Duration:       10 * time.Second,
	}
}

func loadSimConfig(path string) (simConfig, error) {
	cfg := defaultSimConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return simConfig{}, fmt.Errorf("load netcodectl config: %w", err)
	}

	if meta.IsDefined("plugin_tag") {
		cfg.Netcode.PluginTag = strings.TrimSpace(raw.PluginTag)
	}
	if meta.IsDefined("clients") {
		cfg.Clients = raw.Clients
	}
	if meta.IsDefined("preinstalled") {
		cfg.Preinstalled = raw.Preinstalled
	}
	if meta.IsDefined("exec_unknown_commands") {
		cfg.ExecUnknown = raw.ExecUnknown
	}
	if meta.IsDefined("max_attempts") {
		cfg.Netcode.MaxAttempts = raw.MaxAttempts
	}
	if meta.IsDefined("retry_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RetryDelay))
		if err != nil {
			return simConfig{}, fmt.Errorf("parse retry_delay: %w", err)
		}
		cfg.Netcode.Retry.Delay = d
	}
	if meta.IsDefined("retry_delay_ms") {
		cfg.Netcode.Retry.Delay = time.Duration(raw.RetryDelayMS) * time.Millisecond
	}
	if meta.IsDefined("retry_multiplier") {
		cfg.Netcode.Retry.Multiplier = raw.RetryMult
	}
	if meta.IsDefined("retry_max_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RetryMaxDelay))
		if err != nil {
			return simConfig{}, fmt.Errorf("parse retry_max_delay: %w", err)
		}
		cfg.Netcode.Retry.MaxDelay = d
	}
	if meta.IsDefined("retry_jitter") {
		cfg.Netcode.Retry.Jitter = raw.RetryJitter
	}
	if meta.IsDefined("host_root") {
		cfg.HostRoot = strings.TrimSpace(raw.HostRoot)
	}
	if meta.IsDefined("load_command") {
		cfg.Netcode.LoadCommand = strings.TrimSpace(raw.LoadCommand)
	}
	if meta.IsDefined("install_command") {
		cfg.Netcode.InstallCommand = strings.TrimSpace(raw.InstallCommand)
	}
	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return simConfig{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("transport_log_level") {
		cfg.TransportLevel = raw.TransportLevel
	}
	if meta.IsDefined("duration") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Duration))
		if err != nil {
			return simConfig{}, fmt.Errorf("parse duration: %w", err)
		}
		cfg.Duration = d
	}
	if meta.IsDefined("messages") {
		msgs, err := parseMessages(raw.Messages)
		if err != nil {
			return simConfig{}, err
		}
		cfg.Messages = msgs
	}

	return cfg, cfg.validate()
}

func parseMessages(in []fileMessage) ([]outbound, error) {
	out := make([]outbound, 0, len(in))
	for i, m := range in {
		from := strings.TrimSpace(m.From)
		if from == "" {
			return nil, fmt.Errorf("messages[%d]: from is required", i)
		}
		out = append(out, outbound{From: from, Body: m.Body})
	}
	return out, nil
}

// parseSendFlag reads "from:body" as given to --send.
func parseSendFlag(v string) (outbound, error) {
	from, body, ok := strings.Cut(v, ":")
	from = strings.TrimSpace(from)
	if !ok || from == "" {
		return outbound{}, fmt.Errorf("invalid --send %q: want from:body", v)
	}
	return outbound{From: from, Body: body}, nil
}

func (c simConfig) validate() error {
	if c.Clients < 0 {
		return fmt.Errorf("clients must not be negative, got %d", c.Clients)
	}
	if c.Netcode.Retry.Multiplier < 0 {
		return fmt.Errorf("retry multiplier must not be negative, got %v", c.Netcode.Retry.Multiplier)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	return c.Netcode.Validate()
}
