// netcodectl runs a LAN session on the in-memory host: one host and a number
// of clients, each with its own Manager, exchanging the configured messages
// through the relay.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danmuck/netcode/internal/hostsim"
	"github.com/danmuck/netcode/internal/logging"
	"github.com/danmuck/netcode/internal/netcode"
	"github.com/danmuck/netcode/internal/protocol"
	"github.com/danmuck/netcode/internal/tools"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "netcodectl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("netcodectl", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to a TOML config file")
	tag := flagSet.String("tag", "", "plugin tag shared by every participant")
	clients := flagSet.Int("clients", 0, "number of clients joining the host")
	sends := flagSet.StringArray("send", nil, "message to send once ready, as from:body (repeatable)")
	duration := flagSet.Duration("duration", 0, "how long to keep the session running")
	preinstalled := flagSet.Bool("preinstalled", false, "start with the transport artifact already installed")
	hostRoot := flagSet.String("host-root", "", "check and install the transport artifact under this directory")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logging.ConfigureRuntime()

	cfg := defaultSimConfig()
	if *configPath != "" {
		loaded, err := loadSimConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded netcodectl config")
	}
	if flagSet.Changed("tag") {
		cfg.Netcode.PluginTag = *tag
	}
	if flagSet.Changed("clients") {
		cfg.Clients = *clients
	}
	if flagSet.Changed("duration") {
		cfg.Duration = *duration
	}
	if flagSet.Changed("preinstalled") {
		cfg.Preinstalled = *preinstalled
	}
	if flagSet.Changed("host-root") {
		cfg.HostRoot = *hostRoot
	}
	for _, v := range *sends {
		msg, err := parseSendFlag(v)
		if err != nil {
			return err
		}
		cfg.Messages = append(cfg.Messages, msg)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return simulate(ctx, cfg)
}

type participant struct {
	node    *hostsim.Node
	manager *netcode.Manager
}

func simulate(ctx context.Context, cfg simConfig) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	relay := hostsim.NewRelay(log.Logger)
	loop := hostsim.NewLoop(256)
	go func() { _ = loop.Run(ctx) }()
	log.Info().Str("session", relay.SessionID).Str("tag", cfg.Netcode.PluginTag).Int("clients", cfg.Clients).Msg("session starting")

	specs := []hostsim.NodeSpec{{ID: 1000, Name: "host", Role: protocol.RoleHost}}
	for i := 1; i <= cfg.Clients; i++ {
		specs = append(specs, hostsim.NodeSpec{
			ID:   protocol.Identity(1000 + i),
			Name: "client" + strconv.Itoa(i),
			Role: protocol.RoleClient,
		})
	}

	byName := make(map[string]participant, len(specs))
	var startErr error
	err := loop.Do(ctx, func() {
		for _, spec := range specs {
			p, err := join(relay, loop, spec, cfg)
			if err != nil {
				startErr = err
				return
			}
			byName[spec.Name] = p
		}
	})
	if err != nil {
		return err
	}
	if startErr != nil {
		return startErr
	}

	if err := waitReady(ctx, loop, byName); err != nil {
		return err
	}
	log.Info().Msg("all participants ready")

	for _, msg := range cfg.Messages {
		p, ok := byName[msg.From]
		if !ok {
			return fmt.Errorf("unknown sender %q", msg.From)
		}
		if err := loop.Do(ctx, func() {
			if err := p.manager.Send(msg.Body); err != nil {
				log.Warn().Err(err).Str("from", msg.From).Msg("send failed")
			}
		}); err != nil {
			return err
		}
	}

	<-ctx.Done()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil
	}
	return ctx.Err()
}

func join(relay *hostsim.Relay, loop *hostsim.Loop, spec hostsim.NodeSpec, cfg simConfig) (participant, error) {
	node := hostsim.NewNode(relay, spec, cfg.Netcode, log.Logger)
	if cfg.HostRoot != "" {
		node.Files = hostsim.DirFiles{Root: cfg.HostRoot}
	}
	if cfg.Preinstalled {
		node.InstallArtifact()
	}
	if cfg.ExecUnknown {
		node.Console.Fallback = tools.ExecRunner{}
	}
	// Loading the transport keeps an already registered value.
	node.Vars.Register(cfg.Netcode.LogLevelVar, strconv.Itoa(cfg.TransportLevel))

	logger := log.Logger.With().Str("node", spec.Name).Logger()
	handler := func(body string, sender protocol.Identity) {
		from := "host"
		if !sender.IsZero() {
			if name, ok := relay.DisplayName(sender); ok {
				from = name
			} else {
				from = sender.String()
			}
		}
		logger.Info().Str("from", from).Str("body", body).Msg("received")
	}
	m, err := netcode.New(cfg.Netcode, node.Host(loop, &logger), handler)
	if err != nil {
		return participant{}, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return participant{node: node, manager: m}, nil
}

func waitReady(ctx context.Context, loop *hostsim.Loop, byName map[string]participant) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		var pending int
		var failed error
		err := loop.Do(ctx, func() {
			for name, p := range byName {
				switch p.manager.State().Phase {
				case netcode.Ready:
				case netcode.GaveUp, netcode.Incompatible:
					failed = fmt.Errorf("%s: %w", name, p.manager.Err())
				default:
					pending++
				}
			}
		})
		if err != nil {
			return err
		}
		if failed != nil {
			return failed
		}
		if pending == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for transport: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
