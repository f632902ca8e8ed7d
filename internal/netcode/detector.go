package netcode

import (
	"fmt"
	"math/rand"
	"time"
)

// Detector polls the host until the transport component is loaded and its
// variables are valid, or the attempt budget runs out.
//
// Retries are deferred through the Scheduler rather than looped. Each
// scheduled retry carries the generation it was issued in; a reset bumps the
// generation so a stale retry finds itself outdated and returns.
type Detector struct {
	cfg  Config
	host Host
	log  *tieredLogger
	rng  *rand.Rand

	onIncoming func()

	phase      Phase
	attempts   int
	generation uint64
	failure    error
}

func newDetector(cfg Config, host Host, log *tieredLogger, onIncoming func()) *Detector {
	d := &Detector{
		cfg:        cfg,
		host:       host,
		log:        log,
		onIncoming: onIncoming,
	}
	if cfg.Retry.Jitter {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

// State returns the current readiness snapshot.
func (d *Detector) State() ReadinessState {
	return ReadinessState{Phase: d.phase, Attempt: d.attempts}
}

// Err explains a terminal failure; nil while probing or once ready.
func (d *Detector) Err() error {
	return d.failure
}

// Start runs one probe. With resetAttempts the attempt counter restarts and
// any pending retry is invalidated; this is the only way out of GaveUp or
// Incompatible. Start is a no-op once Ready.
func (d *Detector) Start(resetAttempts bool) {
	if d.phase == Ready {
		return
	}
	if resetAttempts {
		d.attempts = 0
		d.failure = nil
		d.generation++
	} else if d.phase.Terminal() {
		return
	}

	if d.attempts >= d.cfg.MaxAttempts {
		d.phase = GaveUp
		d.failure = fmt.Errorf("%w: %d attempts", ErrRetryBudgetExhausted, d.attempts)
		return
	}
	d.attempts++
	d.phase = Probing
	d.probe()
}

func (d *Detector) probe() {
	if d.transportLoaded() {
		d.validateContract()
		return
	}

	cmd := d.cfg.InstallCommand
	if d.host.Files.Exists(d.cfg.ArtifactPath) {
		cmd = d.cfg.LoadCommand
	}
	d.log.base.Debug().
		Str("component", d.cfg.ComponentName).
		Int("attempt", d.attempts).
		Str("command", cmd).
		Msg("transport not loaded")
	d.host.Commands.RunCommand(cmd)

	gen := d.generation
	delay := NextRetryDelay(d.cfg.Retry, d.attempts, d.rng)
	d.host.Scheduler.After(delay, func() {
		if gen != d.generation {
			return
		}
		d.Start(false)
	})
}

func (d *Detector) transportLoaded() bool {
	for _, c := range d.host.Registry.LoadedComponents() {
		if c.Name == d.cfg.ComponentName {
			return true
		}
	}
	return false
}

func (d *Detector) validateContract() {
	vars := d.host.Vars
	if !vars.Exists(d.cfg.LogLevelVar) {
		// Verbosity cannot be bound without this variable, so log ungated.
		d.log.raw().
			Str("variable", d.cfg.LogLevelVar).
			Msgf("%s is loaded, but could not find variable %s", d.cfg.ComponentName, d.cfg.LogLevelVar)
		d.incompatible(d.cfg.LogLevelVar)
		return
	}
	d.log.bind(vars, d.cfg.LogLevelVar)

	for _, name := range []string{d.cfg.IncomingVar, d.cfg.OutgoingVar} {
		if !vars.Exists(name) {
			d.log.tier(TierA).
				Str("variable", name).
				Msgf("%s is loaded, but could not find variable %s", d.cfg.ComponentName, name)
			d.incompatible(name)
			return
		}
	}

	vars.OnChange(d.cfg.IncomingVar, d.onIncoming)
	d.phase = Ready
	d.log.tier(TierA).
		Int("attempt", d.attempts).
		Msgf("detected that %s is loaded. Ready to go.", d.cfg.ComponentName)
}

func (d *Detector) incompatible(missing string) {
	d.phase = Incompatible
	d.failure = fmt.Errorf("%w: missing variable %s", ErrTransportIncompatible, missing)
}
