package netcode

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Verbosity tiers gated by the transport's log-level variable. A tier is
// written when the variable's value is strictly greater than tier-1.
const (
	TierA = 1
	TierB = 2
	TierC = 3
)

const defaultVerbosity = 1

type tieredLogger struct {
	base zerolog.Logger
	// verbosity is nil until the log-level variable is bound.
	verbosity *int
}

// raw writes regardless of verbosity; used where the level is not yet known.
func (l *tieredLogger) raw() *zerolog.Event {
	return l.base.Warn()
}

// tier returns nil (a no-op event) when the bound verbosity hides tier n.
func (l *tieredLogger) tier(n int) *zerolog.Event {
	if l.verbosity == nil || *l.verbosity < n {
		return nil
	}
	return l.base.Info().Str("tier", tierName(n))
}

func (l *tieredLogger) bind(vars Variables, name string) {
	if l.verbosity != nil {
		l.refresh(vars, name)
		return
	}
	v := defaultVerbosity
	l.verbosity = &v
	l.refresh(vars, name)
	vars.OnChange(name, func() { l.refresh(vars, name) })
}

func (l *tieredLogger) refresh(vars Variables, name string) {
	if lvl, ok := parseVerbosity(vars.Get(name)); ok {
		*l.verbosity = lvl
	}
}

func parseVerbosity(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

func tierName(n int) string {
	switch n {
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	default:
		return strconv.Itoa(n)
	}
}
