package hostsim

import (
	"strings"
	"sync"

	"github.com/danmuck/netcode/internal/tools"
	"github.com/rs/zerolog"
)

// CommandFunc handles one console verb. args excludes the verb.
type CommandFunc func(args []string)

// Console dispatches console lines to registered verbs. Lines with an
// unknown verb go to Fallback when set and are otherwise logged and dropped.
type Console struct {
	mu       sync.RWMutex
	verbs    map[string]CommandFunc
	history  []string
	Fallback tools.CommandRunner
	Log      zerolog.Logger
}

func NewConsole(log zerolog.Logger) *Console {
	return &Console{verbs: make(map[string]CommandFunc), Log: log}
}

// Handle registers fn for verb, replacing any previous handler.
func (c *Console) Handle(verb string, fn CommandFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verbs[verb] = fn
}

// RunCommand executes line. It never reports failure to the caller.
func (c *Console) RunCommand(line string) {
	fields := strings.Fields(line)
	c.mu.Lock()
	c.history = append(c.history, line)
	var fn CommandFunc
	if len(fields) > 0 {
		fn = c.verbs[fields[0]]
	}
	c.mu.Unlock()

	if len(fields) == 0 {
		return
	}
	if fn != nil {
		fn(fields[1:])
		return
	}
	if c.Fallback == nil {
		c.Log.Warn().Str("command", line).Msg("unknown console command")
		return
	}
	_, stderr, code, err := tools.RunLine(c.Fallback, line)
	if err != nil {
		c.Log.Warn().Err(err).Str("command", line).Int32("exit_code", code).Bytes("stderr", stderr).Msg("console command failed")
	}
}

// History returns every line run so far, oldest first.
func (c *Console) History() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.history...)
}
