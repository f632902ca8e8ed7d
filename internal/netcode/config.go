package netcode

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/danmuck/netcode/internal/protocol"
)

const (
	DefaultComponentName  = "NetcodeTransport"
	DefaultLoadCommand    = "plugin load NetcodePlugin"
	DefaultInstallCommand = "bpm_install 166"
	DefaultMaxAttempts    = 20

	VarLogLevel   = "NETCODE_Log_Level"
	VarMessageIn  = "NETCODE_Message_In"
	VarMessageOut = "NETCODE_Message_Out"
)

// DefaultArtifactPath is the transport's plugin binary relative to the host
// root. The binary and console load command keep the NetcodePlugin name;
// once loaded it registers as DefaultComponentName.
var DefaultArtifactPath = filepath.Join("plugins", "NetcodePlugin.dll")

// RetryConfig defines the delay between load probes.
type RetryConfig struct {
	Delay      time.Duration
	Multiplier float64
	MaxDelay   time.Duration
	Jitter     bool
}

// Config defines how a Manager finds and talks to the transport.
type Config struct {
	// PluginTag identifies the local plugin on the shared variables.
	PluginTag string

	ComponentName  string
	ArtifactPath   string
	LoadCommand    string
	InstallCommand string

	MaxAttempts int
	Retry       RetryConfig

	LogLevelVar string
	IncomingVar string
	OutgoingVar string
}

// DefaultConfig returns transport defaults for the plugin tagged tag.
func DefaultConfig(tag string) Config {
	return Config{
		PluginTag:      tag,
		ComponentName:  DefaultComponentName,
		ArtifactPath:   DefaultArtifactPath,
		LoadCommand:    DefaultLoadCommand,
		InstallCommand: DefaultInstallCommand,
		MaxAttempts:    DefaultMaxAttempts,
		Retry: RetryConfig{
			Delay:      2 * time.Second,
			Multiplier: 1.0,
		},
		LogLevelVar: VarLogLevel,
		IncomingVar: VarMessageIn,
		OutgoingVar: VarMessageOut,
	}
}

// Validate checks the fields a Manager cannot run without.
func (c Config) Validate() error {
	if err := protocol.ValidateTag(c.PluginTag); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.ComponentName) == "" {
		return fmt.Errorf("%w: component name is required", ErrInvalidConfig)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.Retry.Delay < 0 {
		return fmt.Errorf("%w: negative retry delay %v", ErrInvalidConfig, c.Retry.Delay)
	}
	for name, v := range map[string]string{
		"log level variable": c.LogLevelVar,
		"incoming variable":  c.IncomingVar,
		"outgoing variable":  c.OutgoingVar,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
		}
	}
	return nil
}
