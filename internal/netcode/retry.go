package netcode

import (
	"math"
	"math/rand"
	"time"
)

// NextRetryDelay returns the wait before probe attempt+1 (attempt is
// 1-based). With the default multiplier of 1 the delay is fixed.
func NextRetryDelay(cfg RetryConfig, attempt int, rng *rand.Rand) time.Duration {
	if attempt <= 1 {
		return cfg.Delay
	}
	if cfg.Delay <= 0 {
		return 0
	}
	if cfg.Multiplier < 1.0 {
		cfg.Multiplier = 1.0
	}
	delay := float64(cfg.Delay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter {
		f := 0.5
		if rng != nil {
			f = 0.5 + rng.Float64()
		}
		delay = delay * f
	}
	return time.Duration(delay)
}
