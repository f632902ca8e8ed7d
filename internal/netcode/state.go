package netcode

import "fmt"

// Phase is the coarse readiness of a Detector.
type Phase int

const (
	NotChecked Phase = iota
	Probing
	Ready
	GaveUp
	// Incompatible means the transport loaded but lacks a required variable.
	Incompatible
)

func (p Phase) String() string {
	switch p {
	case NotChecked:
		return "not_checked"
	case Probing:
		return "probing"
	case Ready:
		return "ready"
	case GaveUp:
		return "gave_up"
	case Incompatible:
		return "incompatible"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether a phase is only left through an explicit reset.
func (p Phase) Terminal() bool {
	return p == Ready || p == GaveUp || p == Incompatible
}

// ReadinessState is a snapshot of detection progress.
type ReadinessState struct {
	Phase   Phase
	Attempt int
}

func (s ReadinessState) String() string {
	if s.Phase == Probing {
		return fmt.Sprintf("probing(%d)", s.Attempt)
	}
	return s.Phase.String()
}
