package warns

import "time"

// Escalation policy: al alcanzar el umbral de advertencias se aplica un
// timeout automático de una hora.
const (
	// EscalationThreshold is the warn count at which the auto-timeout fires
	EscalationThreshold = 3

	// EscalationTimeout is the duration of the automatic timeout
	EscalationTimeout = time.Hour

	// EscalationReason is the audit reason attached to the automatic timeout
	EscalationReason = "Muitos warns"
)

// ShouldEscalate reports whether the transition from previous to count crosses
// the escalation threshold. It fires exactly once per crossing: a count that
// jumps past the threshold still triggers, repeated warns above it do not.
func ShouldEscalate(previous, count int) bool {
	return count >= EscalationThreshold && previous < EscalationThreshold
}
