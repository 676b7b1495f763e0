package model

type FraudSeverity string

const (
	FraudSeverityNone   FraudSeverity = "none"
	FraudSeverityMedium FraudSeverity = "medium"
	FraudSeverityHigh   FraudSeverity = "high"
)

// FraudSignal is derived fresh per request and never persisted on its own; it
// only travels embedded in decision metadata and the audit record.
type FraudSignal struct {
	SignalType string        `json:"signal_type"`
	Severity   FraudSeverity `json:"severity"`
	Evidence   string        `json:"evidence"`
}

// Outranks reports whether s is more severe than other.
func (s FraudSeverity) Outranks(other FraudSeverity) bool {
	return s.rank() > other.rank()
}

func (s FraudSeverity) rank() int {
	switch s {
	case FraudSeverityHigh:
		return 2
	case FraudSeverityMedium:
		return 1
	default:
		return 0
	}
}
