package workflow

const (
	// Signal names
	TransactionRecordedSignalName = "transaction-recorded"
	CloseWindowSignalName         = "close-window"
)

// TransactionRecordedSignal notifies the period workflow that an approved
// transaction landed in the spend ledger. The activity recomputes the window
// aggregate from the ledger, healing any drift.
type TransactionRecordedSignal struct {
	EventID string `json:"event_id"`
}

// CloseWindowSignal closes a spending window before its period elapses.
type CloseWindowSignal struct {
	Reason string `json:"reason"`
}
