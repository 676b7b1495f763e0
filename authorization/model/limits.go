package model

// Limits carries the configured ceilings the pipeline enforces. All ceilings
// are minor units. The engine receives this as a plain struct so the pipeline
// stays testable with fabricated values.
type Limits struct {
	PerTransactionCents           int64
	PerPeriodCents                int64
	FreeTierTransactionCents      int64
	FirstProviderTransactionCents int64
	FraudOutlierCents             int64
	FraudVelocityPerHour          int
}
