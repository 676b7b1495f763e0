package authorization

import (
	"time"

	"encore.dev/config"

	"encore.app/authorization/model"
)

// AuthConfig carries the policy ceilings and operational budgets. All ceilings
// are minor units; they are configuration inputs, never hard-coded in the
// pipeline.
type AuthConfig struct {
	PerTransactionLimitCents           config.Int64
	PerPeriodLimitCents                config.Int64
	FreeTierTransactionLimitCents      config.Int64
	FirstProviderTransactionLimitCents config.Int64
	FraudOutlierLimitCents             config.Int64
	FraudVelocityPerHour               config.Int

	// LoaderTimeoutMillis bounds each context loader call; the processor
	// blocks on our response, so a slow data source must fail fast.
	LoaderTimeoutMillis config.Int
	// ConcurrentWaitMillis bounds how long a redelivery waits for an
	// in-flight computation of the same event.
	ConcurrentWaitMillis config.Int

	// BlockedAccounts lists connected account ids flagged as known-bad.
	BlockedAccounts config.Values[string]
}

var cfg = config.Load[*AuthConfig]()

func limitsFromConfig() model.Limits {
	return model.Limits{
		PerTransactionCents:           cfg.PerTransactionLimitCents(),
		PerPeriodCents:                cfg.PerPeriodLimitCents(),
		FreeTierTransactionCents:      cfg.FreeTierTransactionLimitCents(),
		FirstProviderTransactionCents: cfg.FirstProviderTransactionLimitCents(),
		FraudOutlierCents:             cfg.FraudOutlierLimitCents(),
		FraudVelocityPerHour:          cfg.FraudVelocityPerHour(),
	}
}

func loaderTimeout() time.Duration {
	return time.Duration(cfg.LoaderTimeoutMillis()) * time.Millisecond
}

func concurrentWait() time.Duration {
	return time.Duration(cfg.ConcurrentWaitMillis()) * time.Millisecond
}
