package fraud

import (
	"fmt"

	"encore.app/authorization/business/validator"
	"encore.app/authorization/model"
)

// Detector scores a request against the current context and recent history.
// It is stateless: signals are derived fresh per request and never persisted
// on their own.
type Detector interface {
	Score(req *model.AuthorizationRequest, vctx *validator.Context) model.FraudSignal
}

type detector struct {
	blockedAccounts map[string]struct{}
}

// NewDetector builds a detector. blockedAccounts lists connected account ids
// flagged as known-bad destinations.
func NewDetector(blockedAccounts []string) Detector {
	blocked := make(map[string]struct{}, len(blockedAccounts))
	for _, id := range blockedAccounts {
		blocked[id] = struct{}{}
	}
	return &detector{blockedAccounts: blocked}
}

// Score returns the most severe signal found. HIGH severity denies upstream;
// MEDIUM is recorded in decision metadata without denying.
func (d *detector) Score(req *model.AuthorizationRequest, vctx *validator.Context) model.FraudSignal {
	signal := model.FraudSignal{SignalType: "none", Severity: model.FraudSeverityNone, Evidence: "no suspicious activity detected"}

	if _, ok := d.blockedAccounts[req.ConnectedAccountID]; ok {
		return model.FraudSignal{
			SignalType: "known_bad_account",
			Severity:   model.FraudSeverityHigh,
			Evidence:   fmt.Sprintf("connected account %s is flagged", req.ConnectedAccountID),
		}
	}

	if s := d.amountSignal(req, vctx); s.Severity.Outranks(signal.Severity) {
		signal = s
	}
	if s := d.velocitySignal(req, vctx); s.Severity.Outranks(signal.Severity) {
		signal = s
	}

	return signal
}

func (d *detector) amountSignal(req *model.AuthorizationRequest, vctx *validator.Context) model.FraudSignal {
	ceiling := vctx.Limits.FraudOutlierCents
	if ceiling <= 0 {
		return model.FraudSignal{Severity: model.FraudSeverityNone}
	}

	if req.AmountCents > ceiling {
		return model.FraudSignal{
			SignalType: "amount_outlier",
			Severity:   model.FraudSeverityHigh,
			Evidence:   fmt.Sprintf("amount %d exceeds outlier ceiling %d", req.AmountCents, ceiling),
		}
	}

	if req.AmountCents > ceiling/2 {
		return model.FraudSignal{
			SignalType: "elevated_amount",
			Severity:   model.FraudSeverityMedium,
			Evidence:   fmt.Sprintf("amount %d is above half the outlier ceiling %d", req.AmountCents, ceiling),
		}
	}

	return model.FraudSignal{Severity: model.FraudSeverityNone}
}

func (d *detector) velocitySignal(req *model.AuthorizationRequest, vctx *validator.Context) model.FraudSignal {
	max := vctx.Limits.FraudVelocityPerHour
	if max <= 0 {
		return model.FraudSignal{Severity: model.FraudSeverityNone}
	}

	recent := len(vctx.RecentTransactions)
	if recent >= max {
		return model.FraudSignal{
			SignalType: "velocity",
			Severity:   model.FraudSeverityHigh,
			Evidence:   fmt.Sprintf("%d transactions in the last hour, limit %d", recent, max),
		}
	}

	return model.FraudSignal{Severity: model.FraudSeverityNone}
}
