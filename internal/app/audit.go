package app

import (
	"github.com/hance08/payments/internal/payments"
	"github.com/pterm/pterm"
)

// logAuditor writes every ignored transaction to the debug log.
type logAuditor struct {
	logger *pterm.Logger
}

func (a *logAuditor) Rejected(tx payments.Transaction, reason payments.Rejection) {
	a.logger.Debug("transaction ignored", a.logger.Args(
		"type", tx.Kind.String(),
		"client", tx.ClientID,
		"tx", tx.ID,
		"reason", string(reason),
	))
}
