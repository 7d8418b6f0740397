package handler

import (
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
)

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	ledger LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// Consistency runs the ledger consistency check.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	report := h.ledger.CheckConsistency()

	status := http.StatusOK
	if !report.Consistent {
		status = http.StatusConflict
	}

	writeJSON(w, status, dto.ConsistencyFromReport(report))
}
