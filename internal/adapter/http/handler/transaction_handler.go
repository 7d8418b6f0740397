package handler

import (
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
)

// TransactionHandler handles deposit, withdrawal and transfer requests.
type TransactionHandler struct {
	ledger LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Deposit records a deposit.
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	row, err := h.ledger.Deposit(req.AccountNumber, req.Amount, req.Description, dto.EventDate(req.Date))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StatementRowFromDomain(row))
}

// Withdraw records a withdrawal.
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	row, err := h.ledger.Withdraw(req.AccountNumber, req.Amount, req.Description, dto.EventDate(req.Date))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record withdrawal", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StatementRowFromDomain(row))
}

// Transfer records a transfer between two accounts.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debit, credit, err := h.ledger.Transfer(req.FromAccountNumber, req.ToAccountNumber, req.Amount, req.Description, dto.EventDate(req.Date))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		Debit:  dto.StatementRowFromDomain(debit),
		Credit: dto.StatementRowFromDomain(credit),
	})
}
