package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledger LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger LedgerService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// Open opens a new account.
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.ledger.OpenAccount(domain.AccountType(req.Type), req.CustomerName, dto.EventDate(req.OpenedAt))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to open account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// List lists all open accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.ledger.Accounts()

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    len(accounts),
	})
}

// Get retrieves an account by number.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	account, err := h.ledger.Account(number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Balance returns the account's current balance.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	balance, err := h.ledger.Balance(number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountNumber: number,
		Balance:       balance,
	})
}

// MiniStatement returns the most recent statement rows for the account.
func (h *AccountHandler) MiniStatement(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	rows, err := h.ledger.MiniStatement(number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementRowsFromDomain(rows))
}

// Interest computes accrued interest up to the "to" query date (today when
// absent).
func (h *AccountHandler) Interest(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	toDate := time.Now().UTC()
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
			return
		}
		toDate = parsed
	}

	interest, err := h.ledger.InterestToDate(number, toDate)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to calculate interest", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestResponse{
		AccountNumber: number,
		ToDate:        toDate.Format("2006-01-02"),
		Interest:      interest,
	})
}

// Close closes the account and returns its full history. The close date comes
// from the "date" query parameter, defaulting to today.
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	closeDate := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid close date", err.Error())
			return
		}
		closeDate = parsed
	}

	rows, err := h.ledger.CloseAccount(number, closeDate)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to close account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CloseAccountResponse{
		AccountNumber: number,
		Rows:          dto.StatementRowsFromDomain(rows),
	})
}
