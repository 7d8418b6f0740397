package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
)

// ClosureDescription is the fixed description on the forced withdrawal row
// recorded when an account is closed.
const ClosureDescription = "account closed - balance withdrawn"

// DefaultMiniStatementLimit is the number of rows a mini statement returns.
const DefaultMiniStatementLimit = 5

// Metrics receives ledger operation events. Implemented by
// infrastructure/metrics; a no-op implementation is used when none is given.
type Metrics interface {
	AccountOpened(accountType string)
	AccountClosed(accountType string)
	TransactionRecorded(operation string, amount decimal.Decimal)
}

type nopMetrics struct{}

func (nopMetrics) AccountOpened(string)                        {}
func (nopMetrics) AccountClosed(string)                        {}
func (nopMetrics) TransactionRecorded(string, decimal.Decimal) {}

// DefaultRates returns the standard annual interest rates per account type.
// The savings product is quoted as 6% per month, carried here as its annual
// equivalent.
func DefaultRates() map[domain.AccountType]decimal.Decimal {
	return map[domain.AccountType]decimal.Decimal{
		domain.AccountTypeSavings:  decimal.RequireFromString("72"),
		domain.AccountTypeHomeLoan: decimal.RequireFromString("3.99"),
	}
}

// Config holds ledger construction parameters. Zero-value fields fall back
// to defaults.
type Config struct {
	// Rates maps account types to annual interest rates in percent.
	Rates map[domain.AccountType]decimal.Decimal
	// MaxSequence caps account numbering per type.
	MaxSequence int
	// MiniStatementLimit caps rows returned by MiniStatement.
	MiniStatementLimit int

	Clock   Clock
	IDGen   IDGenerator
	Logger  zerolog.Logger
	Metrics Metrics
}

// Ledger owns the open accounts and the transaction log. All operations are
// serialized behind a single mutex; accounts and statement rows handed to
// callers are value copies, never internal pointers.
type Ledger struct {
	mu sync.Mutex

	rates     map[domain.AccountType]decimal.Decimal
	maxSeq    int
	stmtLimit int
	clock     Clock
	idGen     IDGenerator
	logger    zerolog.Logger
	metrics   Metrics

	accounts  []*domain.Account          // insertion order = open order
	index     map[string]*domain.Account // account number -> record
	log       []*domain.StatementRow     // insertion order = recording order
	sequences map[domain.AccountType]int // next sequence per type, starts at 1
}

// New creates an empty ledger.
func New(cfg Config) *Ledger {
	if cfg.Rates == nil {
		cfg.Rates = DefaultRates()
	}
	if cfg.MaxSequence == 0 {
		cfg.MaxSequence = domain.MaxAccountSequence
	}
	if cfg.MiniStatementLimit == 0 {
		cfg.MiniStatementLimit = DefaultMiniStatementLimit
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.IDGen == nil {
		cfg.IDGen = NewULIDGenerator()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}

	return &Ledger{
		rates:     cfg.Rates,
		maxSeq:    cfg.MaxSequence,
		stmtLimit: cfg.MiniStatementLimit,
		clock:     cfg.Clock,
		idGen:     cfg.IDGen,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		index:     make(map[string]*domain.Account),
		sequences: make(map[domain.AccountType]int),
	}
}

// OpenSavingsAccount opens a savings account for the customer.
func (l *Ledger) OpenSavingsAccount(customerName string, openedAt time.Time) (domain.Account, error) {
	return l.OpenAccount(domain.AccountTypeSavings, customerName, openedAt)
}

// OpenHomeLoanAccount opens a home-loan account for the customer.
func (l *Ledger) OpenHomeLoanAccount(customerName string, openedAt time.Time) (domain.Account, error) {
	return l.OpenAccount(domain.AccountTypeHomeLoan, customerName, openedAt)
}

// OpenAccount opens an account of the given type with a zero balance. The
// account number is the type prefix plus the next sequence value for that
// type; sequence values are never reused, even after closure.
func (l *Ledger) OpenAccount(t domain.AccountType, customerName string, openedAt time.Time) (domain.Account, error) {
	if !t.Valid() {
		return domain.Account{}, fmt.Errorf("%w: %q", domain.ErrInvalidAccountType, t)
	}
	if err := domain.ValidateCustomerName(customerName); err != nil {
		return domain.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.sequences[t]
	if seq == 0 {
		seq = 1
	}
	if seq > l.maxSeq {
		return domain.Account{}, fmt.Errorf("%w: %s accounts", domain.ErrSequenceExhausted, t)
	}

	account := &domain.Account{
		Number:       domain.FormatAccountNumber(t, seq),
		CustomerName: customerName,
		Type:         t,
		OpenedAt:     openedAt,
		Balance:      decimal.Zero,
	}

	l.accounts = append(l.accounts, account)
	l.index[account.Number] = account
	l.sequences[t] = seq + 1

	l.metrics.AccountOpened(string(t))
	l.logger.Info().
		Str("account", account.Number).
		Str("type", string(t)).
		Msg("account opened")

	return *account, nil
}

// Deposit credits the account and records a statement row.
func (l *Ledger) Deposit(accountNumber string, amount decimal.Decimal, description string, date time.Time) (domain.StatementRow, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.StatementRow{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return domain.StatementRow{}, domain.ErrAccountNotFound
	}
	if err := domain.ValidateNotFuture(date, l.clock.Now()); err != nil {
		return domain.StatementRow{}, err
	}

	account.Balance = account.ApplyCredit(amount)
	row := l.record(account, amount, date, description)

	l.metrics.TransactionRecorded("deposit", amount)
	return row, nil
}

// Withdraw debits the account and records a statement row. Overdrafts are
// rejected.
func (l *Ledger) Withdraw(accountNumber string, amount decimal.Decimal, description string, date time.Time) (domain.StatementRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return domain.StatementRow{}, domain.ErrAccountNotFound
	}
	if err := account.ValidateWithdrawal(amount); err != nil {
		return domain.StatementRow{}, err
	}
	if err := domain.ValidateNotFuture(date, l.clock.Now()); err != nil {
		return domain.StatementRow{}, err
	}

	account.Balance = account.ApplyDebit(amount)
	row := l.record(account, amount.Neg(), date, description)

	l.metrics.TransactionRecorded("withdrawal", amount)
	return row, nil
}

// Transfer moves amount between two accounts atomically, recording a debit
// row on the source and then a credit row on the destination, both carrying
// the same description and date. Nothing is mutated on rejection.
func (l *Ledger) Transfer(fromNumber, toNumber string, amount decimal.Decimal, description string, date time.Time) (debit, credit domain.StatementRow, err error) {
	if fromNumber == toNumber {
		return domain.StatementRow{}, domain.StatementRow{}, domain.ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.index[fromNumber]
	if !ok {
		return domain.StatementRow{}, domain.StatementRow{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, fromNumber)
	}
	to, ok := l.index[toNumber]
	if !ok {
		return domain.StatementRow{}, domain.StatementRow{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, toNumber)
	}
	if err := from.ValidateWithdrawal(amount); err != nil {
		return domain.StatementRow{}, domain.StatementRow{}, err
	}
	if err := domain.ValidateNotFuture(date, l.clock.Now()); err != nil {
		return domain.StatementRow{}, domain.StatementRow{}, err
	}

	from.Balance = from.ApplyDebit(amount)
	debit = l.record(from, amount.Neg(), date, description)

	to.Balance = to.ApplyCredit(amount)
	credit = l.record(to, amount, date, description)

	l.metrics.TransactionRecorded("transfer", amount)
	return debit, credit, nil
}

// Balance returns the current balance of the account.
func (l *Ledger) Balance(accountNumber string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

// Account returns a snapshot of the account.
func (l *Ledger) Account(accountNumber string) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return *account, nil
}

// Accounts returns snapshots of all open accounts in opening order.
func (l *Ledger) Accounts() []domain.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Account, len(l.accounts))
	for i, a := range l.accounts {
		out[i] = *a
	}
	return out
}

// MiniStatement returns up to the configured number of most recently recorded
// statement rows for the account, newest first.
func (l *Ledger) MiniStatement(accountNumber string) ([]domain.StatementRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[accountNumber]; !ok {
		return nil, domain.ErrAccountNotFound
	}

	rows := make([]domain.StatementRow, 0, l.stmtLimit)
	for i := len(l.log) - 1; i >= 0 && len(rows) < l.stmtLimit; i-- {
		if l.log[i].AccountNumber == accountNumber {
			rows = append(rows, *l.log[i])
		}
	}
	return rows, nil
}

// CloseAccount withdraws the remaining balance, removes the account from the
// active set, and returns the account's full history in event-date order.
// The history is purged from the live transaction log; the account number is
// never reissued.
func (l *Ledger) CloseAccount(accountNumber string, closeDate time.Time) ([]domain.StatementRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if err := domain.ValidateNotFuture(closeDate, l.clock.Now()); err != nil {
		return nil, err
	}

	if account.Balance.IsPositive() {
		amount := account.Balance
		account.Balance = account.ApplyDebit(amount)
		l.record(account, amount.Neg(), closeDate, ClosureDescription)
		l.metrics.TransactionRecorded("withdrawal", amount)
	}

	// Split the log into the account's history and the rows that remain.
	var history []domain.StatementRow
	remaining := l.log[:0]
	for _, row := range l.log {
		if row.AccountNumber == accountNumber {
			history = append(history, *row)
		} else {
			remaining = append(remaining, row)
		}
	}
	l.log = remaining

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	delete(l.index, accountNumber)
	for i, a := range l.accounts {
		if a.Number == accountNumber {
			l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
			break
		}
	}

	l.metrics.AccountClosed(string(account.Type))
	l.logger.Info().
		Str("account", accountNumber).
		Int("rows", len(history)).
		Msg("account closed")

	return history, nil
}

// ConsistencyReport is the result of a ledger-wide consistency check.
type ConsistencyReport struct {
	Consistent   bool
	TotalBalance decimal.Decimal
	TotalAmount  decimal.Decimal
	Mismatches   []string
}

// CheckConsistency verifies that every open account's balance equals the sum
// of its statement-row amounts and that no row references a closed account.
func (l *Ledger) CheckConsistency() ConsistencyReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	sums := make(map[string]decimal.Decimal, len(l.accounts))
	totalAmount := decimal.Zero

	var mismatches []string
	for _, row := range l.log {
		if _, ok := l.index[row.AccountNumber]; !ok {
			mismatches = append(mismatches, fmt.Sprintf("row %s references unknown account %s", row.ID, row.AccountNumber))
			continue
		}
		sums[row.AccountNumber] = sums[row.AccountNumber].Add(row.Amount)
		totalAmount = totalAmount.Add(row.Amount)
	}

	totalBalance := decimal.Zero
	for _, a := range l.accounts {
		totalBalance = totalBalance.Add(a.Balance)
		if !a.Balance.Equal(sums[a.Number]) {
			mismatches = append(mismatches, fmt.Sprintf("account %s balance %s != row sum %s", a.Number, a.Balance, sums[a.Number]))
		}
	}

	return ConsistencyReport{
		Consistent:   len(mismatches) == 0,
		TotalBalance: totalBalance,
		TotalAmount:  totalAmount,
		Mismatches:   mismatches,
	}
}

// record appends a statement row for the account. Caller holds the lock and
// has already applied the balance change.
func (l *Ledger) record(account *domain.Account, amount decimal.Decimal, date time.Time, description string) domain.StatementRow {
	row := &domain.StatementRow{
		ID:            l.idGen.Generate(),
		AccountNumber: account.Number,
		Amount:        amount,
		BalanceAfter:  account.Balance,
		Date:          date,
		RecordedAt:    l.clock.Now().UTC(),
		Description:   description,
	}
	l.log = append(l.log, row)

	l.logger.Debug().
		Str("account", account.Number).
		Str("amount", amount.String()).
		Str("balance", account.Balance.String()).
		Msg("statement row recorded")

	return *row
}
