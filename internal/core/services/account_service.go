package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bankapp-se/bankapp_backend/internal/apperrors"
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	portsrepo "github.com/bankapp-se/bankapp_backend/internal/core/ports/repositories"
	portssvc "github.com/bankapp-se/bankapp_backend/internal/core/ports/services"
	"github.com/bankapp-se/bankapp_backend/internal/utils/accountnumber"
)

// maxAccountNumberAttempts bounds the retry loop on account number collisions.
// With 900 million candidate numbers a second collision in a row is already
// vanishingly unlikely.
const maxAccountNumberAttempts = 5

// AccountService provides account and ledger business logic.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryWithTx
	txnRepo     portsrepo.TransactionRepository
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, txnRepo portsrepo.TransactionRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// CreateAccount opens a new account with a freshly generated 9-digit account
// number. The optional initial deposit becomes the starting balance without a
// ledger entry, so history begins empty.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID string, name string, initialDeposit decimal.Decimal) (*domain.Account, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		Balance:   initialDeposit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	// The generated number is unique with overwhelming probability, but the
	// store has the final word via its unique constraint.
	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		number, err := accountnumber.Generate()
		if err != nil {
			s.LogError(ctx, err, "Failed to generate account number")
			return nil, fmt.Errorf("failed to generate account number: %w", err)
		}
		account.AccountNumber = number

		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			s.LogInfo(ctx, "Account created",
				slog.String("account_id", account.AccountID),
				slog.Int64("account_number", account.AccountNumber))
			return &account, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Account number collision, retrying",
				slog.Int64("account_number", number),
				slog.Int("attempt", attempt))
			continue
		}
		s.LogError(ctx, err, "Failed to save account")
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	return nil, fmt.Errorf("failed to allocate a unique account number after %d attempts", maxAccountNumberAttempts)
}

// GetAccountByID retrieves a single account.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// GetAccountsForUser retrieves all accounts owned by a user.
func (s *AccountService) GetAccountsForUser(ctx context.Context, ownerID string) ([]domain.Account, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	accounts, err := s.accountRepo.FindAccountsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// GetAccountIDByAccountNumber resolves a public account number to its
// internal account identifier.
func (s *AccountService) GetAccountIDByAccountNumber(ctx context.Context, number int64) (string, error) {
	if !accountnumber.IsValid(number) {
		return "", fmt.Errorf("%w: account number must be a 9-digit number", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find account by number", slog.Int64("account_number", number))
		return "", fmt.Errorf("failed to find account by number: %w", err)
	}
	return account.AccountID, nil
}

// AccountExists reports whether an account is present in the store.
// A missing account is not an error here.
func (s *AccountService) AccountExists(ctx context.Context, accountID string) (bool, error) {
	_, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return true, nil
}

// RenameAccount changes an account's display name. Balance and account
// number are untouched.
func (s *AccountService) RenameAccount(ctx context.Context, accountID string, newName string) (*domain.Account, error) {
	if newName == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Name = newName
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = account.OwnerID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to rename account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to rename account: %w", err)
	}
	s.LogInfo(ctx, "Account renamed", slog.String("account_id", accountID))
	return account, nil
}

// CloseAccount removes an account. Its ledger entries are kept.
func (s *AccountService) CloseAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to close account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to close account: %w", err)
	}
	s.LogInfo(ctx, "Account closed", slog.String("account_id", accountID))
	return nil
}

// Deposit adds a positive amount to the account and records a credit ledger
// entry. Balance update and ledger entry commit in one database transaction.
func (s *AccountService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.accountRepo.Rollback(ctx, tx) //nolint:errcheck

	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	account, ok := locked[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          amount,
		TransactionType: domain.Deposit,
		Description:     description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     account.OwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: account.OwnerID,
		},
	}

	err = s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, map[string]decimal.Decimal{accountID: amount}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	if err := s.txnRepo.SaveTransactionsInTx(ctx, tx, []domain.Transaction{txn}); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit deposit: %w", err)
	}

	s.LogInfo(ctx, "Deposit completed",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", amount.String()))
	return &txn, nil
}

// Withdraw removes a positive amount from the account and records a debit
// ledger entry. The balance is checked under a row lock so it can never go
// negative, even under concurrent withdrawals.
func (s *AccountService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.accountRepo.Rollback(ctx, tx) //nolint:errcheck

	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	account, ok := locked[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
	}
	if account.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: insufficient funds", apperrors.ErrInsufficientFunds)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          amount.Neg(),
		TransactionType: domain.Withdrawal,
		Description:     description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     account.OwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: account.OwnerID,
		},
	}

	err = s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, map[string]decimal.Decimal{accountID: amount.Neg()}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	if err := s.txnRepo.SaveTransactionsInTx(ctx, tx, []domain.Transaction{txn}); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	s.LogInfo(ctx, "Withdrawal completed",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", amount.String()))
	return &txn, nil
}

// Transfer moves a positive amount from one account to another. Both rows are
// locked in a single ordered query, both balances change, and exactly two
// ledger entries (a debit and a credit summing to zero) are written. Either
// everything commits or nothing does.
func (s *AccountService) Transfer(ctx context.Context, fromAccountID string, toAccountID string, amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if fromAccountID == toAccountID {
		return fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.accountRepo.Rollback(ctx, tx) //nolint:errcheck

	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{fromAccountID, toAccountID})
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	source, ok := locked[fromAccountID]
	if !ok {
		return fmt.Errorf("%w: source account not found", apperrors.ErrNotFound)
	}
	if _, ok := locked[toAccountID]; !ok {
		return fmt.Errorf("%w: destination account not found", apperrors.ErrNotFound)
	}
	if source.Balance.LessThan(amount) {
		return fmt.Errorf("%w: insufficient funds in source account", apperrors.ErrInsufficientFunds)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     source.OwnerID,
		LastUpdatedAt: now,
		LastUpdatedBy: source.OwnerID,
	}
	legs := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			AccountID:       fromAccountID,
			Amount:          amount.Neg(),
			TransactionType: domain.Transfer,
			Description:     description,
			AuditFields:     audit,
		},
		{
			TransactionID:   uuid.NewString(),
			AccountID:       toAccountID,
			Amount:          amount,
			TransactionType: domain.Transfer,
			Description:     description,
			AuditFields:     audit,
		},
	}

	balanceChanges := map[string]decimal.Decimal{
		fromAccountID: amount.Neg(),
		toAccountID:   amount,
	}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		return fmt.Errorf("failed to update balances: %w", err)
	}
	if err := s.txnRepo.SaveTransactionsInTx(ctx, tx, legs); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("from_account_id", fromAccountID),
		slog.String("to_account_id", toAccountID),
		slog.String("amount", amount.String()))
	return nil
}

// GetTransactions lists an account's ledger entries newest first.
func (s *AccountService) GetTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if accountID == "" {
		return nil, nil, fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = 50
	}

	exists, err := s.AccountExists(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
	}

	txns, newToken, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, newToken, nil
}
