package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bankapp-se/bankapp_backend/internal/apperrors"
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/bankapp-se/bankapp_backend/internal/core/services"
	"github.com/bankapp-se/bankapp_backend/internal/utils/accountnumber"
)

// MockAccountRepository is a mock type for the AccountRepositoryWithTx interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, now)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	args := m.Called(ctx, tx, transactions)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTxnRepo)
}

// expectMoneyMovementTx wires the Begin/Rollback pair every money movement uses.
func (suite *AccountServiceTestSuite) expectMoneyMovementTx(ctx context.Context) {
	suite.mockAccountRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccountRepo.On("Rollback", ctx, nil).Return(nil).Once()
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, ownerID, "Savings", decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("Savings", account.Name)
	suite.Equal(ownerID, account.OwnerID)
	suite.True(account.Balance.Equal(decimal.NewFromInt(100)))
	suite.GreaterOrEqual(account.AccountNumber, accountnumber.Min)
	suite.Less(account.AccountNumber, accountnumber.Max)
	suite.Equal(ownerID, account.CreatedBy)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)

	// The starting balance must not produce a ledger entry.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_EmptyName() {
	ctx := context.Background()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), "", decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeInitialDeposit() {
	ctx := context.Background()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), "Savings", decimal.NewFromInt(-5))

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RetriesOnNumberCollision() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), "Savings", decimal.Zero)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", 2)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExhaustsRetries() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Times(5)

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), "Savings", decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), "Savings", decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", 1)
}

// --- Deposit ---

func (suite *AccountServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	ownerID := uuid.NewString()
	amount := decimal.NewFromInt(50)

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(map[string]domain.Account{accountID: {AccountID: accountID, OwnerID: ownerID, Balance: decimal.NewFromInt(100)}}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, nil, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 1 && changes[accountID].Equal(amount)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionsInTx", ctx, nil, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].AccountID == accountID &&
			txns[0].Amount.Equal(amount) &&
			txns[0].TransactionType == domain.Deposit
	})).Return(nil).Once()
	suite.mockAccountRepo.On("Commit", ctx, nil).Return(nil).Once()

	txn, err := suite.service.Deposit(ctx, accountID, amount, "payday")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.IsCredit())
	suite.Equal("payday", txn.Description)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		txn, err := suite.service.Deposit(ctx, uuid.NewString(), amount, "")
		suite.Require().Error(err)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(map[string]domain.Account{}, nil).Once()

	txn, err := suite.service.Deposit(ctx, accountID, decimal.NewFromInt(10), "")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

// --- Withdraw ---

func (suite *AccountServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(30)

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(map[string]domain.Account{accountID: {AccountID: accountID, Balance: decimal.NewFromInt(100)}}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, nil, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[accountID].Equal(amount.Neg())
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionsInTx", ctx, nil, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].Amount.Equal(amount.Neg()) &&
			txns[0].TransactionType == domain.Withdrawal
	})).Return(nil).Once()
	suite.mockAccountRepo.On("Commit", ctx, nil).Return(nil).Once()

	txn, err := suite.service.Withdraw(ctx, accountID, amount, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.False(txn.IsCredit())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(map[string]domain.Account{accountID: {AccountID: accountID, Balance: decimal.NewFromInt(20)}}, nil).Once()

	txn, err := suite.service.Withdraw(ctx, accountID, decimal.NewFromInt(100), "")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_ExactBalanceSucceeds() {
	ctx := context.Background()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(100)

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(map[string]domain.Account{accountID: {AccountID: accountID, Balance: amount}}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, nil, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionsInTx", ctx, nil, mock.Anything).Return(nil).Once()
	suite.mockAccountRepo.On("Commit", ctx, nil).Return(nil).Once()

	txn, err := suite.service.Withdraw(ctx, accountID, amount, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
}

// --- Transfer ---

func (suite *AccountServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	amount := decimal.NewFromInt(70)

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{fromID, toID}).
		Return(map[string]domain.Account{
			fromID: {AccountID: fromID, Balance: decimal.NewFromInt(150)},
			toID:   {AccountID: toID, Balance: decimal.Zero},
		}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, nil, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 2 && changes[fromID].Equal(amount.Neg()) && changes[toID].Equal(amount)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionsInTx", ctx, nil, mock.MatchedBy(func(txns []domain.Transaction) bool {
		if len(txns) != 2 {
			return false
		}
		sum := txns[0].Amount.Add(txns[1].Amount)
		return sum.IsZero() &&
			txns[0].AccountID == fromID && txns[0].Amount.IsNegative() &&
			txns[1].AccountID == toID && txns[1].Amount.IsPositive() &&
			txns[0].TransactionType == domain.Transfer &&
			txns[1].TransactionType == domain.Transfer
	})).Return(nil).Once()
	suite.mockAccountRepo.On("Commit", ctx, nil).Return(nil).Once()

	err := suite.service.Transfer(ctx, fromID, toID, amount, "rent")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestTransfer_SameAccount() {
	ctx := context.Background()
	id := uuid.NewString()

	err := suite.service.Transfer(ctx, id, id, decimal.NewFromInt(10), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestTransfer_SourceNotFound() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{fromID, toID}).
		Return(map[string]domain.Account{toID: {AccountID: toID}}, nil).Once()

	err := suite.service.Transfer(ctx, fromID, toID, decimal.NewFromInt(10), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "source account")
}

func (suite *AccountServiceTestSuite) TestTransfer_DestinationNotFound() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{fromID, toID}).
		Return(map[string]domain.Account{fromID: {AccountID: fromID, Balance: decimal.NewFromInt(100)}}, nil).Once()

	err := suite.service.Transfer(ctx, fromID, toID, decimal.NewFromInt(10), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "destination account")
}

func (suite *AccountServiceTestSuite) TestTransfer_InsufficientFunds() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	suite.expectMoneyMovementTx(ctx)
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{fromID, toID}).
		Return(map[string]domain.Account{
			fromID: {AccountID: fromID, Balance: decimal.NewFromInt(5)},
			toID:   {AccountID: toID},
		}, nil).Once()

	err := suite.service.Transfer(ctx, fromID, toID, decimal.NewFromInt(10), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
}

// --- Queries ---

func (suite *AccountServiceTestSuite) TestAccountExists() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID}, nil).Once()

	exists, err := suite.service.AccountExists(ctx, accountID)
	suite.Require().NoError(err)
	suite.True(exists)

	suite.mockAccountRepo.On("FindAccountByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	exists, err = suite.service.AccountExists(ctx, "missing")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *AccountServiceTestSuite) TestGetAccountIDByAccountNumber() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, int64(123456789)).
		Return(&domain.Account{AccountID: accountID, AccountNumber: 123456789}, nil).Once()

	got, err := suite.service.GetAccountIDByAccountNumber(ctx, 123456789)
	suite.Require().NoError(err)
	suite.Equal(accountID, got)

	// Out of range numbers never hit the store.
	_, err = suite.service.GetAccountIDByAccountNumber(ctx, 42)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "FindAccountByNumber", 1)
}

func (suite *AccountServiceTestSuite) TestRenameAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID, Name: "Old"}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == accountID && a.Name == "New"
	})).Return(nil).Once()

	account, err := suite.service.RenameAccount(ctx, accountID, "New")

	suite.Require().NoError(err)
	suite.Equal("New", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeleteAccount", ctx, accountID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.CloseAccount(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetTransactions_NewestFirstPassThrough() {
	ctx := context.Background()
	accountID := uuid.NewString()
	now := time.Now().UTC()

	page := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(-70), TransactionType: domain.Transfer},
		{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(50), TransactionType: domain.Deposit},
	}
	page[0].CreatedAt = now
	page[1].CreatedAt = now.Add(-time.Minute)
	token := "next-page"

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccountID", ctx, accountID, 2, (*string)(nil)).
		Return(page, &token, nil).Once()

	txns, nextToken, err := suite.service.GetTransactions(ctx, accountID, 2, nil)

	suite.Require().NoError(err)
	suite.Len(txns, 2)
	suite.True(txns[0].CreatedAt.After(txns[1].CreatedAt))
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
}

func (suite *AccountServiceTestSuite) TestGetTransactions_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	txns, nextToken, err := suite.service.GetTransactions(ctx, accountID, 10, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txns)
	suite.Nil(nextToken)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
