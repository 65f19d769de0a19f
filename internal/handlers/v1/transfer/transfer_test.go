package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewTransferHandler(op).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

func TestHTTP_Transfer_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	fromID := uuid.Must(uuid.NewV4())
	toID := uuid.Must(uuid.NewV4())
	expenseID := uuid.Must(uuid.NewV4())
	incomeID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.Transfer) bool {
		return a.UserID == userID &&
			a.FromWalletID == fromID &&
			a.ToWalletID == toID &&
			a.Amount.Equal(decimal.RequireFromString("50.00")) &&
			a.Description == "vacation fund"
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.Transfer)
		a.Received = decimal.RequireFromString("54.35")
		a.ExpenseTransaction = expenseID
		a.IncomeTransaction = incomeID
	}).Return(nil)

	resp := newTestAPI(t, mockOp).Post("/v1/transfer", userHeader(userID), TransferBody{
		FromWalletID: fromID.String(),
		ToWalletID:   toID.String(),
		Amount:       "50.00",
		Description:  "vacation fund",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body TransferResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "54.35", body.Received)
	assert.Equal(t, expenseID.String(), body.ExpenseTransaction)
	assert.Equal(t, incomeID.String(), body.IncomeTransaction)
	mockOp.AssertExpectations(t)
}

func TestHTTP_Transfer_InsufficientFunds(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(core.ErrInsufficientFunds)

	resp := newTestAPI(t, mockOp).Post("/v1/transfer", userHeader(uuid.Must(uuid.NewV4())), TransferBody{
		FromWalletID: uuid.Must(uuid.NewV4()).String(),
		ToWalletID:   uuid.Must(uuid.NewV4()).String(),
		Amount:       "9999.00",
		Description:  "too much",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_Transfer_SameWalletRejected(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(core.ErrInvalidAmount)

	walletID := uuid.Must(uuid.NewV4()).String()
	resp := newTestAPI(t, mockOp).Post("/v1/transfer", userHeader(uuid.Must(uuid.NewV4())), TransferBody{
		FromWalletID: walletID,
		ToWalletID:   walletID,
		Amount:       "10.00",
		Description:  "loop",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_Transfer_MissingFields(t *testing.T) {
	mockOp := new(mockOperator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockOp).Post("/v1/transfer", userHeader(uuid.Must(uuid.NewV4())), TransferBody{
		FromWalletID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_Transfer_InvalidAmount(t *testing.T) {
	mockOp := new(mockOperator)

	resp := newTestAPI(t, mockOp).Post("/v1/transfer", userHeader(uuid.Must(uuid.NewV4())), TransferBody{
		FromWalletID: uuid.Must(uuid.NewV4()).String(),
		ToWalletID:   uuid.Must(uuid.NewV4()).String(),
		Amount:       "fifty",
		Description:  "words",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
