package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// mockOperator is a mock for actionProcessor.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	walletID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	date := "2026-01-15T10:30:00Z"

	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			WalletID:   walletID.String(),
			CategoryID: categoryID.String(),
			Name:       "Coffee",
			Amount:     "12.50",
			Type:       "EXPENSE",
			Date:       date,
		},
	}

	parsedWalletID, parsedCategoryID, parsedAmount, parsedDate, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, walletID, parsedWalletID)
	assert.Equal(t, categoryID, parsedCategoryID)
	assert.True(t, parsedAmount.Equal(decimal.RequireFromString("12.50")))
	expectedDate, _ := time.Parse(time.RFC3339, date)
	assert.True(t, parsedDate.Equal(expectedDate))
}

func TestParseCreateTransactionInput_WithoutDate(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			WalletID:   uuid.Must(uuid.NewV4()).String(),
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Name:       "Salary",
			Amount:     "2500.00",
			Type:       "INCOME",
		},
	}

	_, _, _, parsedDate, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, parsedDate.IsZero())
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			WalletID:   uuid.Must(uuid.NewV4()).String(),
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Name:       "Bad",
			Amount:     "not-a-decimal",
			Type:       "EXPENSE",
		},
	}

	_, _, _, _, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	walletID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.PostTransaction) bool {
		return a.UserID == userID &&
			a.WalletID == walletID &&
			a.CategoryID == categoryID &&
			a.Amount.Equal(decimal.RequireFromString("12.50")) &&
			a.Name == "Coffee"
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.PostTransaction)
		a.TransactionID = txID
		a.NewBalance = decimal.RequireFromString("87.50")
	}).Return(nil)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(userID), CreateTransactionBody{
		WalletID:   walletID.String(),
		CategoryID: categoryID.String(),
		Name:       "Coffee",
		Amount:     "12.50",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "87.5", body.NewBalance)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	mockOp := new(mockOperator)

	// Huma rejects the request before the handler runs: the header is required.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Coffee",
		Amount:     "12.50",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_MalformedUserHeader(t *testing.T) {
	mockOp := new(mockOperator)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", "X-User-ID: not-a-uuid", CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Coffee",
		Amount:     "12.50",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockOp := new(mockOperator)

	// enum:"INCOME,EXPENSE" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Coffee",
		Amount:     "12.50",
		Type:       "SIDEWAYS",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidWalletID(t *testing.T) {
	mockOp := new(mockOperator)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		WalletID:   "not-a-uuid",
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Coffee",
		Amount:     "12.50",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockOp := new(mockOperator)

	// Amount is a plain string with no Huma format tag, so
	// parseCreateTransactionInput handles validation and returns 400.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Coffee",
		Amount:     "not-a-decimal",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InsufficientFunds(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(core.ErrInsufficientFunds)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Overdraft",
		Amount:     "9999.00",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_WalletNotFound(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(core.ErrNotFound)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		WalletID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Name:       "Ghost",
		Amount:     "5.00",
		Type:       "EXPENSE",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}
