package currency

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// Catalog mutations are administrator-only; rates affect every user's
// transfers.

// CreateCurrencyBody is the request body for creating a currency.
type CreateCurrencyBody struct {
	Name       string `json:"name" required:"true" minLength:"1" doc:"Currency code, unique"`
	ValueToEur string `json:"valueToEur" required:"true" doc:"Value of one unit in EUR, positive"`
}

// CreateCurrencyInput is the Huma input for creating a currency.
type CreateCurrencyInput struct {
	identity.Identity
	Body CreateCurrencyBody
}

// CreateCurrencyResponse is the response body for creating a currency.
type CreateCurrencyResponse struct {
	ID string `json:"id" doc:"UUID of the created currency"`
}

// CreateCurrencyOutput is the Huma output for creating a currency.
type CreateCurrencyOutput struct {
	Body CreateCurrencyResponse
}

// CreateCurrencyHandler handles POST /v1/currency.
type CreateCurrencyHandler struct {
	Operator actionProcessor
}

// NewCreateCurrencyHandler creates a new CreateCurrencyHandler.
func NewCreateCurrencyHandler(op actionProcessor) *CreateCurrencyHandler {
	return &CreateCurrencyHandler{Operator: op}
}

// Register registers the create currency endpoint with the Huma API.
func (h *CreateCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-currency",
		Method:        http.MethodPost,
		Path:          "/v1/currency",
		Summary:       "Create currency",
		Description:   "Adds a currency to the catalog. Administrator only.",
		Tags:          []string{"Currencies"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCurrencyHandler) handle(ctx context.Context, input *CreateCurrencyInput) (*CreateCurrencyOutput, error) {
	if !input.IsAdministrator() {
		return nil, huma.NewError(http.StatusForbidden, "administrator role required")
	}
	valueToEur, err := decimal.NewFromString(input.Body.ValueToEur)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid valueToEur", err)
	}

	action := &actions.CreateCurrency{
		Name:       input.Body.Name,
		ValueToEur: valueToEur,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to create currency")
	}

	return &CreateCurrencyOutput{
		Body: CreateCurrencyResponse{ID: action.CurrencyID.String()},
	}, nil
}

// UpdateCurrencyBody is the request body for updating a currency rate.
type UpdateCurrencyBody struct {
	ValueToEur string `json:"valueToEur" required:"true" doc:"Value of one unit in EUR, positive"`
}

// UpdateCurrencyInput is the Huma input for updating a currency rate.
type UpdateCurrencyInput struct {
	identity.Identity
	ID   string `path:"id" format:"uuid" doc:"Currency UUID"`
	Body UpdateCurrencyBody
}

// UpdateCurrencyOutput is the Huma output for updating a currency rate.
type UpdateCurrencyOutput struct {
	Status int
}

// UpdateCurrencyHandler handles PUT /v1/currency/{id}.
type UpdateCurrencyHandler struct {
	Operator actionProcessor
}

// NewUpdateCurrencyHandler creates a new UpdateCurrencyHandler.
func NewUpdateCurrencyHandler(op actionProcessor) *UpdateCurrencyHandler {
	return &UpdateCurrencyHandler{Operator: op}
}

// Register registers the update currency endpoint with the Huma API.
func (h *UpdateCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-currency",
		Method:      http.MethodPut,
		Path:        "/v1/currency/{id}",
		Summary:     "Update currency rate",
		Description: "Changes a currency's EUR rate. Administrator only; EUR itself is fixed.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func (h *UpdateCurrencyHandler) handle(ctx context.Context, input *UpdateCurrencyInput) (*UpdateCurrencyOutput, error) {
	if !input.IsAdministrator() {
		return nil, huma.NewError(http.StatusForbidden, "administrator role required")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currency id", err)
	}
	valueToEur, err := decimal.NewFromString(input.Body.ValueToEur)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid valueToEur", err)
	}

	action := &actions.UpdateCurrencyRate{
		CurrencyID: id,
		ValueToEur: valueToEur,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to update currency")
	}

	return &UpdateCurrencyOutput{Status: http.StatusNoContent}, nil
}

// DeleteCurrencyInput is the Huma input for deleting a currency.
type DeleteCurrencyInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Currency UUID"`
}

// DeleteCurrencyOutput is the Huma output for deleting a currency.
type DeleteCurrencyOutput struct {
	Status int
}

// DeleteCurrencyHandler handles DELETE /v1/currency/{id}.
type DeleteCurrencyHandler struct {
	Operator actionProcessor
}

// NewDeleteCurrencyHandler creates a new DeleteCurrencyHandler.
func NewDeleteCurrencyHandler(op actionProcessor) *DeleteCurrencyHandler {
	return &DeleteCurrencyHandler{Operator: op}
}

// Register registers the delete currency endpoint with the Huma API.
func (h *DeleteCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-currency",
		Method:      http.MethodDelete,
		Path:        "/v1/currency/{id}",
		Summary:     "Delete currency",
		Description: "Removes an unreferenced currency from the catalog. Administrator only; EUR cannot be deleted.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func (h *DeleteCurrencyHandler) handle(ctx context.Context, input *DeleteCurrencyInput) (*DeleteCurrencyOutput, error) {
	if !input.IsAdministrator() {
		return nil, huma.NewError(http.StatusForbidden, "administrator role required")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currency id", err)
	}

	action := &actions.DeleteCurrency{CurrencyID: id}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to delete currency")
	}

	return &DeleteCurrencyOutput{Status: http.StatusNoContent}, nil
}
