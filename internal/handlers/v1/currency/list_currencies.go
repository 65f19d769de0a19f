package currency

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
)

// ListCurrenciesOutput is the Huma output for listing currencies.
type ListCurrenciesOutput struct {
	Body ListCurrenciesResponseBody
}

// ListCurrenciesResponseBody is the response body for listing currencies.
type ListCurrenciesResponseBody struct {
	Currencies []Currency `json:"currencies" doc:"The whole currency catalog"`
}

// ListCurrenciesHandler handles GET /v1/currency.
type ListCurrenciesHandler struct {
	CurrencyService currencyReader
}

// NewListCurrenciesHandler creates a new ListCurrenciesHandler.
func NewListCurrenciesHandler(svc currencyReader) *ListCurrenciesHandler {
	return &ListCurrenciesHandler{CurrencyService: svc}
}

// Register registers the list currencies endpoint with the Huma API.
func (h *ListCurrenciesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-currencies",
		Method:      http.MethodGet,
		Path:        "/v1/currency",
		Summary:     "List currencies",
		Description: "Returns the currency catalog.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func (h *ListCurrenciesHandler) handle(ctx context.Context, _ *struct{}) (*ListCurrenciesOutput, error) {
	currencies, err := h.CurrencyService.ListCurrencies(ctx)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to list currencies")
	}

	resp := ListCurrenciesResponseBody{Currencies: make([]Currency, len(currencies))}
	for i, c := range currencies {
		resp.Currencies[i] = currencyFromService(c)
	}

	return &ListCurrenciesOutput{Body: resp}, nil
}

// GetCurrencyInput is the Huma input for fetching a currency.
type GetCurrencyInput struct {
	ID string `path:"id" format:"uuid" doc:"Currency UUID"`
}

// GetCurrencyOutput is the Huma output for fetching a currency.
type GetCurrencyOutput struct {
	Body Currency
}

// GetCurrencyHandler handles GET /v1/currency/{id}.
type GetCurrencyHandler struct {
	CurrencyService currencyReader
}

// NewGetCurrencyHandler creates a new GetCurrencyHandler.
func NewGetCurrencyHandler(svc currencyReader) *GetCurrencyHandler {
	return &GetCurrencyHandler{CurrencyService: svc}
}

// Register registers the get currency endpoint with the Huma API.
func (h *GetCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-currency",
		Method:      http.MethodGet,
		Path:        "/v1/currency/{id}",
		Summary:     "Get currency",
		Description: "Returns one currency.",
		Tags:        []string{"Currencies"},
	}, h.handle)
}

func (h *GetCurrencyHandler) handle(ctx context.Context, input *GetCurrencyInput) (*GetCurrencyOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currency id", err)
	}

	c, err := h.CurrencyService.GetCurrency(ctx, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get currency")
	}

	return &GetCurrencyOutput{Body: currencyFromService(*c)}, nil
}
