package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID         string `json:"id" doc:"Category UUID"`
	Name       string `json:"name" doc:"Category name"`
	Predefined bool   `json:"predefined" doc:"Seeded system category"`
}

func categoryFromService(c service.Category) Category {
	return Category{
		ID:         c.ID.String(),
		Name:       c.Name,
		Predefined: c.Predefined,
	}
}

// categoryReader is the interface for reading categories.
type categoryReader interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*service.Category, error)
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"All categories"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryReader
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryReader) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns every category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = categoryFromService(c)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}

// GetCategoryInput is the Huma input for fetching a category.
type GetCategoryInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

// GetCategoryOutput is the Huma output for fetching a category.
type GetCategoryOutput struct {
	Body Category
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	CategoryService categoryReader
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryReader) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get category",
		Description: "Returns one category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	c, err := h.CategoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get category")
	}

	return &GetCategoryOutput{Body: categoryFromService(*c)}, nil
}
