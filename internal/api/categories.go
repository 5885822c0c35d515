package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/simple-maps/cartes-go/internal/types"
)

// CategoryList retrieves all available categories.
func CategoryList(ctx context.Context, hc HTTPClient, baseURL, apiKey string) ([]types.Category, error) {
	const op = "list categories"
	raw, err := do(ctx, hc, baseURL, request{op: op, method: http.MethodGet, path: "/categories", apiKey: apiKey})
	if err != nil {
		return nil, err
	}
	var cats []types.Category
	if err := decode(op, raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CategorySearch matches categories by name.
func CategorySearch(ctx context.Context, hc HTTPClient, baseURL, q, apiKey string) ([]types.Category, error) {
	const op = "search categories"
	if q == "" {
		return nil, types.MissingField("q", "a search query is required")
	}
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodGet,
		path:   "/categories/search",
		query: struct {
			Q string `url:"q"`
		}{q},
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var cats []types.Category
	if err := decode(op, raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoryRelated retrieves categories related to the given category.
func CategoryRelated(ctx context.Context, hc HTTPClient, baseURL string, categoryID int64, apiKey string) ([]types.Category, error) {
	const op = "related categories"
	raw, err := do(ctx, hc, baseURL, request{
		op:     op,
		method: http.MethodGet,
		path:   "/categories/" + strconv.FormatInt(categoryID, 10) + "/related",
		apiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	var cats []types.Category
	if err := decode(op, raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
