package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/simple-maps/cartes-go/internal/types"
)

// HTTPClient is the transport surface the endpoint functions need,
// kept as an interface for dependency injection in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// request describes one endpoint call before it hits the wire. The op
// string names the endpoint in every error the call can produce.
type request struct {
	op     string
	method string
	path   string      // joined onto the base URL
	query  interface{} // struct with url tags, encoded as the query string
	body   interface{} // JSON-marshalled as the request body when non-nil
	apiKey string      // sent as Authorization: Bearer when non-empty
}

// do executes r and returns the raw response body. A non-2xx status
// becomes *types.APIError carrying the body verbatim; failures below
// HTTP become *types.TransportError. Exactly one request is sent; no
// retry happens at any layer.
func do(ctx context.Context, hc HTTPClient, baseURL string, r request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &types.TransportError{Endpoint: r.op, Err: err}
	}

	u := baseURL + r.path
	if r.query != nil {
		vals, err := query.Values(r.query)
		if err != nil {
			return nil, fmt.Errorf("%s: encode query: %w", r.op, err)
		}
		if enc := vals.Encode(); enc != "" {
			u += "?" + enc
		}
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", r.op, err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", r.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, &types.TransportError{Endpoint: r.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.TransportError{Endpoint: r.op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.APIError{Endpoint: r.op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// decode unmarshals a 2xx body into out. Unknown fields from the
// service are ignored for forward compatibility; an undecodable body is
// reported as *types.MalformedResponseError.
func decode(op string, raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &types.MalformedResponseError{Endpoint: op, Reason: "undecodable body", Err: err}
	}
	return nil
}

// validMapID rejects map identifiers that are not UUIDs before they are
// interpolated into a request path.
func validMapID(mapID string) error {
	if mapID == "" {
		return types.MissingField("map_id", "map UUID is required")
	}
	if _, err := uuid.Parse(mapID); err != nil {
		return types.NewValidationError(types.FieldViolation{
			Field:   "map_id",
			Kind:    types.WrongType,
			Message: fmt.Sprintf("%q is not a UUID", mapID),
		})
	}
	return nil
}

// requireToken enforces that a resource token is present unless the
// caller authenticates with an API key, which the service accepts as
// the owner's alternative credential.
func requireToken(field, token, apiKey string) error {
	if token == "" && apiKey == "" {
		return types.MissingField(field, "a "+field+" or an API key is required")
	}
	return nil
}

// requireAPIKey guards endpoints that only work for authenticated users.
func requireAPIKey(apiKey string) error {
	if apiKey == "" {
		return types.MissingField("api_key", "an API key is required for this call")
	}
	return nil
}
