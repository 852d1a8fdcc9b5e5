package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/MKhiriev/go-catalog-admin/models"
	"github.com/go-resty/resty/v2"
)

// Collections lists the route segments the API serves.
var Collections = []string{"categories", "products", "users"}

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/REST implementation of
// [CatalogAdapter]. It normalises and validates address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPCatalogAdapter(address string, timeout time.Duration, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCatalogAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CatalogAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpCatalogAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [CatalogAdapter].
func (h *httpCatalogAdapter) Token() string {
	return h.token
}

// Login implements [CatalogAdapter]. It POSTs credentials to
// /api/auth/login and stores the token of the returned session.
func (h *httpCatalogAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&session).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(session.Token)
	h.logger.Debug().Int64("id", session.User.UserID).Msg("logged in")
	return session, nil
}

// Version implements [CatalogAdapter].
func (h *httpCatalogAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

// List implements [CatalogAdapter]. It GETs /api/{collection}.
func (h *httpCatalogAdapter) List(ctx context.Context, collection string) ([]Record, error) {
	path, err := collectionPath(collection)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	records := []Record{}
	if err = decodeBody(resp, &records); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return records, nil
}

// Get implements [CatalogAdapter]. It GETs /api/{collection}/{id}.
func (h *httpCatalogAdapter) Get(ctx context.Context, collection string, id int64) (Record, error) {
	path, err := recordPath(collection, id)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return recordFromResponse(resp)
}

// Create implements [CatalogAdapter]. It POSTs payload to /api/{collection}.
func (h *httpCatalogAdapter) Create(ctx context.Context, collection string, payload map[string]any) (Record, error) {
	path, err := collectionPath(collection)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return recordFromResponse(resp)
}

// Update implements [CatalogAdapter]. It PUTs payload to
// /api/{collection}/{id}.
func (h *httpCatalogAdapter) Update(ctx context.Context, collection string, id int64, payload map[string]any) (Record, error) {
	path, err := recordPath(collection, id)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		Put(path)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	return recordFromResponse(resp)
}

// Delete implements [CatalogAdapter]. It sends DELETE /api/{collection}/{id}.
func (h *httpCatalogAdapter) Delete(ctx context.Context, collection string, id int64) error {
	path, err := recordPath(collection, id)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request bound to ctx that carries the stored
// bearer token, if any.
func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func collectionPath(collection string) (string, error) {
	for _, known := range Collections {
		if collection == known {
			return "/api/" + collection, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
}

func recordPath(collection string, id int64) (string, error) {
	path, err := collectionPath(collection)
	if err != nil {
		return "", err
	}
	return path + "/" + strconv.FormatInt(id, 10), nil
}

func recordFromResponse(resp *resty.Response) (Record, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var record Record
	if err := decodeBody(resp, &record); err != nil {
		return nil, fmt.Errorf("decode record response: %w", err)
	}
	return record, nil
}

// decodeBody decodes the response body keeping numbers as json.Number so
// that ids survive the round trip exactly.
func decodeBody(resp *resty.Response, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(resp.Body()))
	decoder.UseNumber()
	return decoder.Decode(dst)
}
