package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// BaseURL is the server address; "host:port" implies http.
	BaseURL string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Returns an error if cfg.BaseURL is empty or cannot be
// parsed as a URL with a host.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	a := &httpServerAdapter{logger: logger}
	a.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetError(&models.APIResponse{}).
		OnBeforeRequest(a.authorize).
		OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", errInvalidBaseURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", errInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authorize(_ *resty.Client, req *resty.Request) error {
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("shop api call")
	return nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.Account, error) {
	var result models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token := result.APIToken
	if token == "" {
		token = strings.TrimPrefix(resp.Header().Get("Authorization"), "Bearer ")
	}
	h.SetToken(token)

	return result.Account, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Account, error) {
	var result models.AccountResponse
	if err := h.get(ctx, "/auth/me", nil, &result); err != nil {
		return models.Account{}, err
	}
	return result.Account, nil
}

func (h *httpServerAdapter) DashboardData(ctx context.Context) (models.DashboardData, error) {
	var result models.DashboardResponse
	if err := h.get(ctx, "/dashboardData", nil, &result); err != nil {
		return models.DashboardData{}, err
	}
	return result.DashboardData, nil
}

func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := map[string]string{}
	if filter.VendorID > 0 {
		query["vendorId"] = strconv.FormatInt(filter.VendorID, 10)
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.FormatUint(filter.Limit, 10)
	}
	if filter.Offset > 0 {
		query["offset"] = strconv.FormatUint(filter.Offset, 10)
	}

	var result models.ProductsResponse
	if err := h.get(ctx, "/products", query, &result); err != nil {
		return nil, err
	}
	return result.Products, nil
}

func (h *httpServerAdapter) GetCart(ctx context.Context) (models.CartResponse, error) {
	var result models.CartResponse
	err := h.get(ctx, "/cart", nil, &result)
	return result, err
}

func (h *httpServerAdapter) AddCartItem(ctx context.Context, item models.CartItem) (models.CartResponse, error) {
	var result models.CartResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(item).
		SetResult(&result).
		Post("/cart/items")
	if err != nil {
		return models.CartResponse{}, fmt.Errorf("add cart item request: %w", err)
	}
	return result, mapHTTPError(resp)
}

func (h *httpServerAdapter) RemoveCartItem(ctx context.Context, productID int64) (models.CartResponse, error) {
	var result models.CartResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("productID", strconv.FormatInt(productID, 10)).
		SetResult(&result).
		Delete("/cart/items/{productID}")
	if err != nil {
		return models.CartResponse{}, fmt.Errorf("remove cart item request: %w", err)
	}
	return result, mapHTTPError(resp)
}

func (h *httpServerAdapter) ClearCart(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Delete("/cart")
	if err != nil {
		return fmt.Errorf("clear cart request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, query map[string]string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}
