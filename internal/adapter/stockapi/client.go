package stockapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/core/port"
)

var _ port.StockFetcher = (*Client)(nil)

const (
	stocksPath   = "/api/Cart/GetStocks"
	apiKeyHeader = "X-API-KEY"

	// Upstream calls are bounded by a fixed timeout, with no retry on expiry.
	lookupTimeout = 30 * time.Second
)

// A Client fetches stock data from the upstream POS API.
type Client struct {
	httpClient *http.Client
}

func New() Client {
	return Client{httpClient: &http.Client{}}
}

// FetchStocks issues one GET {baseURL}/api/Cart/GetStocks?productCode={code}
// with the X-API-KEY header and returns the raw response body. Any transport
// failure or non-2xx status comes back as [*domain.APIError].
func (c Client) FetchStocks(
	ctx context.Context, baseURL, apiKey, productCode string,
) ([]byte, error) {
	const op = "stockapi.Client.FetchStocks"

	reqURL, err := buildStocksURL(baseURL, productCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.APIError{Err: err})
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.APIError{Err: err})
	}
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.APIError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("unexpected status: %s", resp.Status)
		return nil, fmt.Errorf("%s: %w", op, &domain.APIError{Err: err})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.APIError{Err: err})
	}

	return body, nil
}

func buildStocksURL(baseURL, productCode string) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + stocksPath)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("productCode", productCode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
