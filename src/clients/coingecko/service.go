package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coindash/src/config"
	"coindash/src/utils/requests"

	"github.com/sethvargo/go-retry"
)

// ErrRateLimited is returned when the provider answers 429. Callers fall
// back to cached data instead of retrying further.
var ErrRateLimited = errors.New("market data provider rate limit exceeded")

type CoinGeckoServiceClientI interface {
	GetMarkets(ctx context.Context, ids []string, vsCurrency string) ([]MarketData, error)
	GetMarketChart(ctx context.Context, id, vsCurrency string, days int) (*MarketChartResponse, error)
}

type CoinGeckoServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

// NewClient creates a new instance of CoinGeckoServiceClient
func NewClient(cfg *config.Config) *CoinGeckoServiceClient {
	api := requests.NewExternalAPIService()
	return &CoinGeckoServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.CryptoAPI.BaseURL,
		APIKey:  cfg.ExternalClients.CryptoAPI.APIKey,
	}
}

func (c *CoinGeckoServiceClient) headers() map[string]string {
	if c.APIKey == "" {
		return nil
	}
	return map[string]string{"x-cg-demo-api-key": c.APIKey}
}

// getJSON performs a GET with exponential backoff on transient failures.
// 429 aborts immediately with ErrRateLimited; backing off and hammering the
// provider again is what the cache layer is there to avoid.
func (c *CoinGeckoServiceClient) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.API.Get(ctx, endpoint, params, c.headers())
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return ErrRateLimited
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("provider returned status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("provider returned status %d", resp.StatusCode)
		}

		responseBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return json.Unmarshal(responseBody, out)
	})
}

// GetMarkets fetches current market data for the given coin ids.
func (c *CoinGeckoServiceClient) GetMarkets(ctx context.Context, ids []string, vsCurrency string) ([]MarketData, error) {
	endpoint := fmt.Sprintf("%s/coins/markets", c.BaseURL)

	params := url.Values{}
	params.Add("ids", strings.Join(ids, ","))
	params.Add("vs_currency", vsCurrency)

	var markets []MarketData
	if err := c.getJSON(ctx, endpoint, params, &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

// GetMarketChart fetches the historical price series for one coin.
func (c *CoinGeckoServiceClient) GetMarketChart(ctx context.Context, id, vsCurrency string, days int) (*MarketChartResponse, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart", c.BaseURL, id)

	params := url.Values{}
	params.Add("vs_currency", vsCurrency)
	params.Add("days", fmt.Sprintf("%d", days))

	var chart MarketChartResponse
	if err := c.getJSON(ctx, endpoint, params, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}
