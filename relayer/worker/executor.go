package worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tidwall/gjson"

	"github.com/GPTx-global/pricefeed/relayer/config"
	"github.com/GPTx-global/pricefeed/relayer/retry"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

var (
	once       sync.Once
	httpClient *http.Client
)

func executorClient() *http.Client {
	once.Do(func() {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        1000,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
				MaxConnsPerHost:     200,
				WriteBufferSize:     32 * 1024,
				ReadBufferSize:      32 * 1024,
			},
		}
	})

	return httpClient
}

// Fetcher reads USD prices from the configured sources and converts them
// into on-chain rates.
type Fetcher struct {
	cfg   config.Config
	retry retry.Config
}

func NewFetcher(cfg config.Config, retryCfg retry.Config) *Fetcher {
	return &Fetcher{cfg: cfg, retry: retryCfg}
}

// Fetch returns the current rate of symbol in 1e9 fixed point.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) (uint64, error) {
	if symbol == pricefeedtypes.USD {
		return pricefeedtypes.E9, nil
	}

	source, ok := f.cfg.Source(symbol)
	if !ok {
		return 0, fmt.Errorf("no price source for %s", symbol)
	}

	var rate uint64
	err := retry.Do(ctx, f.retry, func() error {
		body, err := fetchRawData(ctx, source.URL)
		if err != nil {
			return err
		}

		rate, err = extractRate(body, source.Path)
		return retry.Permanent(err)
	}, retry.DefaultIsRetryable)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", symbol, err)
	}

	return rate, nil
}

func fetchRawData(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("User-Agent", "Price-Relayer/1.0")
	req.Header.Set("Accept", "application/json")

	res, err := executorClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw data: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %s (%s)", res.Status, string(body))
		if res.StatusCode >= http.StatusInternalServerError {
			return nil, err
		}
		return nil, retry.Permanent(err)
	}

	return body, nil
}

// extractRate reads the price at path and scales it into a rate. Numbers
// and numeric strings are both accepted.
func extractRate(body []byte, path string) (uint64, error) {
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("response is not valid JSON")
	}

	result := gjson.GetBytes(body, path)
	if !result.Exists() {
		return 0, fmt.Errorf("path %s not found", path)
	}

	var raw string
	switch result.Type {
	case gjson.Number:
		raw = result.Raw
	case gjson.String:
		raw = result.Str
	default:
		return 0, fmt.Errorf("value at %s is not a number: %s", path, result.Raw)
	}

	price, err := sdk.NewDecFromStr(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", raw, err)
	}

	return pricefeedtypes.RateFromDec(price)
}
