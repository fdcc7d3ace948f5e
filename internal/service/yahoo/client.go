package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"
)

// Client fetches daily close series from the Yahoo Finance chart API.
type Client struct {
	http    *xhttp.Client
	baseURL string
	rng     string
	log     *applogger.Logger
}

// NewClient creates a Yahoo price source from config.
func NewClient(cfg *config.Config, log *applogger.Logger) *Client {
	baseURL := cfg.Yahoo.BaseURL
	if baseURL == "" {
		baseURL = "https://query1.finance.yahoo.com"
	}
	rng := cfg.Yahoo.Range
	if rng == "" {
		rng = "1mo"
	}
	timeout := cfg.Yahoo.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithProxy(cfg.Yahoo.ProxyURL),
		),
		baseURL: baseURL,
		rng:     rng,
		log:     log,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDaily returns a daily close series per lookup key. Keys the provider
// has no data for are left out of the result rather than reported as errors.
func (c *Client) FetchDaily(ctx context.Context, keys []string) (map[string]models.PriceSeries, error) {
	out := make(map[string]models.PriceSeries, len(keys))
	for _, key := range keys {
		series, err := c.fetchChart(ctx, key)
		if err != nil {
			c.log.Warn("price fetch failed",
				applogger.String("key", key),
				applogger.Error(err),
			)
			continue
		}
		if len(series) > 0 {
			out[key] = series
		}
	}
	return out, nil
}

func (c *Client) fetchChart(ctx context.Context, key string) (models.PriceSeries, error) {
	var resp chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(key)),
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"range":    {c.rng},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart: no data for %s", key)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	series := make(models.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			// null bars on holidays and suspensions
			continue
		}
		day := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		series = append(series, models.PriceBar{
			Date:  day,
			Close: decimal.NewFromFloat(*closes[i]),
		})
	}
	return series, nil
}
