package treasury

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jbertovic/us-treasury-yield/internal/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// DefaultBaseURL is the daily-rates CSV endpoint of the US Treasury website.
const DefaultBaseURL = "https://home.treasury.gov/resource-center/data-chart-center/interest-rates/daily-treasury-rates.csv"

var _ Fetcher = &HTTPFetcher{}

// HTTPFetcher downloads yearly curve CSVs from the treasury website. It never
// retries; every failure surfaces as a FetchError and retrying is up to the
// caller.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPFetcher builds a fetcher against baseURL, or DefaultBaseURL when
// baseURL is empty.
func NewHTTPFetcher(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchYearCSV issues one GET for the given year and returns the body decoded
// to UTF-8.
func (f *HTTPFetcher) FetchYearCSV(ctx context.Context, year int) (string, error) {
	url := fmt.Sprintf("%s/%d/all?type=daily_treasury_yield_curve&page&_format=csv", f.baseURL, year)
	f.logger.Debug("fetching yearly curve csv", zap.Int("year", year), zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	// the endpoint declares its charset in the content type
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &model.FetchError{URL: url, Err: err}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: err}
	}

	f.logger.Debug("fetched yearly curve csv", zap.Int("year", year), zap.Int("bytes", len(body)))
	return string(body), nil
}
