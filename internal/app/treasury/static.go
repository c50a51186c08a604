package treasury

import (
	"context"
	"fmt"

	"github.com/jbertovic/us-treasury-yield/internal/pkg/model"
	"go.uber.org/zap"
)

var _ Fetcher = &StaticFetcher{}

// StaticFetcher serves fixed CSV payloads keyed by year. Useful for
// development and tests where hitting the treasury website is not wanted.
type StaticFetcher struct {
	payloads map[int]string
	logger   *zap.Logger
}

func NewStaticFetcher(payloads map[int]string, logger *zap.Logger) *StaticFetcher {
	return &StaticFetcher{payloads: payloads, logger: logger}
}

func (s *StaticFetcher) FetchYearCSV(_ context.Context, year int) (string, error) {
	s.logger.Debug("serving static curve csv", zap.Int("year", year))
	csvText, ok := s.payloads[year]
	if !ok {
		url := fmt.Sprintf("static:%d", year)
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("no payload for year %d", year)}
	}
	return csvText, nil
}
