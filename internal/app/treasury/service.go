package treasury

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jbertovic/us-treasury-yield/internal/pkg/model"
	"go.uber.org/zap"
)

// MinYear is the first year with published daily par yield data.
const MinYear = 1990

// Fetcher supplies one year's worth of raw curve CSV text.
type Fetcher interface {
	FetchYearCSV(ctx context.Context, year int) (string, error)
}

// Service answers curve queries by fetching yearly CSV payloads through a
// Fetcher and parsing them into immutable histories. It holds no state across
// calls; concurrent use needs no locking.
type Service struct {
	fetcher Fetcher
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a Service to its fetch collaborator. The clock defaults to
// time.Now; tests override it with WithClock.
func NewService(fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for current-year bounds checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// FetchYear downloads and parses one calendar year of daily curves. The year
// is validated against [MinYear, current year] before any fetch happens.
func (s *Service) FetchYear(ctx context.Context, year int) (model.History, error) {
	if year < MinYear || year > s.now().UTC().Year() {
		return model.History{}, &model.InvalidYearError{Year: year}
	}

	csvText, err := s.fetcher.FetchYearCSV(ctx, year)
	if err != nil {
		return model.History{}, err
	}

	history, err := parseHistory(csvText)
	if err != nil {
		return model.History{}, fmt.Errorf("parsing year %d: %w", year, err)
	}
	s.logger.Debug("built curve history", zap.Int("year", year), zap.Int("days", history.Len()))
	return history, nil
}

// FetchLatest returns the most recently published curve. Early in January the
// current year may have no published rows yet; in that case the previous year
// is tried once.
func (s *Service) FetchLatest(ctx context.Context) (civil.Date, model.Curve, error) {
	year := s.now().UTC().Year()
	history, err := s.FetchYear(ctx, year)
	if errors.Is(err, model.ErrNoData) && year > MinYear {
		s.logger.Debug("current year has no published curves yet, trying previous", zap.Int("year", year))
		history, err = s.FetchYear(ctx, year-1)
	}
	if err != nil {
		return civil.Date{}, model.Curve{}, err
	}
	date, curve := history.Latest()
	return date, curve, nil
}

// FetchDate returns the curve for one calendar date, falling back to the
// closest earlier trading day on weekends and holidays.
func (s *Service) FetchDate(ctx context.Context, date civil.Date) (civil.Date, model.Curve, error) {
	history, err := s.FetchYear(ctx, date.Year)
	if err != nil {
		return civil.Date{}, model.Curve{}, err
	}
	return history.AsOf(date)
}
