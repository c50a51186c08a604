package model

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// MaxForwardDays is how far past the last published trading day a requested
// date may lie and still resolve to the latest curve. It covers weekend and
// holiday publication lag, not arbitrary future dates.
const MaxForwardDays = 5

// History is one year's worth of daily curves, most recent first. It owns its
// slices exclusively and is immutable once built, so concurrent readers need
// no synchronization.
type History struct {
	dates  []civil.Date
	curves []Curve
}

// NewHistory assembles a History from paired slices already sorted with the
// most recent date first. It rejects empty input, mismatched lengths, and any
// date not strictly older than its predecessor, which also catches duplicate
// trading dates.
func NewHistory(dates []civil.Date, curves []Curve) (History, error) {
	if len(dates) != len(curves) {
		return History{}, fmt.Errorf("%d dates paired with %d curves", len(dates), len(curves))
	}
	if len(dates) == 0 {
		return History{}, ErrNoData
	}
	for i := 1; i < len(dates); i++ {
		if dates[i] == dates[i-1] {
			return History{}, &DuplicateDateError{Date: dates[i]}
		}
		if dates[i].After(dates[i-1]) {
			return History{}, fmt.Errorf("dates out of order: %s after %s", dates[i], dates[i-1])
		}
	}
	return History{dates: dates, curves: curves}, nil
}

// Len returns the number of trading days covered.
func (h History) Len() int { return len(h.dates) }

// At returns the i-th entry, most recent first.
func (h History) At(i int) (civil.Date, Curve) { return h.dates[i], h.curves[i] }

// Latest returns the most recently published curve.
func (h History) Latest() (civil.Date, Curve) { return h.dates[0], h.curves[0] }

// AsOf returns the curve published on the requested date, or on the closest
// earlier trading day when nothing was published that day (weekends,
// holidays). Dates up to MaxForwardDays past the latest publication resolve
// to the latest curve; anything further out, or older than the history
// itself, is out of range.
func (h History) AsOf(requested civil.Date) (civil.Date, Curve, error) {
	first, last := h.dates[0], h.dates[len(h.dates)-1]
	if requested.Before(last) || requested.After(first.AddDays(MaxForwardDays)) {
		return civil.Date{}, Curve{}, &OutsideDateRangeError{Date: requested}
	}
	i := h.closest(requested)
	return h.dates[i], h.curves[i], nil
}

// closest finds the requested date or the nearest trading day before it.
// Callers have already bounds-checked the request.
func (h History) closest(requested civil.Date) int {
	switch {
	case !requested.Before(h.dates[0]):
		return 0
	case !requested.After(h.dates[len(h.dates)-1]):
		return len(h.dates) - 1
	default:
		for i := 1; ; i++ {
			if !h.dates[i].After(requested) {
				return i
			}
		}
	}
}
