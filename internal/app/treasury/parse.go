package treasury

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jbertovic/us-treasury-yield/internal/pkg/model"
)

// dateLayout matches the first field of every data row, e.g. "07/07/2023".
const dateLayout = "01/02/2006"

// columnMask records which canonical maturity slots one file's header carries
// and which slot each value column feeds. The column set varies year to year;
// old files carry as few as ten maturities.
type columnMask struct {
	present [model.NumTenors]bool
	order   []int // canonical slot per value column, left to right
}

func (m columnMask) count() int { return len(m.order) }

// resolveColumns maps a header line's maturity labels to canonical slots. The
// first field is the date column and is skipped; the rest may be bare or
// double-quoted. Any label that is not a supported maturity aborts the parse;
// there is no best-effort mode.
func resolveColumns(headerLine string) (columnMask, error) {
	var mask columnMask
	fields := strings.Split(headerLine, ",")
	for _, f := range fields[1:] {
		label := strings.Trim(strings.TrimSpace(f), `"`)
		idx, ok := model.TenorIndex(label)
		if !ok {
			return columnMask{}, &model.MissingLabelError{Label: label}
		}
		mask.present[idx] = true
		mask.order = append(mask.order, idx)
	}
	return mask, nil
}

// decodeCurve converts one data row into a fixed-width curve. Slots whose
// maturity the header does not carry stay explicitly absent; every present
// column must hold a well-formed number.
func decodeCurve(line string, mask columnMask, lineNo int) (model.Curve, error) {
	values := strings.Split(line, ",")[1:]
	if len(values) != mask.count() {
		return model.Curve{}, &model.DecodeError{
			Line:  lineNo,
			Field: line,
			Err:   fmt.Errorf("%d value fields for %d maturity columns", len(values), mask.count()),
		}
	}
	var yields [model.NumTenors]model.Yield
	for col, f := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return model.Curve{}, &model.DecodeError{Line: lineNo, Field: f, Err: err}
		}
		yields[mask.order[col]] = model.Yield{Value: v, Valid: true}
	}
	return model.NewCurve(yields), nil
}

// decodeDate parses the leading MM/DD/YYYY field of a data row.
func decodeDate(line string, lineNo int) (civil.Date, error) {
	field := line
	if i := strings.IndexByte(line, ','); i >= 0 {
		field = line[:i]
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(field))
	if err != nil {
		return civil.Date{}, &model.DecodeError{Line: lineNo, Field: field, Err: err}
	}
	return civil.DateOf(t), nil
}

// parseHistory turns one year's raw CSV payload into a History. Row order in
// the payload is not assumed; the output is sorted most recent first. Any
// malformed row aborts the whole build.
func parseHistory(csvText string) (model.History, error) {
	lines := strings.Split(csvText, "\n")
	mask, err := resolveColumns(strings.TrimSpace(lines[0]))
	if err != nil {
		return model.History{}, err
	}

	var (
		dates  []civil.Date
		curves []model.Curve
	)
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNo := i + 2
		date, err := decodeDate(line, lineNo)
		if err != nil {
			return model.History{}, err
		}
		curve, err := decodeCurve(line, mask, lineNo)
		if err != nil {
			return model.History{}, err
		}
		dates = append(dates, date)
		curves = append(curves, curve)
	}

	sortCurvesByDateDesc(dates, curves)
	return model.NewHistory(dates, curves)
}

// sortCurvesByDateDesc reorders both slices in place, most recent date first.
func sortCurvesByDateDesc(dates []civil.Date, curves []model.Curve) {
	sort.Stable(byDateDesc{dates: dates, curves: curves})
}

// byDateDesc sorts a date slice and its paired curve slice together, most
// recent date first. The pairing is positional, so Swap permutes both.
type byDateDesc struct {
	dates  []civil.Date
	curves []model.Curve
}

func (s byDateDesc) Len() int           { return len(s.dates) }
func (s byDateDesc) Less(i, j int) bool { return s.dates[j].Before(s.dates[i]) }
func (s byDateDesc) Swap(i, j int) {
	s.dates[i], s.dates[j] = s.dates[j], s.dates[i]
	s.curves[i], s.curves[j] = s.curves[j], s.curves[i]
}
