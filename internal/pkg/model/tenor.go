package model

// Tenor identifies one maturity on the daily US Treasury par yield curve.
// Its value is the exact column label used by the published CSVs.
type Tenor string

const (
	Tenor1Month  Tenor = "1 Mo"
	Tenor2Months Tenor = "2 Mo"
	Tenor3Months Tenor = "3 Mo"
	Tenor4Months Tenor = "4 Mo"
	Tenor6Months Tenor = "6 Mo"
	Tenor1Year   Tenor = "1 Yr"
	Tenor2Years  Tenor = "2 Yr"
	Tenor3Years  Tenor = "3 Yr"
	Tenor5Years  Tenor = "5 Yr"
	Tenor7Years  Tenor = "7 Yr"
	Tenor10Years Tenor = "10 Yr"
	Tenor20Years Tenor = "20 Yr"
	Tenor30Years Tenor = "30 Yr"
)

// NumTenors is the width of a full curve.
const NumTenors = 13

// Tenors lists every supported maturity, shortest first. This is the canonical
// slot order for all curve storage; CSV headers may carry any subset of these
// labels in any column order.
var Tenors = [NumTenors]Tenor{
	Tenor1Month, Tenor2Months, Tenor3Months, Tenor4Months, Tenor6Months,
	Tenor1Year, Tenor2Years, Tenor3Years, Tenor5Years, Tenor7Years,
	Tenor10Years, Tenor20Years, Tenor30Years,
}

// TenorIndex returns the canonical slot for a column label. The second return
// is false when the label is not a supported maturity.
func TenorIndex(label string) (int, bool) {
	for i, t := range Tenors {
		if string(t) == label {
			return i, true
		}
	}
	return 0, false
}
