package model

// Yield is a single par yield in percent. Valid is false when the maturity was
// not published for that trading day; an absent yield is never zero-filled.
type Yield struct {
	Value float64
	Valid bool
}

// Curve holds one trading day's published yields, one slot per entry in
// Tenors. A Curve never changes after construction, so it can be copied and
// read concurrently without locking.
type Curve struct {
	yields [NumTenors]Yield
}

// NewCurve builds a Curve from a full canonical-order slot array.
func NewCurve(yields [NumTenors]Yield) Curve {
	return Curve{yields: yields}
}

// Get looks up the yield for a column label, e.g. "10 Yr".
func (c Curve) Get(label string) (Yield, error) {
	idx, ok := TenorIndex(label)
	if !ok {
		return Yield{}, &MissingLabelError{Label: label}
	}
	return c.yields[idx], nil
}

// Yield returns the slot for a known maturity.
func (c Curve) Yield(t Tenor) Yield {
	idx, _ := TenorIndex(string(t))
	return c.yields[idx]
}
