package allocation

// Ratio is a user's historical allocated/requested proportion. Known is
// false when the user has no qualifying history in the lookback window; a
// substitute value is drawn for them after all known ratios are collected,
// so "undefined" is an explicit state rather than a sentinel value.
type Ratio struct {
	value float64
	known bool
}

func KnownRatio(value float64) Ratio {
	return Ratio{value: value, known: true}
}

func UnknownRatio() Ratio {
	return Ratio{}
}

func (r Ratio) Known() bool {
	return r.known
}

// Value is only meaningful when Known reports true.
func (r Ratio) Value() float64 {
	return r.value
}
