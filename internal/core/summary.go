package core

// MonthSummary is a compact summary for a specific year+month.
type MonthSummary struct {
	Year    int
	Month   int // 1-12
	Income  Won
	Expense Won
	// ByOwner sums expenses per partner.
	ByOwner map[Owner]Won
}

// Balance is income minus expenses.
func (s MonthSummary) Balance() Won {
	return s.Income - s.Expense
}

// Summarize totals the entries of one month.
func Summarize(year, month int, entries []Entry) MonthSummary {
	s := MonthSummary{Year: year, Month: month, ByOwner: map[Owner]Won{}}
	for _, e := range entries {
		switch e.Kind {
		case Income:
			s.Income += e.Amount
		case Expense:
			s.Expense += e.Amount
			s.ByOwner[e.Owner] += e.Amount
		}
	}
	return s
}
