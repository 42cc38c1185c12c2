package analytics

// MonthOverMonthChange compares expense totals of the two most recent
// months. months must be in chronological order as produced by
// MonthlyTotals. The percentage is positive when spending increased and
// negative when it decreased; interpreting that as good or bad is the
// presentation layer's call. ok is false when fewer than two months exist
// or the previous month's expense total is zero — an undefined result, not
// a zero.
func MonthOverMonthChange(months []MonthlyTotal) (change float64, ok bool) {
	if len(months) < 2 {
		return 0, false
	}
	current := months[len(months)-1].Expense
	previous := months[len(months)-2].Expense
	if previous == 0 {
		return 0, false
	}
	return float64(current-previous) / float64(previous) * 100, true
}

// AverageSavingsRate averages the per-month savings rate
// (income-expense)/income*100 over months with positive income. Months
// without income do not dilute the average. ok is false when no month has
// positive income.
func AverageSavingsRate(months []MonthlyTotal) (rate float64, ok bool) {
	var sum float64
	var counted int
	for _, m := range months {
		if m.Income <= 0 {
			continue
		}
		sum += float64(m.Income-m.Expense) / float64(m.Income) * 100
		counted++
	}
	if counted == 0 {
		return 0, false
	}
	return sum / float64(counted), true
}

// CumulativeBalance returns the running sum of each month's net
// (income minus expense), in the same chronological order as the input.
func CumulativeBalance(months []MonthlyTotal) []int64 {
	balances := make([]int64, len(months))
	var running int64
	for i, m := range months {
		running += m.Income - m.Expense
		balances[i] = running
	}
	return balances
}
