package dashboard

import (
	"math"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// MonthLabels are the chart labels for the twelve monthly buckets.
var MonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Insights are the scalar cards shown above the charts.
type Insights struct {
	TotalSales   float64 `json:"total_sales"`
	AverageSales float64 `json:"average_sales"`
	BestMonth    string  `json:"best_month"`
}

// ZeroFillMonths spreads the grouped monthly rows over a full 12-month range.
// Months absent from the input stay at 0; rows with an out-of-range month
// number are dropped.
func ZeroFillMonths(rows []*models.MonthlySales) [12]float64 {
	var buckets [12]float64
	for _, row := range rows {
		if row == nil || row.Month < 1 || row.Month > 12 {
			continue
		}
		buckets[row.Month-1] = row.TotalSales
	}
	return buckets
}

// ComputeInsights derives the scalar insights from the zero-filled buckets:
// total is the sum over all twelve, average is total/12, and best month is the
// earliest month attaining the maximum value. Totals and averages are rounded
// to two decimal places to match the cards.
func ComputeInsights(buckets [12]float64) Insights {
	total := 0.0
	best := 0
	for i, v := range buckets {
		total += v
		if v > buckets[best] {
			best = i
		}
	}
	return Insights{
		TotalSales:   round2(total),
		AverageSales: round2(total / 12),
		BestMonth:    MonthLabels[best],
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
