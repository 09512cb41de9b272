package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

func TestZeroFillMonths(t *testing.T) {
	rows := []*models.MonthlySales{
		{Month: 1, TotalSales: 100},
		{Month: 3, TotalSales: 50},
		{Month: 12, TotalSales: 25},
	}

	buckets := ZeroFillMonths(rows)

	assert.Equal(t, 100.0, buckets[0])
	assert.Equal(t, 0.0, buckets[1])
	assert.Equal(t, 50.0, buckets[2])
	assert.Equal(t, 25.0, buckets[11])
}

func TestZeroFillMonthsDropsOutOfRange(t *testing.T) {
	rows := []*models.MonthlySales{
		{Month: 0, TotalSales: 10},
		{Month: 13, TotalSales: 20},
		{Month: 6, TotalSales: 30},
		nil,
	}

	buckets := ZeroFillMonths(rows)

	total := 0.0
	for _, v := range buckets {
		total += v
	}
	assert.Equal(t, 30.0, total)
}

func TestComputeInsights(t *testing.T) {
	var buckets [12]float64
	buckets[0] = 100
	buckets[2] = 50

	got := ComputeInsights(buckets)

	assert.Equal(t, 150.0, got.TotalSales)
	assert.Equal(t, 12.5, got.AverageSales)
	assert.Equal(t, "Jan", got.BestMonth)
}

func TestComputeInsightsAverageRounded(t *testing.T) {
	var buckets [12]float64
	buckets[4] = 100 // 100/12 = 8.3333...

	got := ComputeInsights(buckets)

	assert.Equal(t, 8.33, got.AverageSales)
	assert.Equal(t, "May", got.BestMonth)
}

func TestComputeInsightsTieBreaksToEarliestMonth(t *testing.T) {
	var buckets [12]float64
	buckets[1] = 100
	buckets[4] = 100

	got := ComputeInsights(buckets)

	assert.Equal(t, "Feb", got.BestMonth)
}

func TestComputeInsightsAllZero(t *testing.T) {
	got := ComputeInsights([12]float64{})

	assert.Equal(t, 0.0, got.TotalSales)
	assert.Equal(t, 0.0, got.AverageSales)
	assert.Equal(t, "Jan", got.BestMonth)
}

func TestBuild(t *testing.T) {
	ov := &Overview{
		MonthlySales: []*models.MonthlySales{
			{Month: 2, TotalSales: 200},
		},
		ProductSales: []*models.ProductSales{
			{ProductLine: "Beverages", TotalSales: 120},
			{ProductLine: "Snacks", TotalSales: 80},
		},
		CustomerGender: []*models.GenderCount{
			{Gender: "Female", Count: 6},
			{Gender: "Male", Count: 4},
		},
		PaymentMethods: []*models.PaymentMethodCount{
			{PaymentMethod: "Cash", Count: 7},
		},
	}

	d := Build(ov)

	assert.Equal(t, MonthLabels, d.MonthlySales.Labels)
	assert.Len(t, d.MonthlySales.Values, 12)
	assert.Equal(t, 200.0, d.MonthlySales.Values[1])

	assert.Equal(t, []string{"Beverages", "Snacks"}, d.ProductSales.Labels)
	assert.Equal(t, []float64{120, 80}, d.ProductSales.Values)

	assert.Equal(t, []string{"Female", "Male"}, d.CustomerGender.Labels)
	assert.Equal(t, []float64{6, 4}, d.CustomerGender.Values)

	assert.Equal(t, []string{"Cash"}, d.PaymentMethods.Labels)
	assert.Equal(t, []float64{7}, d.PaymentMethods.Values)

	assert.Equal(t, 200.0, d.Insights.TotalSales)
	assert.Equal(t, "Feb", d.Insights.BestMonth)
}
