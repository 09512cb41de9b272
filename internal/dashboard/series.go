package dashboard

import (
	"github.com/samber/lo"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// Series is one chart-ready dataset: parallel label and value slices.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Overview bundles the raw row sets of the four aggregate endpoints.
type Overview struct {
	MonthlySales   []*models.MonthlySales       `json:"monthly_sales"`
	ProductSales   []*models.ProductSales       `json:"product_sales"`
	CustomerGender []*models.GenderCount        `json:"customer_gender"`
	PaymentMethods []*models.PaymentMethodCount `json:"payment_methods"`
}

// Dashboard is the fully reshaped view state: one series per chart plus the
// derived scalar insights.
type Dashboard struct {
	Insights       Insights `json:"insights"`
	MonthlySales   Series   `json:"monthly_sales"`
	ProductSales   Series   `json:"product_sales"`
	CustomerGender Series   `json:"customer_gender"`
	PaymentMethods Series   `json:"payment_methods"`
}

// Build reshapes the raw aggregate rows into chart series and computes the
// insights over the zero-filled monthly buckets.
func Build(ov *Overview) *Dashboard {
	buckets := ZeroFillMonths(ov.MonthlySales)

	return &Dashboard{
		Insights:       ComputeInsights(buckets),
		MonthlySales:   Series{Labels: MonthLabels, Values: buckets[:]},
		ProductSales:   productSeries(ov.ProductSales),
		CustomerGender: genderSeries(ov.CustomerGender),
		PaymentMethods: paymentSeries(ov.PaymentMethods),
	}
}

func productSeries(rows []*models.ProductSales) Series {
	return Series{
		Labels: lo.Map(rows, func(r *models.ProductSales, _ int) string { return r.ProductLine }),
		Values: lo.Map(rows, func(r *models.ProductSales, _ int) float64 { return r.TotalSales }),
	}
}

func genderSeries(rows []*models.GenderCount) Series {
	return Series{
		Labels: lo.Map(rows, func(r *models.GenderCount, _ int) string { return r.Gender }),
		Values: lo.Map(rows, func(r *models.GenderCount, _ int) float64 { return float64(r.Count) }),
	}
}

func paymentSeries(rows []*models.PaymentMethodCount) Series {
	return Series{
		Labels: lo.Map(rows, func(r *models.PaymentMethodCount, _ int) string { return r.PaymentMethod }),
		Values: lo.Map(rows, func(r *models.PaymentMethodCount, _ int) float64 { return float64(r.Count) }),
	}
}
