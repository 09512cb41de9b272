package models

// Aggregate row types returned by the dashboard endpoints. Field names are part
// of the wire contract consumed by the charts, so the json tags are exact.

// MonthlySales is one grouped row of the monthly-sales aggregation. Month is
// the calendar month number (1-12); months with no transactions are absent.
type MonthlySales struct {
	Month      int     `json:"month"`
	TotalSales float64 `json:"total_sales"`
}

// ProductSales is one grouped row of the product-sales aggregation.
type ProductSales struct {
	ProductLine string  `json:"product_line"`
	TotalSales  float64 `json:"total_sales"`
}

// GenderCount is one grouped row of the customer-gender aggregation.
type GenderCount struct {
	Gender string `json:"Gender"`
	Count  int64  `json:"count"`
}

// PaymentMethodCount is one grouped row of the payment-method aggregation.
type PaymentMethodCount struct {
	PaymentMethod string `json:"payment_method"`
	Count         int64  `json:"count"`
}
