package models

import (
	"time"
)

const (
	APPName    = "Supermarket Dashboard"
	APPVersion = "1.0"
)

// Resource names as they appear in API paths and browser tabs.
const (
	RESOURCE_CUSTOMERS  = "customers"
	RESOURCE_BRANCHES   = "branches"
	RESOURCE_PRODUCTS   = "products"
	RESOURCE_SALES      = "sales"
	RESOURCE_FINANCIALS = "financials"
)

// Response is the type for generic API responses
type Response struct {
	Error   bool   `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Customer holds one row of the Customers table. Customer_ID is a
// user-supplied code, not a generated key.
type Customer struct {
	CustomerID   string `json:"Customer_ID"`
	CustomerType string `json:"Customer_Type"`
	Gender       string `json:"Gender"`
}

// Branch holds one row of the Branches table. ID is generated by the database.
type Branch struct {
	ID     int64  `json:"ID"`
	Branch string `json:"Branch"`
	City   string `json:"City"`
}

// Product holds one row of the Products table.
type Product struct {
	ProductID   int64   `json:"Product_ID"`
	ProductLine string  `json:"Product_Line"`
	UnitPrice   float64 `json:"Unit_Price"`
}

// Sale holds one row of the Sales table. Invoice_ID links the sale to its
// Financials row; Branch_ID and Product_ID are foreign keys.
type Sale struct {
	ID              int64     `json:"ID"`
	InvoiceID       string    `json:"Invoice_ID"`
	TransactionDate time.Time `json:"Transaction_Date"`
	TotalAmount     float64   `json:"Total_Amount"`
	ProductID       int64     `json:"Product_ID"`
	BranchID        int64     `json:"Branch_ID"`
	PaymentMethod   string    `json:"Payment_Method"`
}

// Financial holds one row of the Financials table, keyed by Invoice_ID rather
// than a generated id.
type Financial struct {
	ID                    int64   `json:"ID"`
	InvoiceID             string  `json:"Invoice_ID"`
	COGS                  float64 `json:"COGS"`
	GrossMarginPercentage float64 `json:"Gross_Margin_Percentage"`
	GrossIncome           float64 `json:"Gross_Income"`
	CustomerRating        float64 `json:"Customer_Rating"`
}
