package browser

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// Field describes one column of a resource as the record browser renders it.
// Identifier marks the column used in update/delete paths; Hidden columns are
// suppressed from both the table and the edit form.
type Field struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Editable   bool   `json:"editable"`
	Identifier bool   `json:"identifier"`
	Hidden     bool   `json:"hidden"`
}

// Schema is the static declaration of one browsable resource. It replaces the
// old behavior of inferring columns from whatever keys the first fetched
// record happened to have.
type Schema struct {
	Resource  string  `json:"resource"`
	Title     string  `json:"title"`
	Fields    []Field `json:"fields"`
	CanDelete bool    `json:"can_delete"`
}

// schemas lists the five browsable resources in tab order. Delete is exposed
// in the UI only for branches and financials; the backend accepts deletes for
// every resource regardless.
var schemas = []Schema{
	{
		Resource: models.RESOURCE_CUSTOMERS,
		Title:    "Customers",
		Fields: []Field{
			{Name: "Customer_ID", Label: "Customer ID", Editable: true, Identifier: true},
			{Name: "Customer_Type", Label: "Customer Type", Editable: true},
			{Name: "Gender", Label: "Gender", Editable: true},
		},
	},
	{
		Resource: models.RESOURCE_BRANCHES,
		Title:    "Branches",
		Fields: []Field{
			{Name: "ID", Label: "ID", Identifier: true},
			{Name: "Branch", Label: "Branch", Editable: true},
			{Name: "City", Label: "City", Editable: true},
		},
		CanDelete: true,
	},
	{
		Resource: models.RESOURCE_PRODUCTS,
		Title:    "Products",
		Fields: []Field{
			{Name: "Product_ID", Label: "Product ID", Identifier: true},
			{Name: "Product_Line", Label: "Product Line", Editable: true},
			{Name: "Unit_Price", Label: "Unit Price", Editable: true},
		},
	},
	{
		Resource: models.RESOURCE_SALES,
		Title:    "Sales",
		Fields: []Field{
			{Name: "ID", Label: "ID", Hidden: true},
			{Name: "Invoice_ID", Label: "Invoice ID", Identifier: true},
			{Name: "Transaction_Date", Label: "Transaction Date", Editable: true},
			{Name: "Total_Amount", Label: "Total Amount", Editable: true},
			{Name: "Product_ID", Label: "Product ID", Editable: true},
			{Name: "Branch_ID", Label: "Branch ID", Editable: true},
			{Name: "Payment_Method", Label: "Payment Method", Editable: true},
		},
	},
	{
		Resource: models.RESOURCE_FINANCIALS,
		Title:    "Financials",
		Fields: []Field{
			{Name: "ID", Label: "ID", Hidden: true},
			{Name: "Invoice_ID", Label: "Invoice ID", Identifier: true},
			{Name: "COGS", Label: "COGS", Editable: true},
			{Name: "Gross_Margin_Percentage", Label: "Gross Margin %", Editable: true},
			{Name: "Gross_Income", Label: "Gross Income", Editable: true},
			{Name: "Customer_Rating", Label: "Customer Rating", Editable: true},
		},
		CanDelete: true,
	},
}

// Schemas returns the browsable resources in tab order.
func Schemas() []Schema {
	return schemas
}

// ForResource looks up the schema for a resource name.
func ForResource(name string) (Schema, bool) {
	return lo.Find(schemas, func(s Schema) bool { return s.Resource == name })
}

// Columns returns the fields rendered as table columns.
func (s Schema) Columns() []Field {
	return lo.Filter(s.Fields, func(f Field, _ int) bool { return !f.Hidden })
}

// FormFields returns the fields rendered in the shared add/edit form.
func (s Schema) FormFields() []Field {
	return lo.Filter(s.Fields, func(f Field, _ int) bool { return !f.Hidden && (f.Editable || f.Identifier) })
}

// identifierPriority is the fixed order edit submits try when picking the key
// for an update.
var identifierPriority = []string{"Invoice_ID", "Customer_ID", "Product_ID", "ID"}

// ResolveIdentifier picks the identifier value out of a record for an update
// or delete call: Invoice_ID first, then Customer_ID, Product_ID, and finally
// the generic ID. Returns false when no identifier field is present and
// non-empty.
func ResolveIdentifier(record map[string]any) (string, bool) {
	for _, key := range identifierPriority {
		v, ok := record[key]
		if !ok || v == nil {
			continue
		}
		var id string
		switch val := v.(type) {
		case string:
			id = val
		case float64:
			// JSON numbers decode as float64; ids are integral.
			id = fmt.Sprintf("%.0f", val)
		default:
			id = fmt.Sprintf("%v", val)
		}
		if id != "" {
			return id, true
		}
	}
	return "", false
}
