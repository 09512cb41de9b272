package api

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Mrigankar1134/DBProject/internal/dashboard"
	"github.com/Mrigankar1134/DBProject/internal/models"
	"github.com/Mrigankar1134/DBProject/internal/utils"
)

type reportStore interface {
	GetMonthlySales(ctx context.Context) ([]*models.MonthlySales, error)
	GetProductSales(ctx context.Context) ([]*models.ProductSales, error)
	GetCustomerGender(ctx context.Context) ([]*models.GenderCount, error)
	GetPaymentMethods(ctx context.Context) ([]*models.PaymentMethodCount, error)
}

type DashboardHandler struct {
	DB       reportStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewDashboardHandler(db reportStore, infoLog, errorLog *log.Logger) *DashboardHandler {
	return &DashboardHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// MonthlySales returns sales totals grouped by calendar month. Months with no
// transactions are absent; the dashboard zero-fills them.
// Example: GET /api/monthly-sales
func (h *DashboardHandler) MonthlySales(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.GetMonthlySales(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_MonthlySales:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, rows)
}

// ProductSales returns sales totals grouped by product line.
// Example: GET /api/product-sales
func (h *DashboardHandler) ProductSales(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.GetProductSales(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_ProductSales:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, rows)
}

// CustomerGender returns customer counts grouped by gender.
// Example: GET /api/customer-gender
func (h *DashboardHandler) CustomerGender(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.GetCustomerGender(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_CustomerGender:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, rows)
}

// PaymentMethods returns sales counts grouped by payment method.
// Example: GET /api/payment-methods
func (h *DashboardHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.GetPaymentMethods(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_PaymentMethods:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, rows)
}

// Insights runs all four aggregations concurrently and returns the reshaped
// chart series plus the derived scalar insights in one payload. If any of the
// four queries fails the whole request fails; no partial dashboard.
// Example: GET /api/insights
func (h *DashboardHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var ov dashboard.Overview

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		ov.MonthlySales, err = h.DB.GetMonthlySales(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.ProductSales, err = h.DB.GetProductSales(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.CustomerGender, err = h.DB.GetCustomerGender(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ov.PaymentMethods, err = h.DB.GetPaymentMethods(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.errorLog.Println("ERROR_Insights:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dashboard.Build(&ov))
}
