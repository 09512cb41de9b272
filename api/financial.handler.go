package api

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mrigankar1134/DBProject/internal/models"
	"github.com/Mrigankar1134/DBProject/internal/utils"
)

type financialStore interface {
	ListFinancials(ctx context.Context) ([]*models.Financial, error)
	InsertFinancial(ctx context.Context, f *models.Financial) error
	UpdateFinancial(ctx context.Context, invoiceID string, f *models.Financial) error
	DeleteFinancial(ctx context.Context, invoiceID string) error
}

type FinancialHandler struct {
	DB       financialStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewFinancialHandler(db financialStore, infoLog, errorLog *log.Logger) *FinancialHandler {
	return &FinancialHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// ListFinancials fetches all financial rows.
// Example: GET /api/financials
func (h *FinancialHandler) ListFinancials(w http.ResponseWriter, r *http.Request) {
	financials, err := h.DB.ListFinancials(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_ListFinancials:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, financials)
}

// AddFinancial creates one financial row and echoes it back with the
// generated id.
// Example: POST /api/financials
func (h *FinancialHandler) AddFinancial(w http.ResponseWriter, r *http.Request) {
	var financial models.Financial
	if err := utils.ReadJSON(w, r, &financial); err != nil {
		h.errorLog.Println("ERROR_AddFinancial:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.InsertFinancial(r.Context(), &financial); err != nil {
		h.errorLog.Println("ERROR_AddFinancial:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, financial)
}

// UpdateFinancial updates the row matching the invoice id in the path.
// Example: PUT /api/financials/{id}
func (h *FinancialHandler) UpdateFinancial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var financial models.Financial
	if err := utils.ReadJSON(w, r, &financial); err != nil {
		h.errorLog.Println("ERROR_UpdateFinancial:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.UpdateFinancial(r.Context(), id, &financial); err != nil {
		h.errorLog.Println("ERROR_UpdateFinancial:", err)
		utils.ServerError(w, err)
		return
	}

	financial.InvoiceID = id
	utils.WriteJSON(w, http.StatusOK, financial)
}

// DeleteFinancial removes the row matching the invoice id in the path.
// Example: DELETE /api/financials/{id}
func (h *FinancialHandler) DeleteFinancial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DB.DeleteFinancial(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_DeleteFinancial:", err)
		utils.ServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
