package api

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mrigankar1134/DBProject/internal/models"
	"github.com/Mrigankar1134/DBProject/internal/utils"
)

type saleStore interface {
	ListSales(ctx context.Context) ([]*models.Sale, error)
	InsertSale(ctx context.Context, s *models.Sale) error
	UpdateSale(ctx context.Context, invoiceID string, s *models.Sale) error
	DeleteSale(ctx context.Context, invoiceID string) error
}

type SaleHandler struct {
	DB       saleStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewSaleHandler(db saleStore, infoLog, errorLog *log.Logger) *SaleHandler {
	return &SaleHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// ListSales fetches all sales rows.
// Example: GET /api/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.DB.ListSales(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_ListSales:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, sales)
}

// AddSale creates one sales row and echoes it back with the generated id.
// Example: POST /api/sales
func (h *SaleHandler) AddSale(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := utils.ReadJSON(w, r, &sale); err != nil {
		h.errorLog.Println("ERROR_AddSale:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.InsertSale(r.Context(), &sale); err != nil {
		h.errorLog.Println("ERROR_AddSale:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, sale)
}

// UpdateSale updates the row matching the invoice id in the path.
// Example: PUT /api/sales/{id}
func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var sale models.Sale
	if err := utils.ReadJSON(w, r, &sale); err != nil {
		h.errorLog.Println("ERROR_UpdateSale:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.UpdateSale(r.Context(), id, &sale); err != nil {
		h.errorLog.Println("ERROR_UpdateSale:", err)
		utils.ServerError(w, err)
		return
	}

	sale.InvoiceID = id
	utils.WriteJSON(w, http.StatusOK, sale)
}

// DeleteSale removes the row matching the invoice id in the path.
// Example: DELETE /api/sales/{id}
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DB.DeleteSale(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_DeleteSale:", err)
		utils.ServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
