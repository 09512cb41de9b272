package api

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mrigankar1134/DBProject/internal/models"
	"github.com/Mrigankar1134/DBProject/internal/utils"
)

type customerStore interface {
	ListCustomers(ctx context.Context, search string) ([]*models.Customer, error)
	InsertCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, customerID string, c *models.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

type CustomerHandler struct {
	DB       customerStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewCustomerHandler(db customerStore, infoLog, errorLog *log.Logger) *CustomerHandler {
	return &CustomerHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// ListCustomers fetches all customers, filtered by the optional search term.
// Example: GET /api/customers?search=Member
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	search := utils.GetURLParam(r, "search")

	customers, err := h.DB.ListCustomers(r.Context(), search)
	if err != nil {
		h.errorLog.Println("ERROR_ListCustomers:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, customers)
}

// AddCustomer creates one customer row.
// Example: POST /api/customers
func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := utils.ReadJSON(w, r, &customer); err != nil {
		h.errorLog.Println("ERROR_AddCustomer:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.InsertCustomer(r.Context(), &customer); err != nil {
		h.errorLog.Println("ERROR_AddCustomer:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, customer)
}

// UpdateCustomer updates the row matching the path id. The id column itself is
// not updatable.
// Example: PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var customer models.Customer
	if err := utils.ReadJSON(w, r, &customer); err != nil {
		h.errorLog.Println("ERROR_UpdateCustomer:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.UpdateCustomer(r.Context(), id, &customer); err != nil {
		h.errorLog.Println("ERROR_UpdateCustomer:", err)
		utils.ServerError(w, err)
		return
	}

	customer.CustomerID = id
	utils.WriteJSON(w, http.StatusOK, customer)
}

// DeleteCustomer removes the row matching the path id. Deleting a missing id
// succeeds silently.
// Example: DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DB.DeleteCustomer(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_DeleteCustomer:", err)
		utils.ServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
