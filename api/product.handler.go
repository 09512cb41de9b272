package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Mrigankar1134/DBProject/internal/models"
	"github.com/Mrigankar1134/DBProject/internal/utils"
)

type productStore interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	InsertProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, productID int64, p *models.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}

type ProductHandler struct {
	DB       productStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewProductHandler(db productStore, infoLog, errorLog *log.Logger) *ProductHandler {
	return &ProductHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// ListProducts fetches all products.
// Example: GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.DB.ListProducts(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_ListProducts:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, products)
}

// AddProduct creates one product row and echoes it back with the generated id.
// Example: POST /api/products
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := utils.ReadJSON(w, r, &product); err != nil {
		h.errorLog.Println("ERROR_AddProduct:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.InsertProduct(r.Context(), &product); err != nil {
		h.errorLog.Println("ERROR_AddProduct:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, product)
}

// UpdateProduct updates the row matching the path id.
// Example: PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorLog.Println("ERROR_UpdateProduct: invalid product id")
		utils.BadRequest(w, errors.New("invalid product id"))
		return
	}

	var product models.Product
	if err := utils.ReadJSON(w, r, &product); err != nil {
		h.errorLog.Println("ERROR_UpdateProduct:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.UpdateProduct(r.Context(), id, &product); err != nil {
		h.errorLog.Println("ERROR_UpdateProduct:", err)
		utils.ServerError(w, err)
		return
	}

	product.ProductID = id
	utils.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct removes the row matching the path id. The delete endpoint is
// live for every resource even when the browser hides the button.
// Example: DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorLog.Println("ERROR_DeleteProduct: invalid product id")
		utils.BadRequest(w, errors.New("invalid product id"))
		return
	}

	if err := h.DB.DeleteProduct(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_DeleteProduct:", err)
		utils.ServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
