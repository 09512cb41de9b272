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

type branchStore interface {
	ListBranches(ctx context.Context) ([]*models.Branch, error)
	InsertBranch(ctx context.Context, b *models.Branch) error
	UpdateBranch(ctx context.Context, id int64, b *models.Branch) error
	DeleteBranch(ctx context.Context, id int64) error
}

type BranchHandler struct {
	DB       branchStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewBranchHandler(db branchStore, infoLog, errorLog *log.Logger) *BranchHandler {
	return &BranchHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// ListBranches fetches all branches.
// Example: GET /api/branches
func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.DB.ListBranches(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_ListBranches:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, branches)
}

// AddBranch creates one branch row and echoes it back with the generated id.
// Example: POST /api/branches
func (h *BranchHandler) AddBranch(w http.ResponseWriter, r *http.Request) {
	var branch models.Branch
	if err := utils.ReadJSON(w, r, &branch); err != nil {
		h.errorLog.Println("ERROR_AddBranch:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.InsertBranch(r.Context(), &branch); err != nil {
		h.errorLog.Println("ERROR_AddBranch:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, branch)
}

// UpdateBranch updates the row matching the path id.
// Example: PUT /api/branches/{id}
func (h *BranchHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorLog.Println("ERROR_UpdateBranch: invalid branch id")
		utils.BadRequest(w, errors.New("invalid branch id"))
		return
	}

	var branch models.Branch
	if err := utils.ReadJSON(w, r, &branch); err != nil {
		h.errorLog.Println("ERROR_UpdateBranch:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.UpdateBranch(r.Context(), id, &branch); err != nil {
		h.errorLog.Println("ERROR_UpdateBranch:", err)
		utils.ServerError(w, err)
		return
	}

	branch.ID = id
	utils.WriteJSON(w, http.StatusOK, branch)
}

// DeleteBranch removes the branch and every sales row referencing it. The
// cascade runs inside one transaction at the storage layer.
// Example: DELETE /api/branches/{id}
func (h *BranchHandler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorLog.Println("ERROR_DeleteBranch: invalid branch id")
		utils.BadRequest(w, errors.New("invalid branch id"))
		return
	}

	if err := h.DB.DeleteBranch(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_DeleteBranch:", err)
		utils.ServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
