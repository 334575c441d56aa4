package http

import (
	"net/http"

	"libris-backend/internal/service"
)

// BookHandler exposes the read-only catalog view: copy counts for the UI and
// the reporting consumer. Catalog record management is not served here.
type BookHandler struct {
	svc service.CatalogService
}

func NewBookHandler(svc service.CatalogService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.svc.GetBook(r.Context(), bookID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	books, total, err := h.svc.ListBooks(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"books": books, "total": total})
}
