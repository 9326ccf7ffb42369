package handler

import (
	"net/http"

	"github.com/msomdec/complaint-tracker/internal/nav"
)

// NavHandler exposes the navigation view-model to the client.
type NavHandler struct {
	controller *nav.Controller
}

// NewNavHandler creates a new NavHandler.
func NewNavHandler(controller *nav.Controller) *NavHandler {
	return &NavHandler{controller: controller}
}

// HandleView resolves a navigation request to a render state.
// GET /api/view?page=complaint       explicit transition (gate applies)
// GET /api/view?fragment=%23register initial page from the URL fragment
// Response: the view-model JSON
func (h *NavHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if pageParam := q.Get("page"); pageParam != "" {
		page, ok := nav.ParsePage(pageParam)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown page.")
			return
		}
		writeJSON(w, http.StatusOK, h.controller.Navigate(page))
		return
	}

	writeJSON(w, http.StatusOK, h.controller.Initial(q.Get("fragment")))
}
