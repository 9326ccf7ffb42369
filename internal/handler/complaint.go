package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/complaint-tracker/internal/domain"
	"github.com/msomdec/complaint-tracker/internal/nav"
	"github.com/msomdec/complaint-tracker/internal/session"
	"github.com/msomdec/complaint-tracker/internal/validate"
)

// ComplaintHandler handles complaint submission and listing.
type ComplaintHandler struct {
	manager *session.Manager
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(manager *session.Manager) *ComplaintHandler {
	return &ComplaintHandler{manager: manager}
}

// HandleSubmit files a new complaint for the signed-in user.
// POST /api/complaints
// Request:  {"fullName":"...","collegeName":"...","year":"...","complaintType":"...",
//            "subject":"...","description":"...","attachedFileName":"..."}
// Response: {"complaint": {...}, "message": "..."} or 401 with a redirect target
func (h *ComplaintHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName         string `json:"fullName"`
		CollegeName      string `json:"collegeName"`
		Year             string `json:"year"`
		ComplaintType    string `json:"complaintType"`
		Subject          string `json:"subject"`
		Description      string `json:"description"`
		AttachedFileName string `json:"attachedFileName"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	complaint, err := h.manager.SubmitComplaint(r.Context(), validate.ComplaintForm{
		FullName:         req.FullName,
		CollegeName:      req.CollegeName,
		Year:             req.Year,
		ComplaintType:    req.ComplaintType,
		Subject:          req.Subject,
		Description:      req.Description,
		AttachedFileName: req.AttachedFileName,
	})
	if err != nil {
		var verr *validate.Error
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			// The gate redirects rather than rendering inline errors.
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":    nav.GateNotice,
				"redirect": "#" + string(nav.PageRegister),
			})
		case errors.Is(err, domain.ErrTooManyRequests):
			writeError(w, http.StatusTooManyRequests, "You are submitting too quickly. Please wait a moment.")
		case errors.As(err, &verr):
			writeValidationErrors(w, verr.Messages)
		default:
			slog.Error("submit complaint", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"complaint": toComplaintDTO(complaint),
		"message":   "Complaint submitted successfully!",
	})
}

// HandleList returns all filed complaints in insertion order.
// GET /api/complaints
// Response: {"complaints": [...]}
func (h *ComplaintHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	complaints := h.manager.Complaints()
	writeJSON(w, http.StatusOK, map[string]any{
		"complaints": toComplaintDTOs(complaints),
	})
}
