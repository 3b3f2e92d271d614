package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
	"github.com/Dutt123/ossvacationtracker/internal/repository"
)

func (h *Handler) GetLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.repository.GetAllLeaves()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"leaves": leaves})
}

func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Member   string `json:"member" validate:"required"`
		Date     string `json:"date" validate:"required,datetime=2006-01-02"`
		Category string `json:"category" validate:"required"`
		IsAdmin  bool   `json:"isAdmin"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	leave, err := h.repository.CreateLeave(repository.CreateLeaveParams{
		Member:   req.Member,
		Date:     req.Date,
		Category: req.Category,
		AsAdmin:  req.IsAdmin,
	})
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	if leave.Status == domain.LeaveStatusPending {
		h.notifyLeaveRequested(leave)
	}

	h.writeJSON(w, r, http.StatusOK, leave)
}

func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "leave id must be a number")
		return
	}

	requester := r.URL.Query().Get("requester")
	if requester == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "requester is required")
		return
	}

	leave, err := h.repository.DeleteLeave(id, requester)
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, leave)
}

func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "leave id must be a number")
		return
	}

	leave, err := h.repository.ApproveLeave(id)
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.notifyLeaveApproved(leave)

	h.writeJSON(w, r, http.StatusOK, leave)
}
