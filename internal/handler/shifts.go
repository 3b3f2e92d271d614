package handler

import (
	"net/http"

	"github.com/Dutt123/ossvacationtracker/internal/repository"
)

func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if r.URL.Query().Get("compact") == "1" {
		h.writeJSON(w, r, http.StatusOK, map[string]any{"shifts": shifts.Compact()})
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"shifts": shifts})
}

func (h *Handler) AssignShifts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Member       string `json:"member" validate:"required"`
		StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate      string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Shift        string `json:"shift" validate:"required,oneof=IST APAC EMEA"`
		SkipWeekends bool   `json:"skipWeekends"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := h.repository.AssignShiftRange(repository.AssignShiftParams{
		Member:       req.Member,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Shift:        req.Shift,
		SkipWeekends: req.SkipWeekends,
	})
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, result)
}
