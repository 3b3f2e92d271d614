package handler

import (
	"net/http"

	"github.com/Dutt123/ossvacationtracker/internal/staffing"
	"github.com/Dutt123/ossvacationtracker/internal/utils"
)

func (h *Handler) GetOnDuty(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := utils.ParseDate(date); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.repository.Document()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := staffing.OnDuty(date, doc.Members, doc.ExcludeFromOnDuty, doc.Leaves)
	h.writeJSON(w, r, http.StatusOK, stats)
}

func (h *Handler) GetPendingRank(w http.ResponseWriter, r *http.Request) {
	member := r.URL.Query().Get("member")
	date := r.URL.Query().Get("date")
	if member == "" || date == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "member and date are required")
		return
	}

	leaves, err := h.repository.GetAllLeaves()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"member": member,
		"date":   date,
		"rank":   staffing.PendingOrder(member, date, leaves),
	})
}
