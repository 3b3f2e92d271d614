package handler

import (
	"net/http"
)

// GetData returns the full document, the shape the UI loads on boot.
// With ?compact=1 the shift map is exported as merged date ranges.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repository.Document()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if r.URL.Query().Get("compact") == "1" {
		h.writeJSON(w, r, http.StatusOK, map[string]any{
			"admins":            doc.Admins,
			"members":           doc.Members,
			"leaves":            doc.Leaves,
			"shifts":            doc.Shifts.Compact(),
			"excludeFromOnDuty": doc.ExcludeFromOnDuty,
		})
		return
	}

	h.writeJSON(w, r, http.StatusOK, doc)
}
