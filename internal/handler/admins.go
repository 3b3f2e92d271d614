package handler

import (
	"net/http"
)

func (h *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.repository.GetAdmins()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"admins": admins})
}

func (h *Handler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	name, err := h.repository.AddAdmin(req.Name)
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"name": name})
}
