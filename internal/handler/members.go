package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// memberParam reads the {name} path parameter. Member names may contain
// spaces, so the escaped form is decoded first.
func memberParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	roster, err := h.repository.GetRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"members":           roster.Members,
		"excludeFromOnDuty": roster.ExcludeFromOnDuty,
	})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
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

	name, err := h.repository.AddMember(req.Name)
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"name": name})
}

func (h *Handler) RenameMember(w http.ResponseWriter, r *http.Request) {
	oldName := memberParam(r)

	var req struct {
		NewName string `json:"newName" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newName, err := h.repository.RenameMember(oldName, req.NewName)
	if err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"oldName": oldName, "newName": newName})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	name := memberParam(r)

	if err := h.repository.RemoveMember(name); err != nil {
		h.repositoryError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"name": name})
}
