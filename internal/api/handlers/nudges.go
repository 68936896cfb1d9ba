package handlers

import (
	"net/http"

	"github.com/eventdeck/server/internal/api/apierror"
	"github.com/eventdeck/server/internal/domain/nudges"
)

type NudgesHandler struct {
	Service *nudges.Service
}

func NewNudgesHandler(service *nudges.Service) *NudgesHandler {
	return &NudgesHandler{Service: service}
}

// Create serves POST /events/nudge. Every code path terminates the response;
// a store failure answers 500 rather than leaving the client hanging.
func (h *NudgesHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}

	id, err := h.Service.Create(r.Context(), body)
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
