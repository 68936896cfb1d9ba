package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/eventdeck/server/internal/api/apierror"
	"github.com/eventdeck/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

// List serves GET /events. With an id query parameter it fetches a single
// document; without one it returns the whole collection, unbounded.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id != "" {
		doc, err := h.Service.Get(r.Context(), id)
		if errors.Is(err, events.ErrNotFound) {
			apierror.NotFound(w, r)
			return
		}
		if err != nil {
			apierror.Internal(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
		return
	}

	docs, err := h.Service.List(r.Context())
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// ListPage serves GET /events_pagination.
func (h *EventsHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.ListPage(r.Context(), events.ParsePageOptions(r.URL.Query()))
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Create serves POST /events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// Update serves PUT /events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}

	err = h.Service.Update(r.Context(), r.PathValue("id"), body)
	if errors.Is(err, events.ErrNotFound) {
		apierror.NotFound(w, r)
		return
	}
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event updated"})
}

// Delete serves DELETE /events/{id}.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, events.ErrNotFound) {
		apierror.NotFound(w, r)
		return
	}
	if err != nil {
		apierror.Internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// decodeBody reads the request body into a raw map so handlers can tell a
// key that is absent from one that carries an explicit null or zero value.
// An empty body decodes to an empty map.
func decodeBody(r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	err := json.NewDecoder(r.Body).Decode(&body)
	if errors.Is(err, io.EOF) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
