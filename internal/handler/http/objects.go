package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/store"
	"github.com/MKhiriev/go-local-sync/internal/utils"
	"github.com/MKhiriev/go-local-sync/models"
)

// putObjectRequest is the body of PUT /api/objects/{id}. The object id is
// taken from the URL, not the body.
type putObjectRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	obj, err := h.objects.GetObject(r.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrObjectNotFound) {
			log.Err(err).Str("func", "Handler.getObject").Msg("object read failed")
		}
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, obj, http.StatusOK)
}

func (h *Handler) putObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req putObjectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stored, err := h.objects.PutObject(r.Context(), models.Object{
		ID:      id,
		Type:    req.Type,
		Payload: req.Payload,
		Origin:  models.OriginClient,
	})
	if err != nil {
		log.Err(err).Str("func", "Handler.putObject").Msg("object write failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) removeObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.objects.RemoveObject(r.Context(), id); err != nil {
		log.Err(err).Str("func", "Handler.removeObject").Msg("object removal failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
