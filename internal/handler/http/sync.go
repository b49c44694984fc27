package http

import (
	"net/http"

	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/utils"
)

// syncResponse reports the outcome of an explicitly triggered sync pass.
type syncResponse struct {
	Published bool `json:"published"`
}

// statusResponse is the body of GET /api/status.
type statusResponse struct {
	Online  bool `json:"online"`
	Pending bool `json:"pending"`
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	published, err := h.engine.PushChanges(r.Context())
	if err != nil {
		log.Err(err).Str("func", "Handler.triggerSync").Msg("sync trigger failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, syncResponse{Published: published}, http.StatusOK)
}

func (h *Handler) peekNextRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	next, err := h.engine.PeekNextRequest(r.Context())
	if err != nil {
		status := statusFromError(err)
		if status != http.StatusNoContent {
			log.Err(err).Str("func", "Handler.peekNextRequest").Msg("queue peek failed")
		}
		w.WriteHeader(status)
		return
	}

	utils.WriteJSON(w, next, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pending, err := h.engine.HasPendingChanges(r.Context())
	if err != nil {
		log.Err(err).Str("func", "Handler.getStatus").Msg("pending check failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusResponse{
		Online:  h.monitor.Online(),
		Pending: pending,
	}, http.StatusOK)
}
