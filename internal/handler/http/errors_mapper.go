package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-local-sync/internal/adapter"
	"github.com/MKhiriev/go-local-sync/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrObjectNotFound: http.StatusNotFound,
	store.ErrQueueEmpty:     http.StatusNoContent,
	store.ErrSerialization:  http.StatusBadRequest,
	store.ErrStorage:        http.StatusInternalServerError,

	adapter.ErrTransportFailure: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
