package workers

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-local-sync/internal/logger"
)

// HTTPServerWorker serves the local control surface. Run starts the listener
// on its own goroutine and returns immediately.
type HTTPServerWorker struct {
	server *http.Server
	logger *logger.Logger
}

func NewHTTPServerWorker(address string, router http.Handler, logger *logger.Logger) *HTTPServerWorker {
	return &HTTPServerWorker{
		server: &http.Server{Addr: address, Handler: router},
		logger: logger,
	}
}

func (w *HTTPServerWorker) Run() {
	go func() {
		w.logger.Info().
			Str("func", "HTTPServerWorker.Run").
			Str("address", w.server.Addr).
			Msg("control server listening")

		if err := w.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.logger.Err(err).
				Str("func", "HTTPServerWorker.Run").
				Msg("control server stopped")
		}
	}()
}

// Shutdown gracefully stops the control server.
func (w *HTTPServerWorker) Shutdown() error {
	return w.server.Close()
}
