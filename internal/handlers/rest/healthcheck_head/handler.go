package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

type Handler struct {
	isShuttingDown *atomic.Bool
	dependencies   []Pinger
}

func New(isShuttingDown *atomic.Bool, dependencies ...Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		dependencies:   dependencies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	for _, dependency := range h.dependencies {
		if err := dependency.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
