package handlers

import (
	"context"
	"net/http"
	"time"
)

// StorePinger reports store reachability for the readiness probe.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Healthz returns a liveness response independent of any dependency.
func Healthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Readyz returns a readiness response backed by a store ping.
func Readyz(pinger StorePinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}
