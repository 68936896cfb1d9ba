package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/eventdeck/server/internal/api/handlers"
	"github.com/eventdeck/server/internal/api/middleware"
	"github.com/eventdeck/server/internal/config"
	"github.com/eventdeck/server/internal/domain/events"
	"github.com/eventdeck/server/internal/domain/nudges"
	"github.com/eventdeck/server/internal/metrics"
	"github.com/rs/zerolog"
)

// NewRouter builds the full handler chain over process-wide repositories.
// The caller owns the shared store client; nothing here opens connections
// per request.
func NewRouter(cfg config.Config, logger zerolog.Logger, eventsRepo events.Repository, nudgesRepo nudges.Repository, pinger handlers.StorePinger) http.Handler {
	eventsHandler := handlers.NewEventsHandler(events.NewService(eventsRepo))
	nudgesHandler := handlers.NewNudgesHandler(nudges.NewService(nudgesRepo))

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(pinger))
	mux.Handle("/metrics", metrics.Handler())
	// {$} anchors the pattern so /api/v3/hello/anything stays a 404.
	mux.Handle("/api/v3/hello/{$}", handlers.Hello())

	mux.Handle("/api/v3/app/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: http.HandlerFunc(eventsHandler.Create),
	}))
	mux.Handle("/api/v3/app/events_pagination", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(eventsHandler.ListPage),
	}))
	// The literal segment wins over the {id} wildcard below.
	mux.Handle("/api/v3/app/events/nudge", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(nudgesHandler.Create),
	}))
	mux.Handle("/api/v3/app/events/{id}", methodMux(map[string]http.Handler{
		http.MethodPut:    http.HandlerFunc(eventsHandler.Update),
		http.MethodDelete: http.HandlerFunc(eventsHandler.Delete),
	}))

	var handler http.Handler = mux
	handler = middleware.RateLimit(cfg.RateLimit)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.Tracing(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
