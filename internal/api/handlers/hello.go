package handlers

import "net/http"

// Hello serves the unauthenticated greeting. It never touches the store, so
// it stays up even when the database is down.
func Hello() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Hello, World!"})
	})
}
