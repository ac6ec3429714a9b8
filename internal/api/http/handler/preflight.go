package handler

import "net/http"

// Preflight answers a CORS preflight request with an empty 200.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
