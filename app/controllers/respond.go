package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bloghub/app/repositories"
	"bloghub/app/services"
	"bloghub/app/validation"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// readForm reads the request body as a validation form. Unreadable or
// malformed bodies yield an empty form, so every field reports as missing.
func readForm(r *http.Request) validation.Form {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to read request body")
		return validation.NewForm(nil)
	}
	return validation.NewForm(body)
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// handleError maps a service error onto the response status.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := validation.AsErrors(err); ok {
		sendJSON(w, http.StatusBadRequest, verr)
		return
	}

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, repositories.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		sendError(w, "internal server error", http.StatusInternalServerError)
	}
}
