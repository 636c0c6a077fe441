package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rs/zerolog"

	"docushop/errs"
)

// RespondJSON writes payload with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError maps an application error to its HTTP status and writes
// the {"error": message} body the API uses everywhere. Untyped errors
// surface as a generic 500 without leaking internals.
func RespondError(w http.ResponseWriter, log zerolog.Logger, err error) {
	typed := errs.As(err)
	if typed == nil {
		typed = errs.Wrap(errs.CodeInternal, err, "internal server error")
	}

	status := errs.HTTPStatus(typed.Code())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", string(typed.Code())).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", string(typed.Code())).Msg("request rejected")
	}

	message := typed.Message()
	if status >= http.StatusInternalServerError {
		// Internal details stay in the log.
		message = "server error"
	}

	RespondJSON(w, status, map[string]string{"error": message})
}
