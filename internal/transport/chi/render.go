package chi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/response"
)

const msgInternalError = "internal error"

// empty is the payload type of envelopes built at the boundary.
type empty = struct{}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEnvelope writes env with its own status. NoContent carries no body.
func writeEnvelope[T any](w http.ResponseWriter, env response.Envelope[T]) {
	status := int(env.Status())
	if env.Status() == response.NoContent {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, env)
}

// respond renders a service result. A fault is logged and hidden behind a generic 500 envelope.
func respond[T any](w http.ResponseWriter, r *http.Request, fallback *zap.Logger, env response.Envelope[T], err error) {
	if err != nil {
		logger.FromContext(r.Context(), fallback).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeEnvelope(w, response.Fail[empty](response.InternalError, msgInternalError))
		return
	}
	writeEnvelope(w, env)
}

// badRequest renders a Fail(BadRequest) envelope built at the boundary.
func badRequest(w http.ResponseWriter, message string) {
	writeEnvelope(w, response.Fail[empty](response.BadRequest, message))
}
