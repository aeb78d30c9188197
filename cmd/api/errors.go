package main

import (
	"errors"
	"net/http"

	"castingagency/internal/data"
	"castingagency/internal/metrics"
)

func (app *application) logError(r *http.Request, err error, args ...any) {
	args = append(args,
		"method", r.Method,
		"uri", r.URL.RequestURI(),
		"request_id", app.contextGetRequestID(r),
	)
	app.logger.Error(err.Error(), args...)
}

// errorResponse writes the uniform error envelope. The message is always a
// fixed phrase for the status so internal detail never reaches the client.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{
		"success": false,
		"error":   status,
		"message": message,
	}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Debug("bad request", "error", err.Error(), "uri", r.URL.RequestURI())
	app.errorResponse(w, r, http.StatusBadRequest, "bad request")
}

// missing or null fields are reported the same way as a malformed body
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.logger.Debug("failed validation", "fields", errors, "uri", r.URL.RequestURI())
	app.errorResponse(w, r, http.StatusBadRequest, "bad request")
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "not found")
}

// unprocessableResponse reports a supplied value that cannot be stored, or a
// store failure during an otherwise valid request.
func (app *application) unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, data.ErrInvalidValue) {
		app.logger.Debug("invalid value", "error", err.Error(), "uri", r.URL.RequestURI())
		app.errorResponse(w, r, http.StatusUnprocessableEntity, "unprocessable")
		return
	}

	kind := data.KindUnknown

	var storeErr *data.StoreError
	if errors.As(err, &storeErr) {
		kind = storeErr.Kind
	}

	metrics.StoreErrors.WithLabelValues(kind.String()).Inc()
	app.logError(r, err, "kind", kind.String())
	app.errorResponse(w, r, http.StatusUnprocessableEntity, "unprocessable")
}

// storeFailureResponse picks between 404 and 422 for an error returned by a store.
func (app *application) storeFailureResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, data.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.unprocessableResponse(w, r, err)
	}
}

func (app *application) internalServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}

func (app *application) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, "unauthorized")
}

func (app *application) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, "unauthorized")
}

func (app *application) notPermittedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, "forbidden")
}
