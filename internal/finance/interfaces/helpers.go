package interfaces

import (
	"net/http"

	"pennytrack/internal/identity"
	applog "pennytrack/internal/log"

	financeErrors "pennytrack/internal/finance/errors"
)

// callerID resolves the caller's user id. A verified identity from the
// request context (bearer token middleware) wins; otherwise the explicit
// userId parameter supplied by the client is trusted verbatim.
func callerID(r *http.Request, explicit string) string {
	if userID, ok := identity.UserIDFromContext(r.Context()); ok {
		return userID
	}
	if explicit != "" {
		return explicit
	}
	return r.URL.Query().Get("userId")
}

// statusForError maps the service error taxonomy onto HTTP statuses.
// Unknown errors become a redacted 500; the cause is logged, not surfaced.
func statusForError(err error) (int, string) {
	switch {
	case financeErrors.IsUnauthorizedError(err):
		return http.StatusUnauthorized, err.Error()
	case financeErrors.IsValidationError(err), financeErrors.IsDuplicateError(err):
		return http.StatusBadRequest, err.Error()
	case financeErrors.IsNotFoundError(err):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func respondServiceError(w http.ResponseWriter, r *http.Request, respondError func(http.ResponseWriter, int, string), err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		applog.FromContext(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
	respondError(w, status, message)
}
