package apperr

import (
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

type Response struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUniqueness, KindAlreadyFinalized:
		return http.StatusConflict
	case KindOwnership, KindImmutable:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP writes err as a JSON error body. Errors that are not typed domain
// errors are logged and reported as 500 without leaking their details.
func WriteHTTP(w http.ResponseWriter, op string, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSON(w, Response{
			Error:   "internal_error",
			Message: "internal server error",
		}, http.StatusInternalServerError)
		return
	}

	log.Debugf("%s: %s", op, err)
	pkg.WriteJSON(w, Response{
		Error:   appErr.Kind.String(),
		Field:   appErr.Field,
		Message: appErr.Message,
	}, HTTPStatus(appErr.Kind))
}

// WriteBadRequest reports malformed input (bad JSON, bad path or query params) as a validation failure.
func WriteBadRequest(w http.ResponseWriter, field, message string) {
	pkg.WriteJSON(w, Response{
		Error:   KindValidation.String(),
		Field:   field,
		Message: message,
	}, http.StatusBadRequest)
}
