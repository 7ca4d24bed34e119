package server

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// statusFor maps structured error codes onto HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidSize,
		errors.ErrCodeInvalidSpacing,
		errors.ErrCodeInvalidWidth,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeInvalidTheme:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeNoteNotFound,
		errors.ErrCodeDocumentNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error response. Internal errors are
// logged with full detail but reported to clients without it.
func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "err", err)
		msg = "internal error"
	}

	writeJSON(w, status, errorResponse{Error: msg, Code: string(code)})
}
