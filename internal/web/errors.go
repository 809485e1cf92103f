package web

// errors.go provides unified error handling for the web layer.
//
// Every handler catches at its own boundary and converts the failure to a
// user-visible banner or toast; nothing propagates unhandled and nothing is
// fatal to the process. The technical error is logged with the request ID,
// the user sees the mapped message with a support code.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/web/templates"
)

// ErrorResponse is the JSON shape of API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error and renders the mapped user message
// in the format the client asked for.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	msg := console.MapError(err)
	status := statusFor(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.Alert(msg.Severity, msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
		return
	}
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:   msg.Message,
			Message: msg.Message,
			Action:  msg.Action,
			Code:    msg.Code,
		})
		return
	}
	http.Error(w, console.FormatUserError(err), status)
}

// statusFor picks the response status from the error taxonomy.
func statusFor(err error) int {
	var ve *reconcile.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case api.IsNotReady(err):
		return http.StatusNotFound
	case api.IsNetwork(err):
		return http.StatusGatewayTimeout
	}
	if code := api.HTTPStatus(err); code >= 400 {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.URL.Path, "/api/")
}
