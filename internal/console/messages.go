package console

import (
	"errors"
	"fmt"

	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/storage"
)

// UserMessage is the user-facing rendering of a failure. Code is quoted to
// support staff; Action tells the user what to do next.
//
// Codes by category:
//
//	VAL001 - required field empty (local, nothing was sent)
//	VAL002 - image rejected before upload
//	NET001 - timeout or unreachable backend
//	API001 - backend rejected the request
//	API404 - endpoint not provisioned yet (softened, not a hard failure)
//	PART01 - later step of a create flow failed after earlier steps committed
//	ERR000 - anything unrecognized
type UserMessage struct {
	Code    string
	Message string
	Action  string
	// Severity distinguishes banner errors from soft notices and warnings:
	// "error", "warning", or "notice".
	Severity string
}

var defaultMessage = UserMessage{
	Code:     "ERR000",
	Message:  "Something went wrong",
	Action:   "Please try again",
	Severity: "error",
}

// MapError converts any flow error into its user-facing message. Handlers
// call this at their boundary; no error escapes to a view un-mapped.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	// Checked first: a partial failure wraps the step's underlying error,
	// and the wrapped cause must not shadow the multi-step outcome.
	var pf *PartialFailure
	if errors.As(err, &pf) {
		return UserMessage{
			Code:     "PART01",
			Message:  fmt.Sprintf("Saved %v, but the %s step failed", pf.Completed, pf.Failed),
			Action:   "The saved parts are kept; retry the failed step from the record page",
			Severity: "warning",
		}
	}

	var ve *reconcile.ValidationError
	if errors.As(err, &ve) {
		return UserMessage{
			Code:     "VAL001",
			Message:  fmt.Sprintf("%s is required", ve.Field),
			Action:   "Fill in the field and save again",
			Severity: "error",
		}
	}

	var sve *storage.ValidationError
	if errors.As(err, &sve) {
		return UserMessage{
			Code:     "VAL002",
			Message:  sve.Message,
			Action:   "Choose a different image",
			Severity: "error",
		}
	}

	if api.IsNotReady(err) {
		return UserMessage{
			Code:     "API404",
			Message:  "This section isn't available yet",
			Action:   "The endpoint is still being set up; check back later",
			Severity: "notice",
		}
	}

	if api.IsNetwork(err) {
		return UserMessage{
			Code:     "NET001",
			Message:  "Couldn't reach the server",
			Action:   "Check your connection and try again",
			Severity: "error",
		}
	}

	var he *api.HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if msg == "" {
			msg = "The server couldn't complete the request"
		}
		return UserMessage{
			Code:     "API001",
			Message:  msg,
			Action:   "Try again; contact support if it keeps failing",
			Severity: "error",
		}
	}

	return defaultMessage
}

// FormatUserError renders a mapped error for inline display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
