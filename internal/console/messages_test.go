package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/storage"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     string
		wantSeverity string
	}{
		{
			name:         "nil maps to zero message",
			err:          nil,
			wantCode:     "",
			wantSeverity: "",
		},
		{
			name:         "local validation",
			err:          reconcile.MissingRequiredField("vendorName"),
			wantCode:     "VAL001",
			wantSeverity: "error",
		},
		{
			name:         "image validation",
			err:          &storage.ValidationError{Message: "image too large"},
			wantCode:     "VAL002",
			wantSeverity: "error",
		},
		{
			name:         "endpoint not provisioned is a notice",
			err:          &api.NotReadyError{Path: "/beneficiaries"},
			wantCode:     "API404",
			wantSeverity: "notice",
		},
		{
			name:         "network failure",
			err:          &api.NetworkError{Op: "GET /vendors", Err: errors.New("dial tcp: timeout")},
			wantCode:     "NET001",
			wantSeverity: "error",
		},
		{
			name:         "backend rejection",
			err:          &api.HTTPError{StatusCode: 500, Message: "boom"},
			wantCode:     "API001",
			wantSeverity: "error",
		},
		{
			name:         "partial failure is a warning",
			err:          &PartialFailure{Completed: []string{"vendor"}, Failed: "discount", Err: errors.New("x")},
			wantCode:     "PART01",
			wantSeverity: "warning",
		},
		{
			name: "partial failure outranks its wrapped cause",
			err: &PartialFailure{
				Completed: []string{"vendor"},
				Failed:    "logo",
				Err:       &api.HTTPError{StatusCode: 500, Message: "boom"},
			},
			wantCode:     "PART01",
			wantSeverity: "warning",
		},
		{
			name:         "unrecognized",
			err:          errors.New("mystery"),
			wantCode:     "ERR000",
			wantSeverity: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
			if tt.wantCode != "" && got.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestMapError_HTTPErrorPrefersBackendText(t *testing.T) {
	got := MapError(&api.HTTPError{StatusCode: 422, Message: "name already taken"})
	if got.Message != "name already taken" {
		t.Errorf("Message = %q, want the backend's text", got.Message)
	}
	got = MapError(&api.HTTPError{StatusCode: 502})
	if got.Message == "" {
		t.Error("empty backend text must still yield a message")
	}
}

func TestFormatUserError(t *testing.T) {
	s := FormatUserError(reconcile.MissingRequiredField("vendorName"))
	if !strings.Contains(s, "VAL001") || !strings.Contains(s, "vendorName") {
		t.Errorf("FormatUserError = %q, want code and field", s)
	}
	if FormatUserError(nil) != "" {
		t.Error("FormatUserError(nil) should be empty")
	}
}
