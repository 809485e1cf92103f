package console

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thrive-platform/admin-console/internal/api"
)

// newTestService wires a Service against a fake backend handler. Image
// storage and the audit trail are left unconfigured; both are optional
// collaborators.
func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, "test-secret", 2*time.Second, nil)
	return NewService(client, nil, nil)
}

// jsonHandler replies with a fixed body for every request.
func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}
