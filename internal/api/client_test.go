package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListPage(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLen   int
		wantTotal int
	}{
		{
			name:      "array with pagination",
			status:    http.StatusOK,
			body:      `{"success":true,"data":[{"id":"1"},{"id":"2"}],"pagination":{"page":1,"limit":25,"total":41}}`,
			wantLen:   2,
			wantTotal: 41,
		},
		{
			name:      "no pagination falls back to page length",
			status:    http.StatusOK,
			body:      `{"success":true,"data":[{"id":"1"},{"id":"2"},{"id":"3"}]}`,
			wantLen:   3,
			wantTotal: 3,
		},
		{
			name:      "single object tolerated as one-row page",
			status:    http.StatusOK,
			body:      `{"success":true,"data":{"id":"1"}}`,
			wantLen:   1,
			wantTotal: 1,
		},
		{
			name:      "null data is an empty page",
			status:    http.StatusOK,
			body:      `{"success":true,"data":null}`,
			wantLen:   0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get(SecretHeader); got != "s3cret" {
					t.Errorf("%s = %q, want %q", SecretHeader, got, "s3cret")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "s3cret", 0, nil)
			recs, total, err := client.ListPage(context.Background(), "/vendors", 1, 25)
			if err != nil {
				t.Fatalf("ListPage() error = %v", err)
			}
			if len(recs) != tt.wantLen {
				t.Errorf("len(recs) = %d, want %d", len(recs), tt.wantLen)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestListPage_QueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 0, nil)
	if _, _, err := client.ListPage(context.Background(), "/vendors", 2, 10); err != nil {
		t.Fatalf("ListPage() error = %v", err)
	}
	if gotQuery != "limit=10&page=2" {
		t.Errorf("query = %q, want %q", gotQuery, "limit=10&page=2")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "404 is not-ready, not failure",
			status: http.StatusNotFound,
			body:   `{"success":false,"error":"not found"}`,
			check: func(t *testing.T, err error) {
				if !IsNotReady(err) {
					t.Errorf("IsNotReady(%v) = false, want true", err)
				}
			},
		},
		{
			name:   "500 maps to HTTPError with body message",
			status: http.StatusInternalServerError,
			body:   `{"success":false,"error":"database exploded"}`,
			check: func(t *testing.T, err error) {
				var herr *HTTPError
				if !errors.As(err, &herr) {
					t.Fatalf("error = %v, want *HTTPError", err)
				}
				if herr.StatusCode != http.StatusInternalServerError {
					t.Errorf("StatusCode = %d, want 500", herr.StatusCode)
				}
				if herr.Message != "database exploded" {
					t.Errorf("Message = %q, want backend text", herr.Message)
				}
			},
		},
		{
			name:   "200 with success=false and message is still a failure",
			status: http.StatusOK,
			body:   `{"success":false,"message":"validation failed upstream"}`,
			check: func(t *testing.T, err error) {
				var herr *HTTPError
				if !errors.As(err, &herr) {
					t.Fatalf("error = %v, want *HTTPError", err)
				}
				if herr.Message != "validation failed upstream" {
					t.Errorf("Message = %q", herr.Message)
				}
			},
		},
		{
			name:   "non-JSON error body tolerated",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var herr *HTTPError
				if !errors.As(err, &herr) {
					t.Fatalf("error = %v, want *HTTPError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "", 0, nil)
			_, err := client.Get(context.Background(), "/vendors/v1")
			if err == nil {
				t.Fatal("Get() error = nil, want failure")
			}
			tt.check(t, err)
		})
	}
}

func TestNetworkError_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 20*time.Millisecond, nil)
	_, err := client.Get(context.Background(), "/vendors/v1")
	if !IsNetwork(err) {
		t.Errorf("IsNetwork(%v) = false, want true", err)
	}
}

func TestNetworkError_Unreachable(t *testing.T) {
	// Port 1 is reliably closed.
	client := NewClient("http://127.0.0.1:1", "", 500*time.Millisecond, nil)
	_, err := client.Get(context.Background(), "/vendors/v1")
	if !IsNetwork(err) {
		t.Errorf("IsNetwork(%v) = false, want true", err)
	}
}

func TestRecordPath(t *testing.T) {
	if got := RecordPath("/vendors", "v 1/x"); got != "/vendors/v%201%2Fx" {
		t.Errorf("RecordPath = %q", got)
	}
	if got := VendorDiscountsPath("v1"); got != "/vendors/v1/discounts" {
		t.Errorf("VendorDiscountsPath = %q", got)
	}
}
