package trace

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applog "gamjatokki/internal/log"
)

func TestMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Output: &buf})
	m := NewMiddleware(logger)

	var seenID string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		if got := applog.FromContext(r.Context()).Component(); got != applog.ComponentTrace {
			t.Errorf("context logger component = %q", got)
		}
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK) // superfluous, must not change the recorded status
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui/entries?month=3", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.9, 10.0.0.1")
	h.ServeHTTP(rr, req)

	if !strings.HasPrefix(seenID, "req_") {
		t.Fatalf("request ID = %q", seenID)
	}
	if rr.Header().Get(HeaderRequestID) != seenID {
		t.Errorf("response header ID = %q, want %q", rr.Header().Get(HeaderRequestID), seenID)
	}

	out := buf.String()
	for _, want := range []string{"HTTP request completed", "status_code=418", "client_ip=10.0.0.9", "request_id=" + seenID} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	if got := m.GetMetrics().TotalRequests; got != 1 {
		t.Errorf("TotalRequests = %d, want 1", got)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{name: "forwarded for", header: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, remote: "9.9.9.9:1", want: "1.2.3.4"},
		{name: "real ip", header: map[string]string{"X-Real-IP": "4.3.2.1"}, remote: "9.9.9.9:1", want: "4.3.2.1"},
		{name: "remote addr", remote: "9.9.9.9:1234", want: "9.9.9.9"},
		{name: "remote addr without port", remote: "pipe", want: "pipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
