package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestStatusWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr}

	// implicit 200 on first write, bytes accumulated
	if _, err := sw.Write([]byte("hola")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sw.Status() != http.StatusOK || sw.bytes != 4 {
		t.Fatalf("got status=%d bytes=%d", sw.Status(), sw.bytes)
	}

	// later WriteHeader calls must not overwrite the recorded status
	sw.WriteHeader(http.StatusInternalServerError)
	if sw.Status() != http.StatusOK {
		t.Fatalf("status overwritten: %d", sw.Status())
	}
}

func TestLoggerEmitsAccessLine(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := Logger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/prices", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	line := buf.String()
	for _, want := range []string{`"route":"/v1/prices"`, `"status":418`, `"bytes":5`, `"method":"GET"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("access line missing %s: %s", want, line)
		}
	}
}

func TestRemoteIP(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *http.Request)
		want   string
	}{
		{"forwarded-for first hop", func(r *http.Request) { r.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2") }, "10.0.0.1"},
		{"real-ip", func(r *http.Request) { r.Header.Set("X-Real-IP", "10.0.0.3") }, "10.0.0.3"},
		{"remote addr host", func(r *http.Request) { r.RemoteAddr = "10.0.0.4:5555" }, "10.0.0.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.mutate(req)
			if got := remoteIP(req); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
