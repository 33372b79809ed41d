package mockserver

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestBasicAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := BasicAuth("secret")(next)

	tests := []struct {
		name       string
		user       string
		pass       string
		setAuth    bool
		wantStatus int
	}{
		{name: "valid secret", user: "secret", setAuth: true, wantStatus: http.StatusNoContent},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", user: "other", setAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "secret as password", user: "", pass: "secret", setAuth: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := rec.Header().Get("WWW-Authenticate"); got == "" {
					t.Fatalf("WWW-Authenticate header is empty")
				}
			}
		})
	}
}

func TestRouterCompressesJSON(t *testing.T) {
	store, err := DefaultStore()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	h := New(store, "secret", WithLogger(zap.NewNop())).Router()

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", contentEncoding: "gzip"},
		{name: "client does not accept gzip", acceptEncoding: "", contentEncoding: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
			req.SetBasicAuth("secret", "")
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
			}
			if ce := res.Header.Get("Content-Encoding"); ce != tt.contentEncoding {
				t.Fatalf("content-encoding = %q, want %q", ce, tt.contentEncoding)
			}

			var body io.Reader = res.Body
			if tt.contentEncoding == "gzip" {
				gr, err := gzip.NewReader(res.Body)
				if err != nil {
					t.Fatalf("new gzip reader: %v", err)
				}
				defer gr.Close()
				body = gr
			}

			data, err := io.ReadAll(body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !strings.Contains(string(data), `"name":"Default"`) {
				t.Fatalf("body %q does not contain campaign name", string(data))
			}
		})
	}
}
