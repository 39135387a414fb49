package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewChiRouter_RequestID(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "Incoming header is kept",
			header:   "abc-123",
			expected: "abc-123",
		},
		{
			name: "Generated when header is missing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := NewChiRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))
			var got string
			var found bool
			router.Get("/", func(_ http.ResponseWriter, r *http.Request) {
				got, found = web.GetRequestID(r.Context())
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Request-Id", tc.header)
			}
			// when
			router.ServeHTTP(httptest.NewRecorder(), req)
			// then
			require.True(t, found)
			if tc.expected != "" {
				assert.Equal(t, tc.expected, got)
			} else {
				assert.NotEmpty(t, got)
			}
		})
	}
}

func Test_NewHTTPServer(t *testing.T) {
	// given
	cfg := config.HTTPConfig{Host: "127.0.0.1", Port: 9090}
	// when
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	// then
	assert.Equal(t, "127.0.0.1:9090", srv.Addr)
}

func Test_NewPProfServer(t *testing.T) {
	// given
	srv := NewPProfServer(config.PProfConfig{Enabled: true, Addr: "127.0.0.1:6060"})
	rr := httptest.NewRecorder()
	// when
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	// then
	assert.Equal(t, "127.0.0.1:6060", srv.Addr)
	assert.Equal(t, http.StatusOK, rr.Code)
}
