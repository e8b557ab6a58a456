package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/restaurant-reservation/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		allowed    string
		origin     string
		wantHeader string
	}{
		{name: "configured origin", allowed: "http://front.local", origin: "http://front.local", wantHeader: "http://front.local"},
		{name: "other origin", allowed: "http://front.local", origin: "http://evil.local", wantHeader: ""},
		{name: "any origin by default", allowed: "", origin: "http://evil.local", wantHeader: "*"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.Use(md.CORS(tt.allowed))
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.Header.Set(echo.HeaderOrigin, tt.origin)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.wantHeader, w.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewRateLimiter(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.Use(md.NewRateLimiter(1))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		codes = append(codes, w.Code)
	}
	require.Equal(t, http.StatusOK, codes[0])
	require.Equal(t, http.StatusTooManyRequests, codes[2])
}
