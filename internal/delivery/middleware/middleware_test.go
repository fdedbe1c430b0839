package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hobbyexplorer/config"
	deliverycontext "hobbyexplorer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "abc-123", keep: true},
		{name: "missing id generated", incoming: ""},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenLogger *slog.Logger
			var seenID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenLogger = deliverycontext.GetLogger(c.Request().Context())
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})

			require.NoError(t, handler(c))
			assert.NotNil(t, seenLogger)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seenID)
			} else {
				assert.NotEqual(t, tt.incoming, seenID)
				assert.Len(t, seenID, 36)
			}
		})
	}
}

func newLoggerMiddleware(buf *bytes.Buffer, debug bool) *LoggerMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewTextHandler(buf, nil)), cfg)
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		logged  string
	}{
		{
			name:    "debug logs success",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			logged:  "status=200",
		},
		{
			name:    "quiet mode skips success",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "quiet mode still logs server errors",
			handler: func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") },
			logged:  "status=502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)

			err := newLoggerMiddleware(&buf, tt.debug).Handle(tt.handler)(c)

			require.NoError(t, err)
			if tt.logged == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.logged)
			}
		})
	}
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	c.SetPath(healthPath)

	err := newLoggerMiddleware(&buf, true).Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
