package probe_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"rating-service/pkg/probe"
)

func TestServer(t *testing.T) {
	testCases := []struct {
		name       string
		endpoint   string
		ready      bool
		statusCode int
		body       string
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"rating-service","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler before ready",
			endpoint:   "/ready",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"rating-service","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler",
			endpoint:   "/ready",
			ready:      true,
			statusCode: http.StatusOK,
			body:       `{"name":"rating-service","version":"v0.0.1"}`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			probeServer := probe.NewServer(
				":0",
				probe.Options{
					Name:    "rating-service",
					Version: "v0.0.1",
				},
			)
			probeServer.SetReady(tc.ready)

			httpServer := httptest.NewServer(probeServer.Handler())
			defer httpServer.Close()

			resp, err := http.Get(httpServer.URL + tc.endpoint) //nolint:noctx
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, string(bodyBytes))
		})
	}
}
