package httpx_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"rating-service/pkg/contextx"
	"rating-service/pkg/httpx"
	"rating-service/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestLoggingRoundTripper(t *testing.T) {
	const (
		testRequestBody  = `{"customer_id":"CUST-001","policy_type":"cyber"}`
		testResponseBody = `{"quote_id":"q-1","customer_id":"CUST-001","risk_grade":"low"}`
	)

	testLogFieldMaxLen10 := 10

	testCases := []struct {
		name                string
		handlerFunc         http.HandlerFunc
		statusCode          int
		responseBody        string
		sensitiveDataMasker *httpx.SensitiveDataMaskerMock
		logFieldMaxLen      int
		traceID             contextx.TraceID
		check               func(rq *require.Assertions, req, resp string)
	}{
		{
			name: "Quote issued",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testResponseBody)) //nolint:errcheck
			},
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, "POST /v1/quote HTTP/1.1")
				rq.Contains(req, testRequestBody)
				rq.Contains(resp, "HTTP/1.1 200 OK")
				rq.Contains(resp, testResponseBody)
			},
			statusCode:   http.StatusOK,
			responseBody: testResponseBody,
		},
		{
			name: "Quote rejected",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"code":"QuoteRejected"}`)) //nolint:errcheck
			},
			check: func(rq *require.Assertions, _, resp string) {
				rq.Contains(resp, "HTTP/1.1 422 Unprocessable Entity")
				rq.Contains(resp, "QuoteRejected")
			},
			statusCode:   http.StatusUnprocessableEntity,
			responseBody: `{"code":"QuoteRejected"}`,
		},
		{
			name: "Customer id masked",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testResponseBody)) //nolint:errcheck
			},
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, `{"customer_id":<...>,"policy_type":"cyber"}`)
				rq.Contains(resp, `"customer_id":<...>`)
				rq.NotContains(resp, "CUST-001")
			},
			statusCode:   http.StatusOK,
			responseBody: testResponseBody,
			sensitiveDataMasker: &httpx.SensitiveDataMaskerMock{
				MaskFunc: func(input []byte) []byte {
					return regexp.MustCompile(`"CUST-001"`).ReplaceAll(input, []byte("<...>"))
				},
			},
		},
		{
			name: "Log field size limit",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(testResponseBody)) //nolint:errcheck
			},
			check: func(rq *require.Assertions, req, resp string) {
				rq.Equal("POST /v1/q", req)
				rq.Equal("HTTP/1.1 2", resp)
			},
			statusCode:     http.StatusOK,
			responseBody:   testResponseBody,
			logFieldMaxLen: testLogFieldMaxLen10,
		},
		{
			name: "Trace id forwarded",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Echo-Trace-Id", r.Header.Get("X-Trace-Id"))
				w.WriteHeader(http.StatusOK)
			},
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, "X-Trace-Id: trace-123")
				rq.Contains(resp, "X-Echo-Trace-Id: trace-123")
			},
			statusCode: http.StatusOK,
			traceID:    "trace-123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			httpServer := httptest.NewServer(tc.handlerFunc)
			defer httpServer.Close()

			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			ctx := contextx.WithLogger(context.Background(), logger)

			if tc.traceID != "" {
				ctx = contextx.WithTraceID(ctx, tc.traceID)
			}

			var opts []httpx.Option

			if tc.sensitiveDataMasker != nil {
				opts = append(opts, httpx.WithSensitiveDataMasker(tc.sensitiveDataMasker))
			}

			if tc.logFieldMaxLen != 0 {
				opts = append(opts, httpx.WithLogFieldMaxLen(tc.logFieldMaxLen))
			}

			client := &http.Client{
				Transport: httpx.NewLoggingRoundTripper(
					http.DefaultTransport,
					opts...,
				),
			}

			req, err := http.NewRequestWithContext(
				ctx, http.MethodPost, httpServer.URL+"/v1/quote", strings.NewReader(testRequestBody),
			)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			logLines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))

			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Len(logLines, 2)

			var request, response map[string]any

			rq.NoError(json.Unmarshal(logLines[0], &request))
			rq.NoError(json.Unmarshal(logLines[1], &response))

			if tc.check != nil {
				tc.check(
					rq,
					request[logx.FieldRequestBody].(string),
					response[logx.FieldResponseBody].(string),
				)
			}

			_, ok := response[logx.FieldDurationMs].(float64)
			rq.True(ok)

			rq.Equal(float64(tc.statusCode), response[logx.FieldResponseStatus])
			rq.Equal(request[logx.FieldRequestID], response[logx.FieldRequestID])

			if tc.traceID != "" {
				rq.Equal(tc.traceID.String(), request[logx.FieldRequestID])
			} else {
				const xidLen = 20

				rq.Len(request[logx.FieldRequestID], xidLen)
			}

			if tc.responseBody != "" {
				bodyBytes, err := io.ReadAll(resp.Body)
				rq.NoError(err)

				rq.Equal(tc.responseBody, string(bodyBytes))
			}
		})
	}
}
