package ratingclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"rating-service/pkg/httpx"
	"rating-service/pkg/logx"
	"rating-service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx reply of the rating service.
type APIError struct {
	StatusCode int
	Body       rest.Error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rating service responded %d %s: %s", e.StatusCode, e.Body.Code, e.Body.Message)
}

// Client calls the rating service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...httpx.Option) Client {
	opts = append([]httpx.Option{httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker())}, opts...)

	return Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...),
			Timeout:   defaultTimeout,
		},
	}
}

func (c Client) Quote(ctx context.Context, request rest.QuoteRequest) (rest.QuoteResponse, error) {
	var response rest.QuoteResponse

	if err := c.post(ctx, "/v1/quote", request, &response); err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("c.post: %w", err)
	}

	return response, nil
}

func (c Client) BulkQuote(ctx context.Context, requests []rest.QuoteRequest) ([]rest.BulkQuoteItem, error) {
	var response []rest.BulkQuoteItem

	if err := c.post(ctx, "/v1/bulk-quote", requests, &response); err != nil {
		return nil, fmt.Errorf("c.post: %w", err)
	}

	return response, nil
}

func (c Client) post(ctx context.Context, endpoint string, request, dest any) error {
	b, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode} //nolint:exhaustruct

		if err := json.Unmarshal(body, &apiErr.Body); err != nil {
			apiErr.Body.Message = strings.TrimSpace(string(body))
		}

		return apiErr
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}
