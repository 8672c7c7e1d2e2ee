/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNotFound         = errors.New("not found")
	ErrBadCredentials   = errors.New("bad credentials")
	ErrForbidden        = errors.New("forbidden")
)

// Credentials are the admin login accepted by /auth and as Basic auth.
type Credentials struct {
	Username string
	Password string
}

// Response is everything the assertions need from one call.
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	Duration    time.Duration
	TraceParent string
}

// MediaType returns the content type without parameters e.g. charset.
func (r *Response) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}

	return mediaType
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response: %w, body: %s", err, string(r.Body))
	}

	return nil
}

// RequestOption alters a request after the defaults are applied.
type RequestOption func(*http.Request)

// WithToken attaches the token the way the service expects it, as a cookie.
func WithToken(token string) RequestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
}

// WithHeader overrides or adds a request header.
func WithHeader(name, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(name, value)
	}
}

// WithoutBasicAuth strips the default credentials, the service accepts them
// in place of a token on writes.
func WithoutBasicAuth() RequestOption {
	return func(r *http.Request) {
		r.Header.Del("Authorization")
	}
}

// ClientOption customises client construction.
type ClientOption func(*APIClient)

// WithHTTPDoer replaces the underlying HTTP client.
func WithHTTPDoer(doer HTTPDoer) ClientOption {
	return func(c *APIClient) {
		c.client = doer
	}
}

type APIClient struct {
	baseURL     string
	client      HTTPDoer
	credentials Credentials
	config      *TestConfig
	endpoints   *Endpoints
	exchanges   *ExchangeLog
}

func NewAPIClientWithConfig(config *TestConfig, options ...ClientOption) *APIClient {
	client := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		credentials: config.Credentials(),
		config:      config,
		endpoints:   NewEndpoints(),
		exchanges:   NewExchangeLog(),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Exchanges returns the log of every request made by this client.
func (c *APIClient) Exchanges() *ExchangeLog {
	return c.exchanges
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// createTraceParent creates a W3C traceparent header value, a fresh trace
// per request so a failure can be found in the service logs.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", randomHex(16), randomHex(8))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// statusError maps the statuses callers commonly branch on.
func statusError(status int) error {
	switch status {
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	return nil
}

// doRequest performs exactly one round trip. A non-zero expectedStatus
// turns any other status into an error, the response is returned either way.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, query url.Values, body any, expectedStatus int, options ...RequestOption) (*Response, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var requestBody []byte

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		requestBody = data
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.credentials.Username, c.credentials.Password)

	for _, option := range options {
		option(req)
	}

	exchange := Exchange{
		Method:         method,
		URL:            fullURL,
		RequestHeader:  req.Header,
		RequestBody:    requestBody,
		TraceParent:    traceParent,
		ExpectedStatus: expectedStatus,
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	exchange.Duration = duration

	if err != nil {
		exchange.Err = err
		c.exchanges.Record(exchange)
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		exchange.Err = err
		c.exchanges.Record(exchange)
		c.logError(method, path, duration, traceParent, err, "reading response body")

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	exchange.StatusCode = resp.StatusCode
	exchange.ResponseHeader = resp.Header
	exchange.ResponseBody = respBody
	c.exchanges.Record(exchange)

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	response := &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Duration:    duration,
		TraceParent: traceParent,
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		if sentinel := statusError(resp.StatusCode); sentinel != nil {
			return response, fmt.Errorf("%w: %w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, sentinel, expectedStatus, resp.StatusCode, string(respBody), extractTraceID(traceParent))
		}

		return response, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, resp.StatusCode, string(respBody), extractTraceID(traceParent))
	}

	return response, nil
}

// Raw performs an arbitrary call without any status expectation.
func (c *APIClient) Raw(ctx context.Context, method, path string, query url.Values, body any, options ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, method, path, query, body, 0, options...)
}

// HealthCheck pings the service, which answers 201 when up.
func (c *APIClient) HealthCheck(ctx context.Context) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.HealthCheck(), nil, nil, http.StatusCreated)
	if err != nil {
		return resp, fmt.Errorf("health check: %w", err)
	}

	return resp, nil
}

// CreateAuthToken exchanges credentials for a token. The service answers 200
// for rejected credentials too, with a reason in place of the token.
func (c *APIClient) CreateAuthToken(ctx context.Context, credentials Credentials) (string, *Response, error) {
	body := &openapi.AuthRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateToken(), nil, body, http.StatusOK)
	if err != nil {
		return "", resp, fmt.Errorf("creating auth token: %w", err)
	}

	var result openapi.AuthResponse
	if err := resp.JSON(&result); err != nil {
		return "", resp, fmt.Errorf("creating auth token: %w", err)
	}

	if result.Token == "" {
		return "", resp, fmt.Errorf("%w: %s", ErrBadCredentials, result.Reason)
	}

	return result.Token, resp, nil
}

// CreateBooking creates a new booking.
func (c *APIClient) CreateBooking(ctx context.Context, booking openapi.Booking) (*openapi.CreatedBooking, *Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateBooking(), nil, &booking, http.StatusOK)
	if err != nil {
		return nil, resp, fmt.Errorf("creating booking: %w", err)
	}

	var created openapi.CreatedBooking
	if err := resp.JSON(&created); err != nil {
		return nil, resp, fmt.Errorf("creating booking: %w", err)
	}

	return &created, resp, nil
}

// ListBookingIDs lists booking IDs, optionally filtered.
func (c *APIClient) ListBookingIDs(ctx context.Context, filter *BookingFilter) ([]openapi.BookingID, *Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListBookings(), filter.Query(), nil, http.StatusOK)
	if err != nil {
		return nil, resp, fmt.Errorf("listing bookings: %w", err)
	}

	var ids []openapi.BookingID
	if err := resp.JSON(&ids); err != nil {
		return nil, resp, fmt.Errorf("listing bookings: %w", err)
	}

	return ids, resp, nil
}

// GetBooking retrieves a specific booking.
func (c *APIClient) GetBooking(ctx context.Context, bookingID int) (*openapi.Booking, *Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Booking(bookingID), nil, nil, 0)
	if err != nil {
		return nil, resp, fmt.Errorf("getting booking: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var booking openapi.Booking
		if err := resp.JSON(&booking); err != nil {
			return nil, resp, fmt.Errorf("getting booking: %w", err)
		}

		return &booking, resp, nil
	case http.StatusNotFound:
		return nil, resp, fmt.Errorf("%w: booking '%d' (status: %d)", ErrNotFound, bookingID, resp.StatusCode)
	default:
		return nil, resp, fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, resp.StatusCode, string(resp.Body))
	}
}

// UpdateBooking replaces a booking, authorised by token.
func (c *APIClient) UpdateBooking(ctx context.Context, bookingID int, booking openapi.Booking, token string) (*openapi.Booking, *Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, c.endpoints.Booking(bookingID), nil, &booking, http.StatusOK, WithToken(token))
	if err != nil {
		return nil, resp, fmt.Errorf("updating booking: %w", err)
	}

	var updated openapi.Booking
	if err := resp.JSON(&updated); err != nil {
		return nil, resp, fmt.Errorf("updating booking: %w", err)
	}

	return &updated, resp, nil
}

// PartialUpdateBooking patches a booking, authorised by token.
func (c *APIClient) PartialUpdateBooking(ctx context.Context, bookingID int, patch *openapi.BookingPatch, token string) (*openapi.Booking, *Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, c.endpoints.Booking(bookingID), nil, patch, http.StatusOK, WithToken(token))
	if err != nil {
		return nil, resp, fmt.Errorf("patching booking: %w", err)
	}

	var updated openapi.Booking
	if err := resp.JSON(&updated); err != nil {
		return nil, resp, fmt.Errorf("patching booking: %w", err)
	}

	return &updated, resp, nil
}

// DeleteBooking deletes a booking, authorised by token. The service answers
// 201 on success.
func (c *APIClient) DeleteBooking(ctx context.Context, bookingID int, token string, options ...RequestOption) (*Response, error) {
	options = append([]RequestOption{WithToken(token)}, options...)

	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.Booking(bookingID), nil, nil, http.StatusCreated, options...)
	if err != nil {
		return resp, fmt.Errorf("deleting booking: %w", err)
	}

	return resp, nil
}
