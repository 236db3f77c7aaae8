package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request is a single call against an upstream resource path.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any // encoded as JSON when non-nil
}

// Response is the raw result of a successful call.
type Response struct {
	Status    int
	Body      []byte
	RequestID string
}

// Client is the request/response facility every resource gateway talks to.
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks JSON to the configured base URL.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := uuid.New().String()

	var payload []byte
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		payload = data
	}

	attempts := 1
	if req.Method == http.MethodGet {
		attempts += c.cfg.MaxRetries
	}

	var lastErr error
	var status int
	made := 0
	for i := 0; i < attempts; i++ {
		made++
		resp, err := c.attempt(ctx, req, payload, requestID)
		if err == nil {
			c.observer.OnCallComplete(ctx, CallEvent{
				Method:    req.Method,
				Path:      req.Path,
				RequestID: requestID,
				Status:    resp.Status,
				Attempts:  made,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return resp, nil
		}
		lastErr = err

		var se *StatusError
		if errors.As(err, &se) {
			status = se.Code
			// Client errors will not change on retry.
			if se.Code < 500 {
				break
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	finalErr := c.classify(ctx, lastErr, made)
	c.observer.OnCallComplete(ctx, CallEvent{
		Method:    req.Method,
		Path:      req.Path,
		RequestID: requestID,
		Status:    status,
		Attempts:  made,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})
	return nil, finalErr
}

func (c *httpClient) attempt(ctx context.Context, req Request, payload []byte, requestID string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	target := c.cfg.BaseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &StatusError{Code: httpResp.StatusCode, Body: string(respBody)}
	}

	return &Response{Status: httpResp.StatusCode, Body: respBody, RequestID: requestID}, nil
}

func (c *httpClient) classify(ctx context.Context, err error, attempts int) error {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		if se.Code >= 500 && attempts > 1 {
			return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
		}
		return err
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	case attempts > 1:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	default:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	case errors.Is(err, ErrTransport):
		return "HTTP_ERROR"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
