package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Path joins segments into an escaped resource path, e.g.
// Path("activities", 101, "students", 3) == "activities/101/students/3".
func Path(segments ...any) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(fmt.Sprint(s))
	}
	return strings.Join(parts, "/")
}

// GetJSON issues a GET and decodes the JSON body into out.
func GetJSON(ctx context.Context, c Client, path string, out any) error {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// SendJSON issues a request with a JSON body and decodes the response into
// out when out is non-nil and the body is not empty.
func SendJSON(ctx context.Context, c Client, method, path string, in, out any) error {
	resp, err := c.Do(ctx, Request{Method: method, Path: path, Body: in})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(resp, out)
}

func decode(resp *Response, out any) error {
	if len(resp.Body) == 0 || strings.TrimSpace(string(resp.Body)) == "" {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
